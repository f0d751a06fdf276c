package osm2lanes

import (
	"strings"
)

// LaneLayout Ordered lane types for both travel directions of a single road segment.
/*
	Forward and backward are relative to the direction in which the original way
	has been digitized. Order inside each slice is left-to-right placement across
	the cross-section (center to edge) and must be preserved as is.
*/
type LaneLayout struct {
	Forward  []LaneType
	Backward []LaneType
}

// String returns compact representation of lane layout: forward lane characters, then '/', then backward lane characters
func (layout LaneLayout) String() string {
	sb := strings.Builder{}
	for _, laneType := range layout.Forward {
		sb.WriteRune(charsByLaneType[laneType])
	}
	sb.WriteRune('/')
	for _, laneType := range layout.Backward {
		sb.WriteRune(charsByLaneType[laneType])
	}
	return sb.String()
}

// ParseLaneLayout restores lane layout from its compact representation
/*
	Returns false when the string is not a valid layout: no '/' separator at all,
	more than one '/', a character outside of the alphabet or not a single lane
	character on either side.
*/
func ParseLaneLayout(s string) (LaneLayout, bool) {
	layout := LaneLayout{}
	seenSlash := false
	for _, c := range s {
		if !seenSlash && c == '/' {
			seenSlash = true
			continue
		}
		laneType, ok := laneTypesByChar[c]
		if !ok {
			return LaneLayout{}, false
		}
		if seenSlash {
			layout.Backward = append(layout.Backward, laneType)
		} else {
			layout.Forward = append(layout.Forward, laneType)
		}
	}
	if !seenSlash || len(layout.Forward)+len(layout.Backward) == 0 {
		return LaneLayout{}, false
	}
	return layout, true
}
