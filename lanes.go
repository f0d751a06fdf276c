package osm2lanes

import (
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// ErrBadSyntheticLanes Returned when a way carries an explicit lane layout override which does not parse.
/*
	An explicit override is never replaced with inferred defaults, so this error
	must be handled by the caller (stop the batch or drop the way).
*/
var ErrBadSyntheticLanes = errors.New("bad synthetic lanes value")

// ExtractLaneTypes evaluates ordered lane types for both directions of a way from its tags
/*
	Rules are applied in a fixed order and later rules rely on what earlier ones
	have appended, so per side the result is always: driving lanes (the last one
	possibly substituted by a bus lane), then a bike lane, then a parking lane,
	then a sidewalk. This matches physical center-to-edge placement.

	Any missing or unparseable tag value falls back to a default; the only error
	path is a malformed TAG_SYNTHETIC_LANES override.
*/
func ExtractLaneTypes(tags osm.Tags) (LaneLayout, error) {
	if synthetic, present := findTag(tags, TAG_SYNTHETIC_LANES); present {
		layout, ok := ParseLaneLayout(synthetic)
		if !ok {
			return LaneLayout{}, errors.Wrapf(ErrBadSyntheticLanes, "value '%s'", synthetic)
		}
		return layout, nil
	}

	// Easy special cases first
	if tags.Find("junction") == "roundabout" {
		return LaneLayout{Forward: []LaneType{LANE_DRIVING, LANE_SIDEWALK}}, nil
	}
	highway := tags.Find("highway")
	if highway == "footway" {
		return LaneLayout{Forward: []LaneType{LANE_SIDEWALK}}, nil
	}

	_, oneway := onewayValues[tags.Find("oneway")]

	numDrivingForward := evaluateDrivingLanes(tags, "lanes:forward", oneway, false)
	numDrivingBackward := evaluateDrivingLanes(tags, "lanes:backward", oneway, true)

	layout := LaneLayout{}
	for i := 0; i < numDrivingForward; i++ {
		layout.Forward = append(layout.Forward, LANE_DRIVING)
	}
	for i := 0; i < numDrivingBackward; i++ {
		layout.Backward = append(layout.Backward, LANE_DRIVING)
	}

	// Presence of the key is enough, value does not matter
	if _, hasBusLane := findTag(tags, "bus:lanes"); hasBusLane {
		if len(layout.Forward) != 0 {
			layout.Forward = layout.Forward[:len(layout.Forward)-1]
		}
		layout.Forward = append(layout.Forward, LANE_BUS)
		if len(layout.Backward) != 0 {
			layout.Backward = layout.Backward[:len(layout.Backward)-1]
			layout.Backward = append(layout.Backward, LANE_BUS)
		}
	}

	if tags.Find("cycleway") == "lane" {
		layout.Forward = append(layout.Forward, LANE_BIKING)
		if len(layout.Backward) != 0 {
			layout.Backward = append(layout.Backward, LANE_BIKING)
		}
	} else {
		// Per-side tags are consulted only when the combined one is absent
		if tags.Find("cycleway:right") == "lane" {
			layout.Forward = append(layout.Forward, LANE_BIKING)
		}
		if tags.Find("cycleway:left") == "lane" {
			layout.Backward = append(layout.Backward, LANE_BIKING)
		}
	}

	definitelyNoParking := strings.HasSuffix(highway, "_link") || highway == "motorway"
	if tags.Find(TAG_PARKING_LANE_FORWARD) == "true" && !definitelyNoParking {
		layout.Forward = append(layout.Forward, LANE_PARKING)
	}
	if tags.Find(TAG_PARKING_LANE_BACKWARD) == "true" && !definitelyNoParking && len(layout.Backward) != 0 {
		layout.Backward = append(layout.Backward, LANE_PARKING)
	}

	if _, noSidewalk := noSidewalkHighways[highway]; !noSidewalk {
		layout.Forward = append(layout.Forward, LANE_SIDEWALK)
		if oneway {
			// Only residential streets have a sidewalk on the other side of a one-way
			if highway == "residential" || tags.Find("sidewalk") == "both" {
				layout.Backward = append(layout.Backward, LANE_SIDEWALK)
			}
		} else {
			layout.Backward = append(layout.Backward, LANE_SIDEWALK)
		}
	}

	return layout, nil
}

// evaluateDrivingLanes returns number of driving lanes for a single direction
/*
	Precedence: explicit directed tag ('lanes:forward' or 'lanes:backward'),
	then the undirected 'lanes' value split between sides, then a default of
	one lane per open direction.

	Splitting an odd undirected count is ambiguous: each side gets n/2 rounded
	down but never less than 1, so sides may not sum up to n. That is kept as
	is on purpose.
*/
func evaluateDrivingLanes(tags osm.Tags, directedKey string, oneway, backward bool) int {
	if n, err := strconv.Atoi(tags.Find(directedKey)); err == nil && n >= 0 {
		return n
	}
	if n, err := strconv.Atoi(tags.Find("lanes")); err == nil && n >= 0 {
		if oneway {
			if backward {
				return 0
			}
			return n
		}
		if n%2 == 0 {
			return n / 2
		}
		if n/2 < 1 {
			return 1
		}
		return n / 2
	}
	if oneway && backward {
		return 0
	}
	return 1
}

// findTag reports tag value and whether the key is present at all.
// Unlike Tags.Find it distinguishes a missing key from an empty value.
func findTag(tags osm.Tags, key string) (string, bool) {
	for i := range tags {
		if tags[i].Key == key {
			return tags[i].Value, true
		}
	}
	return "", false
}
