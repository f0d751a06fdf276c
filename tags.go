package osm2lanes

// Tag keys owned by this library.
/*
	TAG_SYNTHETIC_LANES is written by external editing tools: its value is a
	compact lane layout string (see ParseLaneLayout) which fully replaces the
	inferred layout for a way.

	TAG_PARKING_LANE_FORWARD and TAG_PARKING_LANE_BACKWARD are expected to
	carry text 'true' when an on-street parking lane is present on the
	corresponding side.
*/
const (
	TAG_SYNTHETIC_LANES       = "synthetic_lanes"
	TAG_PARKING_LANE_FORWARD  = "parking:lane:forward"
	TAG_PARKING_LANE_BACKWARD = "parking:lane:backward"
)

var (
	// See ref.: https://wiki.openstreetmap.org/wiki/Tag:oneway%3Dreversible
	onewayValues = map[string]struct{}{
		"yes":        {},
		"reversible": {},
	}

	// Freeways have no sidewalk candidates at all
	noSidewalkHighways = map[string]struct{}{
		"motorway":      {},
		"motorway_link": {},
	}

	negligibleHighwayTags = map[string]struct{}{
		"path":         {},
		"construction": {},
		"proposed":     {},
		"raceway":      {},
		"bridleway":    {},
		"rest_area":    {},
		"su":           {},
		"road":         {},
		"abandoned":    {},
		"planned":      {},
		"trailhead":    {},
		"stairs":       {},
		"dismantled":   {},
		"disused":      {},
		"razed":        {},
		"access":       {},
		"corridor":     {},
		"stop":         {},
	}
)
