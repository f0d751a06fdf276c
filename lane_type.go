package osm2lanes

// LaneType Usage category of a single lane in a road cross-section
type LaneType uint16

const (
	LANE_DRIVING = LaneType(iota + 1)
	LANE_PARKING
	LANE_SIDEWALK
	LANE_BIKING
	LANE_BUS
)

func (iotaIdx LaneType) String() string {
	return [...]string{"driving", "parking", "sidewalk", "biking", "bus"}[iotaIdx-1]
}

// Compact codec alphabet. A new lane type can not be added without extending
// both tables below and the defaults in ExtractLaneTypes at the same time.
var (
	charsByLaneType = map[LaneType]rune{
		LANE_DRIVING:  'd',
		LANE_PARKING:  'p',
		LANE_SIDEWALK: 's',
		LANE_BIKING:   'b',
		LANE_BUS:      'u',
	}

	laneTypesByChar = map[rune]LaneType{
		'd': LANE_DRIVING,
		'p': LANE_PARKING,
		's': LANE_SIDEWALK,
		'b': LANE_BIKING,
		'u': LANE_BUS,
	}
)
