package osm2lanes

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

func TestExtractLaneTypes(t *testing.T) {
	cases := []struct {
		name   string
		tags   osm.Tags
		layout string
	}{
		{
			"roundabout",
			osm.Tags{{Key: "junction", Value: "roundabout"}, {Key: "highway", Value: "primary"}},
			"ds/",
		},
		{
			"footway",
			osm.Tags{{Key: "highway", Value: "footway"}},
			"s/",
		},
		{
			"two-way residential",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "lanes", Value: "2"}},
			"ds/ds",
		},
		{
			"one-way primary with odd lanes count",
			osm.Tags{{Key: "highway", Value: "primary"}, {Key: "oneway", Value: "yes"}, {Key: "lanes", Value: "3"}},
			"ddds/",
		},
		{
			"odd lanes count on two-way road",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "lanes", Value: "3"}},
			"ds/ds",
		},
		{
			"single lane two-way road",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "lanes", Value: "1"}},
			"ds/ds",
		},
		{
			"explicit directed lanes counts",
			osm.Tags{{Key: "highway", Value: "secondary"}, {Key: "lanes:forward", Value: "3"}, {Key: "lanes:backward", Value: "2"}},
			"ddds/dds",
		},
		{
			"reversible counts as one-way",
			osm.Tags{{Key: "highway", Value: "primary"}, {Key: "oneway", Value: "reversible"}, {Key: "lanes", Value: "2"}},
			"dds/",
		},
		{
			"unparseable lanes count falls back to defaults",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "lanes", Value: "two"}},
			"ds/ds",
		},
		{
			"negative lanes count falls back to defaults",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "lanes", Value: "-2"}},
			"ds/ds",
		},
		{
			"bus lane substitution",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "lanes", Value: "2"}, {Key: "bus:lanes", Value: "x"}},
			"us/us",
		},
		{
			"bus lane on one-way keeps backward side empty",
			osm.Tags{{Key: "highway", Value: "primary"}, {Key: "oneway", Value: "yes"}, {Key: "lanes", Value: "2"}, {Key: "bus:lanes", Value: "designated"}},
			"dus/",
		},
		{
			"motorway suppresses sidewalks and parking",
			osm.Tags{{Key: "highway", Value: "motorway"}, {Key: "lanes", Value: "4"}, {Key: TAG_PARKING_LANE_FORWARD, Value: "true"}},
			"dd/dd",
		},
		{
			"combined cycleway",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "cycleway", Value: "lane"}},
			"dbs/dbs",
		},
		{
			"combined cycleway wins over per-side tags",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "cycleway", Value: "lane"}, {Key: "cycleway:right", Value: "lane"}},
			"dbs/dbs",
		},
		{
			"per-side cycleway on one-way road",
			osm.Tags{{Key: "highway", Value: "primary"}, {Key: "oneway", Value: "yes"}, {Key: "cycleway:left", Value: "lane"}},
			"ds/b",
		},
		{
			"parking on both sides",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "lanes", Value: "2"}, {Key: TAG_PARKING_LANE_FORWARD, Value: "true"}, {Key: TAG_PARKING_LANE_BACKWARD, Value: "true"}},
			"dps/dps",
		},
		{
			"parking suppressed on link road",
			osm.Tags{{Key: "highway", Value: "primary_link"}, {Key: "lanes", Value: "2"}, {Key: TAG_PARKING_LANE_FORWARD, Value: "true"}},
			"ds/ds",
		},
		{
			"one-way residential keeps backward sidewalk",
			osm.Tags{{Key: "highway", Value: "residential"}, {Key: "oneway", Value: "yes"}},
			"ds/s",
		},
		{
			"one-way primary has forward sidewalk only",
			osm.Tags{{Key: "highway", Value: "primary"}, {Key: "oneway", Value: "yes"}},
			"ds/",
		},
		{
			"one-way primary with sidewalks on both sides",
			osm.Tags{{Key: "highway", Value: "primary"}, {Key: "oneway", Value: "yes"}, {Key: "sidewalk", Value: "both"}},
			"ds/s",
		},
		{
			"no tags at all",
			osm.Tags{},
			"ds/ds",
		},
	}
	for _, testCase := range cases {
		layout, err := ExtractLaneTypes(testCase.tags)
		if err != nil {
			t.Errorf("Case '%s' must not fail, but got error: %s", testCase.name, err.Error())
			continue
		}
		if layout.String() != testCase.layout {
			t.Errorf("Case '%s': layout must be '%s', but got '%s'", testCase.name, testCase.layout, layout.String())
		}
	}
}

func TestExtractLaneTypesOverride(t *testing.T) {
	tags := osm.Tags{
		{Key: "highway", Value: "motorway"},
		{Key: "lanes", Value: "4"},
		{Key: "junction", Value: "roundabout"},
		{Key: TAG_SYNTHETIC_LANES, Value: "ds/s"},
	}
	layout, err := ExtractLaneTypes(tags)
	if err != nil {
		t.Errorf("Override must not fail, but got error: %s", err.Error())
		return
	}
	correct := LaneLayout{
		Forward:  []LaneType{LANE_DRIVING, LANE_SIDEWALK},
		Backward: []LaneType{LANE_SIDEWALK},
	}
	if !layoutsEqual(layout, correct) {
		t.Errorf("Override must win over any other tag: layout must be %v, but got %v", correct, layout)
	}
}

func TestExtractLaneTypesBadOverride(t *testing.T) {
	malformed := []string{"d//x", "", "/", "ds"}
	for _, value := range malformed {
		tags := osm.Tags{
			{Key: "highway", Value: "residential"},
			{Key: TAG_SYNTHETIC_LANES, Value: value},
		}
		_, err := ExtractLaneTypes(tags)
		if err == nil {
			t.Errorf("Malformed override '%s' must fail, but got no error", value)
			continue
		}
		if errors.Cause(err) != ErrBadSyntheticLanes {
			t.Errorf("Error cause for override '%s' must be ErrBadSyntheticLanes, but got: %s", value, err.Error())
		}
	}
}
