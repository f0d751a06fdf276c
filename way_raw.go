package osm2lanes

import (
	"github.com/paulmach/osm"
)

// WayData Road segment candidate collected from the source file
type WayData struct {
	name     string
	highway  string
	junction string
	area     string
	TagMap   osm.Tags
	Nodes    []osm.NodeID
	layout   LaneLayout
	ID       osm.WayID
}

func (way *WayData) processTags() {
	way.name = way.TagMap.Find("name")
	way.highway = way.TagMap.Find("highway")
	way.junction = way.TagMap.Find("junction")
	way.area = way.TagMap.Find("area")
}

func (way *WayData) isHighway() bool {
	return way.highway != ""
}

func (way *WayData) isHighwayNegligible() bool {
	_, ok := negligibleHighwayTags[way.highway]
	return ok
}

func (way *WayData) isArea() bool {
	return way.area != "" && way.area != "no"
}
