package osm2lanes

import (
	geojson "github.com/paulmach/go.geojson"
)

// StreetsToGeoJSON returns GeoJSON feature collection with a feature per physical lane
/*
	Each feature is a LineString offset from the street centerline, carrying
	properties: way_id, name, highway, layout, direction, index and lane.
*/
func StreetsToGeoJSON(streets []Street, laneWidth float64) *geojson.FeatureCollection {
	featureCollection := geojson.NewFeatureCollection()
	for i := range streets {
		street := &streets[i]
		for _, lane := range street.LaneGeometries(laneWidth) {
			pts2d := make([][]float64, len(lane.Geom))
			for j := range lane.Geom {
				pts2d[j] = []float64{lane.Geom[j][0], lane.Geom[j][1]}
			}
			feature := geojson.NewLineStringFeature(pts2d)
			feature.SetProperty("way_id", int64(street.ID))
			feature.SetProperty("name", street.Name)
			feature.SetProperty("highway", street.Highway)
			feature.SetProperty("layout", street.Layout.String())
			direction := "forward"
			if !lane.Forward {
				direction = "backward"
			}
			feature.SetProperty("direction", direction)
			feature.SetProperty("index", lane.Index)
			feature.SetProperty("lane", lane.Lane.String())
			featureCollection.AddFeature(feature)
		}
	}
	return featureCollection
}
