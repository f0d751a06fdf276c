package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/LdDl/osm2lanes"
)

var (
	tagStr      = flag.String("tags", "", "Set of needed `highway` tag values (separated by commas). Empty means all non-negligible values")
	osmFileName = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf file (it has to be compressed)")
	geojsonOut  = flag.String("geojson", "lanes.geojson", "Filename of output GeoJSON file with per lane geometry")
	csvOut      = flag.String("csv", "lanes.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file with lane layouts")
	laneWidth   = flag.Float64("width", 3.5, "Width of a single lane (meters)")
	strictMode  = flag.Bool("strict", false, "Stop the whole import on malformed synthetic lanes override?")
	verbose     = flag.Bool("verbose", true, "Print progress?")
)

func main() {

	flag.Parse()

	options := []func(*osm2lanes.Extractor){
		osm2lanes.WithLaneWidth(*laneWidth),
		osm2lanes.WithStrictMode(*strictMode),
		osm2lanes.WithVerbose(*verbose),
	}
	if *tagStr != "" {
		options = append(options, osm2lanes.WithHighwayTags(strings.Split(*tagStr, ",")))
	}
	extractor := osm2lanes.NewExtractor(*osmFileName, options...)

	streets, err := extractor.ExtractFromOSMFile()
	if err != nil {
		fmt.Println(err)
		return
	}

	/* Layouts file */
	fileLayouts, err := os.Create(*csvOut)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fileLayouts.Close()
	writerLayouts := csv.NewWriter(fileLayouts)
	defer writerLayouts.Flush()
	writerLayouts.Comma = ';'
	// 		way_id - int64, ID of OSM Way
	// 		layout - compact lane layout representation (forward lanes / backward lanes)
	// 		name - name of the street
	// 		highway - value of `highway` tag
	// 		length_m - float64, length of the centerline (meters)
	err = writerLayouts.Write([]string{"way_id", "layout", "name", "highway", "length_m"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, street := range streets {
		err = writerLayouts.Write([]string{
			fmt.Sprintf("%d", street.ID),
			street.Layout.String(),
			street.Name,
			street.Highway,
			fmt.Sprintf("%f", street.LengthMeters),
		})
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	/* Lane geometry file */
	featureCollection := osm2lanes.StreetsToGeoJSON(streets, *laneWidth)
	bytesGeoJSON, err := featureCollection.MarshalJSON()
	if err != nil {
		fmt.Println(err)
		return
	}
	fileGeoJSON, err := os.Create(*geojsonOut)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer fileGeoJSON.Close()
	_, err = fileGeoJSON.Write(bytesGeoJSON)
	if err != nil {
		fmt.Println(err)
		return
	}
}
