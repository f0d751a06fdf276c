package osm2lanes

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"

	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// Street Road segment with its evaluated lane layout and centerline geometry
type Street struct {
	Name         string
	Highway      string
	Geometry     orb.LineString
	Layout       LaneLayout
	LengthMeters float64
	ID           osm.WayID
}

// LaneGeometry Physical polyline for a single lane of a street
type LaneGeometry struct {
	Geom    orb.LineString
	Lane    LaneType
	Index   int
	Forward bool
}

// LaneGeometries lays out per lane polylines across the street cross-section
/*
	Forward lanes are placed to the right of the digitization direction and
	backward lanes to the left, each next lane one lane width further from the
	centerline. Order of returned lanes follows the layout order, so per side it
	goes from center to edge.
*/
func (street *Street) LaneGeometries(laneWidth float64) []LaneGeometry {
	laneGeometries := make([]LaneGeometry, 0, len(street.Layout.Forward)+len(street.Layout.Backward))
	for i, laneType := range street.Layout.Forward {
		offset := -(float64(i) + 0.5) * laneWidth
		laneGeometries = append(laneGeometries, LaneGeometry{
			Geom:    laneOffsetCurve(street.Geometry, offset),
			Lane:    laneType,
			Index:   i,
			Forward: true,
		})
	}
	for i, laneType := range street.Layout.Backward {
		offset := (float64(i) + 0.5) * laneWidth
		laneGeometries = append(laneGeometries, LaneGeometry{
			Geom:    laneOffsetCurve(street.Geometry, offset),
			Lane:    laneType,
			Index:   i,
			Forward: false,
		})
	}
	return laneGeometries
}

// ExtractFromOSMFile Imports road segments with lane layouts from file of PBF or XML format (in OSM terms)
/*
	File should have PBF (Protocolbuffer Binary Format) or XML extension according to https://github.com/paulmach/osm
*/
func (extractor *Extractor) ExtractFromOSMFile() ([]Street, error) {
	file, err := os.Open(extractor.filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	newScanner := func() (OSMScanner, error) {
		ext := filepath.Ext(extractor.filename)
		switch ext {
		case ".osm", ".xml":
			return osmxml.New(context.Background(), file), nil
		case ".pbf":
			return osmpbf.New(context.Background(), file, 4), nil
		}
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, extractor.filename)
	}

	/* Process ways */
	if extractor.verbose {
		fmt.Printf("Scanning ways...")
	}
	st := time.Now()
	ways := []*WayData{}
	nodesSeen := make(map[osm.NodeID]struct{})
	scannerWays, err := newScanner()
	if err != nil {
		return nil, err
	}
	defer scannerWays.Close()
	for scannerWays.Scan() {
		obj := scannerWays.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		preparedWay := &WayData{
			ID:     way.ID,
			Nodes:  make([]osm.NodeID, 0, len(way.Nodes)),
			TagMap: make(osm.Tags, len(way.Tags)),
		}
		copy(preparedWay.TagMap, way.Tags)
		for _, node := range way.Nodes {
			preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
		}
		preparedWay.processTags()
		if !preparedWay.isHighway() || preparedWay.isHighwayNegligible() || preparedWay.isArea() {
			continue
		}
		if !extractor.checkHighwayTag(preparedWay.highway) {
			continue
		}
		if len(preparedWay.Nodes) < 2 {
			if extractor.verbose {
				fmt.Printf("\n\t[WARNING]: Way with %d nodes met. Way ID: '%d'\n", len(preparedWay.Nodes), preparedWay.ID)
			}
			continue
		}
		layout, err := ExtractLaneTypes(preparedWay.TagMap)
		if err != nil {
			// Explicit override must not be replaced with inferred defaults
			if extractor.strictMode {
				return nil, errors.Wrapf(err, "Way ID: '%d'", preparedWay.ID)
			}
			if extractor.verbose {
				fmt.Printf("\n\t[WARNING]: %s. Way ID: '%d'. Skipping the way\n", err.Error(), preparedWay.ID)
			}
			continue
		}
		preparedWay.layout = layout
		ways = append(ways, preparedWay)
		for _, nodeID := range preparedWay.Nodes {
			nodesSeen[nodeID] = struct{}{}
		}
	}
	if scannerWays.Err() != nil {
		return nil, errors.Wrap(scannerWays.Err(), "Scanner error on Ways")
	}
	if extractor.verbose {
		fmt.Printf("Done in %v\n\tWays: %d\n", time.Since(st), len(ways))
	}

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}

	/* Process nodes */
	if extractor.verbose {
		fmt.Printf("Scanning nodes...")
	}
	st = time.Now()
	nodes := make(map[osm.NodeID]orb.Point)
	scannerNodes, err := newScanner()
	if err != nil {
		return nil, err
	}
	defer scannerNodes.Close()
	for scannerNodes.Scan() {
		obj := scannerNodes.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := nodesSeen[node.ID]; ok {
			delete(nodesSeen, node.ID)
			nodes[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}
	if scannerNodes.Err() != nil {
		return nil, errors.Wrap(scannerNodes.Err(), "Scanner error on Nodes")
	}
	if extractor.verbose {
		fmt.Printf("Done in %v\n\tNodes: %d\n", time.Since(st), len(nodes))
	}

	/* Assemble streets */
	if extractor.verbose {
		fmt.Printf("Preparing streets...")
	}
	st = time.Now()
	streets := make([]Street, 0, len(ways))
	for _, way := range ways {
		geometry := make(orb.LineString, 0, len(way.Nodes))
		for _, nodeID := range way.Nodes {
			pt, ok := nodes[nodeID]
			if !ok {
				return nil, fmt.Errorf("No such node '%d'. Way ID: '%d'", nodeID, way.ID)
			}
			geometry = append(geometry, pt)
		}
		streets = append(streets, Street{
			Name:         way.name,
			Highway:      way.highway,
			Geometry:     geometry,
			Layout:       way.layout,
			LengthMeters: lineLengthMeters(geometry),
			ID:           way.ID,
		})
	}
	if extractor.verbose {
		fmt.Printf("Done in %v\n\tStreets: %d\n", time.Since(st), len(streets))
	}

	return streets, nil
}
