package osm2lanes

import (
	"fmt"
	"strings"
)

const (
	defaultLaneWidthMeters = 3.5
)

// Extractor Reads road segments from an OSM file and evaluates their lane layouts
type Extractor struct {
	filename    string
	highwayTags []string
	laneWidth   float64
	strictMode  bool
	verbose     bool
}

func (extractor *Extractor) String() string {
	return fmt.Sprintf(`
Lanes extractor parameters:
	filename: '%s'
	highway_tags: '%s'
	lane_width: %f
	strict_mode enabled?: %t
	verbose?: %t
	`,
		extractor.filename,
		strings.Join(extractor.highwayTags, ","),
		extractor.laneWidth,
		extractor.strictMode,
		extractor.verbose,
	)
}

func NewExtractor(fileName string, options ...func(*Extractor)) *Extractor {
	extractor := &Extractor{
		filename:   fileName,
		laneWidth:  defaultLaneWidthMeters,
		strictMode: false,
		verbose:    false,
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// WithHighwayTags limits extraction to given `highway` tag values. Empty set means every non-negligible highway.
func WithHighwayTags(highwayTags []string) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.highwayTags = highwayTags
	}
}

// WithLaneWidth sets width of a single lane (meters) used for lane geometry offsets
func WithLaneWidth(laneWidth float64) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.laneWidth = laneWidth
	}
}

// WithStrictMode makes a malformed synthetic lanes override abort the whole import instead of skipping the way
func WithStrictMode(strictMode bool) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.strictMode = strictMode
	}
}

func WithVerbose(verbose bool) func(*Extractor) {
	return func(extractor *Extractor) {
		extractor.verbose = verbose
	}
}

// checkHighwayTag Checks if incoming `highway` tag value passes the configured filter
func (extractor *Extractor) checkHighwayTag(tag string) bool {
	if len(extractor.highwayTags) == 0 {
		return true
	}
	for i := range extractor.highwayTags {
		if extractor.highwayTags[i] == tag {
			return true
		}
	}
	return false
}
