package osm2lanes

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthRadius = 6370.986884258304 // kilometers
	pi180       = math.Pi / 180.0
	pi180Rev    = 180.0 / math.Pi

	metersPerDegree = earthRadius * 1000.0 * pi180
)

func degreesToRadians(d float64) float64 {
	return d * pi180
}

// greatCircleDistance returns distance between two points on Earth (kilometers)
func greatCircleDistance(p, q orb.Point) float64 {
	lat1 := degreesToRadians(p[1])
	lon1 := degreesToRadians(p[0])
	lat2 := degreesToRadians(q[1])
	lon2 := degreesToRadians(q[0])
	diffLat := lat2 - lat1
	diffLon := lon2 - lon1
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return c * earthRadius
}

// lineLengthMeters returns length for given line (meters)
func lineLengthMeters(line orb.LineString) float64 {
	totalLength := 0.0
	if len(line) < 2 {
		return totalLength
	}
	for i := 1; i < len(line); i++ {
		totalLength += greatCircleDistance(line[i-1], line[i])
	}
	return totalLength * 1000.0
}

// laneOffsetCurve shifts line perpendicularly by given distance in meters.
/*
	Positive distance shifts the line to the left of its direction, negative to
	the right. Offsets are computed in a local planar frame scaled by the cosine
	of the latitude of the first point, which is good enough on a street scale.
*/
func laneOffsetCurve(line orb.LineString, distanceMeters float64) orb.LineString {
	if len(line) < 2 {
		return line.Clone()
	}
	latScale := math.Cos(degreesToRadians(line[0][1]))
	result := make(orb.LineString, len(line))
	for i := range line {
		// Average direction of adjacent segments
		var dx, dy float64
		if i > 0 {
			sx := (line[i][0] - line[i-1][0]) * latScale
			sy := line[i][1] - line[i-1][1]
			norm := math.Sqrt(sx*sx + sy*sy)
			if norm > 0 {
				dx += sx / norm
				dy += sy / norm
			}
		}
		if i < len(line)-1 {
			sx := (line[i+1][0] - line[i][0]) * latScale
			sy := line[i+1][1] - line[i][1]
			norm := math.Sqrt(sx*sx + sy*sy)
			if norm > 0 {
				dx += sx / norm
				dy += sy / norm
			}
		}
		norm := math.Sqrt(dx*dx + dy*dy)
		if norm == 0 {
			// Degenerate vertex (repeated points on both sides)
			result[i] = line[i]
			continue
		}
		// Rotate the tangent by 90 degrees to get the left-hand normal
		nx := -dy / norm
		ny := dx / norm
		offsetDeg := distanceMeters / metersPerDegree
		result[i] = orb.Point{
			line[i][0] + nx*offsetDeg/latScale,
			line[i][1] + ny*offsetDeg,
		}
	}
	return result
}
