package wms

import (
	"math"
	"strings"
)

// earthRadius is the sphere radius used by the Web Mercator projection, in meters.
const earthRadius = 6378137.0

// IsWebMercator reports whether the given CRS identifier names the Web Mercator
// projection. Both the official EPSG code and the legacy Google code are accepted.
func IsWebMercator(crs string) bool {
	return strings.EqualFold(crs, "EPSG:3857") || strings.EqualFold(crs, "EPSG:900913")
}

// MercatorToLon converts a Web Mercator X coordinate (meters) to longitude in degrees.
func MercatorToLon(x float64) float64 {
	return (x / earthRadius) * 180.0 / math.Pi
}

// MercatorToLat converts a Web Mercator Y coordinate (meters) to latitude in degrees.
func MercatorToLat(y float64) float64 {
	return (2*math.Atan(math.Exp(y/earthRadius)) - math.Pi/2) * 180.0 / math.Pi
}
