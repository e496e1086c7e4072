package wms

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// defaultTileSize is used when a GetMap request carries no usable WIDTH or HEIGHT.
const defaultTileSize = 256

// RenderRequest is the backend-facing representation of a translated GetMap
// request. BBox, when present, is always WGS84 lon/lat "minx,miny,maxx,maxy";
// the render backend never sees Mercator coordinates.
type RenderRequest struct {
	Layer  string
	File   string
	Width  int
	Height int

	// Optional fields, forwarded only when non-empty and never validated here;
	// the render backend is the authority on acceptable values.
	BBox            string
	Time            string
	ColorScaleRange string
	Style           string
	Gamma           string
}

// Values encodes the request as backend query parameters, including only the
// non-empty optional fields. Width and height always carry a value.
func (r RenderRequest) Values() url.Values {
	v := url.Values{}
	if r.Layer != "" {
		v.Set("layer", r.Layer)
	}
	if r.File != "" {
		v.Set("file", r.File)
	}
	v.Set("width", strconv.Itoa(r.Width))
	v.Set("height", strconv.Itoa(r.Height))
	if r.BBox != "" {
		v.Set("bbox", r.BBox)
	}
	if r.ColorScaleRange != "" {
		v.Set("colorscalerange", r.ColorScaleRange)
	}
	if r.Time != "" {
		v.Set("time", r.Time)
	}
	if r.Style != "" {
		v.Set("styles", r.Style)
	}
	if r.Gamma != "" {
		v.Set("gamma", r.Gamma)
	}
	return v
}

// ParseGetMap translates a WMS GetMap query and dataset path into a
// RenderRequest. Parsing is deliberately lenient: unusable dimensions fall
// back to defaults and a malformed BBOX is dropped rather than rejected, so
// varied WMS clients keep working.
func ParseGetMap(query func(key string) string, dataset string) RenderRequest {
	req := RenderRequest{
		Width:  dimension(query("WIDTH")),
		Height: dimension(query("HEIGHT")),
	}

	req.Layer, req.File = SplitDatasetPath(dataset)
	if req.Layer == "" {
		if l := query("LAYERS"); l != "" {
			req.Layer = l
		}
	}

	crs := query("CRS")
	if crs == "" {
		// WMS 1.1.x clients send SRS instead.
		crs = query("SRS")
	}
	req.BBox = NormalizeBBox(query("BBOX"), crs)

	req.Time = query("TIME")
	req.ColorScaleRange = query("COLORSCALERANGE")
	if styles := query("STYLES"); styles != "" {
		req.Style = styles
	} else {
		req.Style = query("PALETTE")
	}
	if gamma := query("GAMMA"); gamma != "" {
		req.Gamma = gamma
	} else {
		req.Gamma = query("gamma")
	}

	return req
}

// SplitDatasetPath resolves the URL dataset path into a logical layer and a
// file name. With two or more segments the last is the file and the
// second-to-last the layer; a single segment is a file with no layer. The file
// is reduced to its base name so traversal segments never reach the backend
// data store.
func SplitDatasetPath(dataset string) (layer, file string) {
	if dataset == "" {
		return "", ""
	}
	parts := strings.Split(dataset, "/")
	if len(parts) >= 2 {
		layer = parts[len(parts)-2]
		file = parts[len(parts)-1]
	} else {
		file = parts[0]
	}
	if file != "" {
		file = path.Base(file)
	}
	return layer, file
}

// NormalizeBBox parses a WMS BBOX string and converts it to WGS84 lon/lat when
// the declared CRS is Web Mercator. Anything other than exactly four
// comma-separated numbers yields an empty string, meaning no bbox is forwarded.
func NormalizeBBox(bbox, crs string) string {
	if bbox == "" {
		return ""
	}
	parts := strings.Split(bbox, ",")
	if len(parts) != 4 {
		return ""
	}

	coords := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return ""
		}
		coords[i] = f
	}

	minX, minY, maxX, maxY := coords[0], coords[1], coords[2], coords[3]
	if IsWebMercator(crs) {
		minX, minY = MercatorToLon(minX), MercatorToLat(minY)
		maxX, maxY = MercatorToLon(maxX), MercatorToLat(maxY)
	}

	return fmt.Sprintf("%f,%f,%f,%f", minX, minY, maxX, maxY)
}

func dimension(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return defaultTileSize
	}
	return n
}
