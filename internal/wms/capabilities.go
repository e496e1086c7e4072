package wms

import (
	"fmt"
	"strings"
	"time"
)

// Time dimension horizon advertised in capabilities: now to +48h in 3h steps.
const (
	timeDimensionHorizonHours = 48
	timeDimensionStepHours    = 3
)

const capabilitiesTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<WMS_Capabilities version="1.3.0" xmlns="http://www.opengis.net/wms">
  <Service>
    <Name>WMS</Name>
    <Title>Weather Visualization WMS Gateway</Title>
    <Abstract>WMS gateway for NOAA GFS weather data rasters</Abstract>
  </Service>
  <Capability>
    <Request>
      <GetCapabilities>
        <Format>text/xml</Format>
      </GetCapabilities>
      <GetMap>
        <Format>image/png</Format>
      </GetMap>
      <GetFeatureInfo>
        <Format>application/json</Format>
      </GetFeatureInfo>
    </Request>
    <Layer>
      <Title>Weather Data Layers</Title>
      <CRS>EPSG:4326</CRS>
      <CRS>EPSG:3857</CRS>
      <Dimension name="time" units="ISO8601">%s</Dimension>
    </Layer>
  </Capability>
</WMS_Capabilities>`

// TimeDimension enumerates the advertised forecast timestamps: the given
// instant truncated to the hour (UTC), stepped forward in fixed increments.
// The list is capability metadata only and is not reconciled against what the
// render backend can actually serve.
func TimeDimension(now time.Time) []string {
	times := make([]string, 0, timeDimensionHorizonHours/timeDimensionStepHours+1)
	start := now.UTC().Truncate(time.Hour)
	for i := 0; i <= timeDimensionHorizonHours; i += timeDimensionStepHours {
		times = append(times, start.Add(time.Duration(i)*time.Hour).Format(time.RFC3339))
	}
	return times
}

// Capabilities renders the WMS 1.3.0 capabilities document for the given
// instant. It is regenerated on every call so the time dimension always
// reflects current wall-clock time.
func Capabilities(now time.Time) string {
	return fmt.Sprintf(capabilitiesTemplate, strings.Join(TimeDimension(now), ","))
}
