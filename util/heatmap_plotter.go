package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"bizsense-server/scoring"
)

// PlotSectorHeatmap renders the sector intensity analysis as a geo scatter
// chart and writes the HTML page to w.
func PlotSectorHeatmap(analysis scoring.SectorAnalysis, w io.Writer) error {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Crowd Intensity Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	series := []struct {
		name  string
		areas []scoring.IntensityArea
	}{
		{"High Intensity", analysis.High},
		{"Medium Intensity", analysis.Medium},
		{"Low Intensity", analysis.Low},
	}

	for _, s := range series {
		if len(s.areas) == 0 {
			continue
		}
		points := make([]opts.GeoData, 0, len(s.areas))
		for _, area := range s.areas {
			points = append(points, opts.GeoData{
				Name:  s.name,
				Value: []float64{area.Longitude, area.Latitude, float64(area.Count)},
			})
		}
		geo.AddSeries(s.name, types.ChartScatter, points,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}

	return geo.Render(w)
}
