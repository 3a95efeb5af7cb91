package util

import (
	"bytes"
	"strings"
	"testing"

	"bizsense-server/scoring"
)

func TestPlotSectorHeatmap_RendersAllTiers(t *testing.T) {
	analysis := scoring.SectorAnalysis{
		High: []scoring.IntensityArea{
			{Latitude: 19.0768, Longitude: 72.8781, Count: 18, Sector: "0_1"},
		},
		Medium: []scoring.IntensityArea{
			{Latitude: 19.0741, Longitude: 72.8752, Count: 7, Sector: "1_1"},
		},
		Low: []scoring.IntensityArea{
			{Latitude: 19.0801, Longitude: 72.8766, Count: 2, Sector: "2_0"},
		},
	}

	var buf bytes.Buffer
	if err := PlotSectorHeatmap(analysis, &buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	for _, want := range []string{"High Intensity", "Medium Intensity", "Low Intensity", "Crowd Intensity Map"} {
		if !strings.Contains(html, want) {
			t.Errorf("Rendered page missing %q", want)
		}
	}
}

func TestPlotSectorHeatmap_SkipsEmptyTiers(t *testing.T) {
	analysis := scoring.SectorAnalysis{
		High: []scoring.IntensityArea{
			{Latitude: 19.0760, Longitude: 72.8777, Count: 0, Sector: "center"},
		},
	}

	var buf bytes.Buffer
	if err := PlotSectorHeatmap(analysis, &buf); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "High Intensity") {
		t.Error("Expected the high series to render")
	}
	if strings.Contains(html, "Medium Intensity") {
		t.Error("Empty medium tier should not render a series")
	}
}
