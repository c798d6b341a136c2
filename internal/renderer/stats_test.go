package renderer

import (
	"math"
	"testing"

	"github.com/JoarGunnarsson/pathtracer/internal/core"
)

func TestPixelStats_ColorIsZeroWithNoSamples(t *testing.T) {
	var ps PixelStats
	got := ps.Color()
	if got.X != 0 || got.Y != 0 || got.Z != 0 {
		t.Errorf("Color() with no samples = %+v, want zero", got)
	}
}

func TestPixelStats_ColorAveragesSamples(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))

	got := ps.Color()
	want := core.NewVec3(0.5, 0.5, 0)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("Color() = %+v, want %+v", got, want)
	}
}

func TestPixelStats_LuminanceVarianceZeroForIdenticalSamples(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(0.5, 0.5, 0.5))
	ps.AddSample(core.NewVec3(0.5, 0.5, 0.5))

	if v := ps.LuminanceVariance(); v > 1e-12 {
		t.Errorf("LuminanceVariance() = %f for identical samples, want ~0", v)
	}
}

func TestPixelStats_LuminanceVariancePositiveForDifferingSamples(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(0, 0, 0))
	ps.AddSample(core.NewVec3(1, 1, 1))

	if v := ps.LuminanceVariance(); v <= 0 {
		t.Errorf("LuminanceVariance() = %f, want > 0", v)
	}
}

func TestSummarize_AggregatesAcrossPixels(t *testing.T) {
	stats := make([]PixelStats, 4)
	for i := range stats {
		stats[i].AddSample(core.NewVec3(1, 1, 1))
		stats[i].AddSample(core.NewVec3(1, 1, 1))
	}

	rs := Summarize(stats)
	if rs.TotalPixels != 4 {
		t.Errorf("TotalPixels = %d, want 4", rs.TotalPixels)
	}
	if rs.TotalSamples != 8 {
		t.Errorf("TotalSamples = %d, want 8", rs.TotalSamples)
	}
	if math.Abs(rs.AverageLuminance-1) > 1e-9 {
		t.Errorf("AverageLuminance = %f, want 1", rs.AverageLuminance)
	}
}
