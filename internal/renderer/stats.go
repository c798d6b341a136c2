package renderer

import "github.com/JoarGunnarsson/pathtracer/internal/core"

// PixelStats accumulates the samples taken for a single pixel, both the
// color estimate itself and the luminance moments needed to report
// per-pixel variance as a render-quality diagnostic.
type PixelStats struct {
	ColorAccum       core.Vec3
	LuminanceAccum   float64
	LuminanceSqAccum float64
	SampleCount      int
}

// AddSample folds one more path-traced radiance estimate into the pixel.
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// Color returns the averaged color for this pixel.
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// LuminanceVariance returns the sample variance of this pixel's luminance,
// zero if fewer than two samples were taken.
func (ps *PixelStats) LuminanceVariance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return ps.LuminanceSqAccum/n - mean*mean
}

// RenderStats summarizes a completed render; RenderImage and
// WorkerPool.Render return it to their caller.
type RenderStats struct {
	TotalPixels        int
	TotalSamples       int
	AverageLuminance   float64
	AverageVariance    float64
	MaxLuminanceVariance float64
}

// Summarize reduces a buffer of per-pixel statistics into a RenderStats
// report.
func Summarize(stats []PixelStats) RenderStats {
	var rs RenderStats
	rs.TotalPixels = len(stats)
	var luminanceSum, varianceSum float64
	for _, ps := range stats {
		rs.TotalSamples += ps.SampleCount
		if ps.SampleCount == 0 {
			continue
		}
		luminanceSum += ps.LuminanceAccum / float64(ps.SampleCount)
		v := ps.LuminanceVariance()
		varianceSum += v
		if v > rs.MaxLuminanceVariance {
			rs.MaxLuminanceVariance = v
		}
	}
	if rs.TotalPixels > 0 {
		rs.AverageLuminance = luminanceSum / float64(rs.TotalPixels)
		rs.AverageVariance = varianceSum / float64(rs.TotalPixels)
	}
	return rs
}
