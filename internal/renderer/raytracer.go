package renderer

import (
	"math/rand"

	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/integrator"
)

// Bounds is a half-open pixel rectangle [MinX, MaxX) x [MinY, MaxY), the unit
// of work a single worker renders end-to-end.
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Raytracer binds a scene, camera and config together into something that
// can render pixels. It holds no mutable render state itself -- all
// accumulation happens in the Buffers and PixelStats passed to RenderBounds
// -- so a single Raytracer is shared read-only across every worker.
type Raytracer struct {
	scene  integrator.Scene
	camera *Camera
	cfg    config.Config
	integ  *integrator.PathTracingIntegrator
	logger core.Logger
}

// NewRaytracer creates a raytracer. A nil logger falls back to a no-op one.
func NewRaytracer(scene integrator.Scene, camera *Camera, cfg config.Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		camera: camera,
		cfg:    cfg,
		integ:  integrator.NewPathTracingIntegrator(cfg),
		logger: logger,
	}
}

// jitterStddev is the standard deviation, in pixels, of the Gaussian
// perturbation applied to each sample's pixel coordinate for anti-aliasing.
const jitterStddev = 0.5

// RenderBounds renders every pixel in bounds into color (and, where a
// primary ray actually hits something, the auxiliary position/normal
// buffers averaged over the samples that hit), accumulating per-pixel
// statistics into stats. stats and the buffers must be sized for the full
// image; bounds from different calls must never overlap so concurrent
// calls from a worker pool need no synchronization.
func (rt *Raytracer) RenderBounds(bounds Bounds, color, position, normal *Buffer, stats []PixelStats, random *rand.Rand) {
	sampler := core.NewRandomSampler(random)

	for y := bounds.MinY; y < bounds.MaxY; y++ {
		for x := bounds.MinX; x < bounds.MaxX; x++ {
			ps := &stats[y*color.Width+x]

			var posAccum, normAccum core.Vec3
			var auxHits int

			for s := 0; s < rt.cfg.SamplesPerPixel; s++ {
				jx := float64(x) + random.NormFloat64()*jitterStddev
				jy := float64(y) + random.NormFloat64()*jitterStddev
				ray := rt.camera.GetRay(jx, jy)

				if hit, ok := rt.scene.Hit(ray, rt.cfg.Epsilon, rt.cfg.MaxRayDistance); ok {
					posAccum = posAccum.Add(hit.Point)
					normAccum = normAccum.Add(hit.Normal)
					auxHits++
				}

				ps.AddSample(rt.integ.Li(ray, rt.scene, sampler))
			}

			color.Set(x, y, ps.Color())
			if auxHits > 0 {
				position.Set(x, y, posAccum.Divide(float64(auxHits)))
				normal.Set(x, y, normAccum.Divide(float64(auxHits)))
			}
		}
	}
}

// RenderImage renders the full image single-threaded, seeded deterministically.
// It exists for tests and small demo scenes; production-sized renders go
// through a WorkerPool instead.
func (rt *Raytracer) RenderImage(seed int64) (color, position, normal *Buffer, stats RenderStats) {
	width, height := rt.camera.width, rt.camera.height
	color = NewBuffer(width, height)
	position = NewBuffer(width, height)
	normal = NewBuffer(width, height)
	pixelStats := make([]PixelStats, width*height)

	rt.RenderBounds(Bounds{MinX: 0, MinY: 0, MaxX: width, MaxY: height}, color, position, normal, pixelStats, rand.New(rand.NewSource(seed)))

	stats = Summarize(pixelStats)
	rt.logger.Printf("render complete: %d pixels, %d samples, avg luminance %.4f, avg variance %.6f",
		stats.TotalPixels, stats.TotalSamples, stats.AverageLuminance, stats.AverageVariance)
	return color, position, normal, stats
}
