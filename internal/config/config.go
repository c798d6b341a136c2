// Package config gathers the process-wide rendering constants into a single
// immutable record, rather than the scattered global constants of a typical
// raytracer (image dimensions, sample counts, recursion limits). Every
// component that needs one of these values takes a Config explicitly.
package config

// Config holds the tunable parameters of a render. Zero-value Config is not
// meaningful; use DefaultConfig and override fields as needed.
type Config struct {
	Width  int
	Height int

	// SamplesPerPixel is the number of paths traced per pixel before
	// averaging.
	SamplesPerPixel int

	// EnableNEE toggles next-event estimation (direct light sampling) in
	// the integrator. Disabling it falls back to pure BSDF sampling,
	// useful for isolating MIS bugs.
	EnableNEE bool

	// MaxDepth caps the number of bounces a path may take regardless of
	// Russian roulette, guarding against pathological scenes.
	MaxDepth int

	// ForceRouletteDepth is the number of bounces that always continue,
	// before Russian roulette starts probabilistically terminating paths.
	ForceRouletteDepth int

	// RussianRouletteMinProb and RussianRouletteMaxProb clamp the survival
	// probability computed from path throughput.
	RussianRouletteMinProb float64
	RussianRouletteMaxProb float64

	// Epsilon is the minimum hit distance accepted by intersection tests,
	// pushing the ray origin past the surface it just left to avoid
	// self-intersection ("shadow acne").
	Epsilon float64

	// MaxRayDistance bounds the far end of the intersection search.
	MaxRayDistance float64

	// MaxMediumStackDepth bounds nested participating-media entry/exit
	// bookkeeping (see medium.Stack).
	MaxMediumStackDepth int

	// AirRefractiveIndex is the refractive index outside all dielectric
	// volumes.
	AirRefractiveIndex float64
}

// DefaultConfig returns the baseline configuration. The numeric defaults
// (300x300, 10 samples per pixel, depth 100) mirror the values a minimal
// offline path tracer ships with before a caller tunes them for quality.
func DefaultConfig() Config {
	return Config{
		Width:                   300,
		Height:                  300,
		SamplesPerPixel:         10,
		EnableNEE:               true,
		MaxDepth:                100,
		ForceRouletteDepth:      3,
		RussianRouletteMinProb:  0.5,
		RussianRouletteMaxProb:  0.95,
		Epsilon:                 1e-6,
		MaxRayDistance:          1e10,
		MaxMediumStackDepth:     50,
		AirRefractiveIndex:      1.0,
	}
}
