package config

import "testing"

func TestDefaultConfig_IsInternallyConsistent(t *testing.T) {
	c := DefaultConfig()
	if c.Width <= 0 || c.Height <= 0 {
		t.Fatalf("default config has non-positive dimensions: %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		t.Fatalf("default config has non-positive sample count: %d", c.SamplesPerPixel)
	}
	if c.RussianRouletteMinProb <= 0 || c.RussianRouletteMaxProb > 1 || c.RussianRouletteMinProb > c.RussianRouletteMaxProb {
		t.Fatalf("russian roulette bounds out of range: [%v, %v]", c.RussianRouletteMinProb, c.RussianRouletteMaxProb)
	}
	if c.ForceRouletteDepth >= c.MaxDepth {
		t.Fatalf("forced-bounce depth %d should be well below max depth %d", c.ForceRouletteDepth, c.MaxDepth)
	}
}
