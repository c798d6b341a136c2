package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/JoarGunnarsson/pathtracer/internal/config"
	"github.com/JoarGunnarsson/pathtracer/internal/core"
	"github.com/JoarGunnarsson/pathtracer/internal/renderer"
	"github.com/JoarGunnarsson/pathtracer/internal/scene"
)

func main() {
	sceneName := flag.String("scene", "cornell", "Scene: cornell, spheres, causticglass, mediumbox")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("samples", 64, "Samples per pixel")
	maxDepth := flag.Int("depth", 40, "Maximum path depth")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = runtime.NumCPU())")
	tileSize := flag.Int("tile", 32, "Tile size in pixels")
	seed := flag.Int64("seed", 1, "Base RNG seed")
	out := flag.String("out", "render.ppm", "Output PPM file path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("pathtracer render")
		fmt.Println("Usage: render [options]")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes: cornell, spheres, causticglass, mediumbox")
		return
	}

	logger := core.NewStdLogger(log.New(os.Stderr, "", log.LstdFlags))

	cfg := config.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.SamplesPerPixel = *samples
	cfg.MaxDepth = *maxDepth

	var s *scene.Scene
	switch *sceneName {
	case "cornell":
		s = scene.NewCornellScene(cfg)
	case "spheres":
		s = scene.NewSpheresScene(cfg)
	case "causticglass":
		s = scene.NewCausticGlassScene(cfg)
	case "mediumbox":
		s = scene.NewMediumBoxScene(cfg)
	default:
		logger.Printf("unknown scene %q, using cornell", *sceneName)
		s = scene.NewCornellScene(cfg)
	}

	rt := renderer.NewRaytracer(s, s.Camera, cfg, logger)
	pool := renderer.NewWorkerPool(rt, cfg.Width, cfg.Height, *workers)

	start := time.Now()
	color, _, _, stats := pool.Render(*tileSize, *seed)
	elapsed := time.Since(start)

	logger.Printf("rendered %q in %v: %d pixels, %d samples, avg luminance %.4f",
		*sceneName, elapsed, stats.TotalPixels, stats.TotalSamples, stats.AverageLuminance)

	if err := writePPM(*out, color); err != nil {
		logger.Printf("error writing %s: %v", *out, err)
		os.Exit(1)
	}
	logger.Printf("wrote %s", *out)
}

// writePPM tone-maps a linear-RGB buffer (clamp to [0,1], gamma 2.2) and
// writes it as a binary PPM (P6). This is the minimal encoding needed to
// produce a viewable file from the CLI demo, not a real tone-mapping
// pipeline -- the core never performs this clamp itself.
func writePPM(path string, buf *renderer.Buffer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "P6\n%d %d\n255\n", buf.Width, buf.Height)

	const invGamma = 1.0 / 2.2
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			c := buf.At(x, y)
			w.WriteByte(toByte(c.X, invGamma))
			w.WriteByte(toByte(c.Y, invGamma))
			w.WriteByte(toByte(c.Z, invGamma))
		}
	}
	return w.Flush()
}

func toByte(linear, invGamma float64) byte {
	if linear < 0 {
		linear = 0
	}
	if linear > 1 {
		linear = 1
	}
	return byte(math.Round(math.Pow(linear, invGamma) * 255))
}
