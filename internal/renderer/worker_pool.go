package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// Tile is one worker's unit of work: a pixel rectangle and the seed for its
// private RNG stream.
type Tile struct {
	Bounds Bounds
	Seed   int64
}

// SplitIntoTiles partitions a width x height image into contiguous
// tileSize x tileSize tiles (the last tile in each row/column is clipped to
// the image edge), each seeded deterministically from its index so a fixed
// worker-to-tile mapping reproduces a render bit-for-bit.
func SplitIntoTiles(width, height, tileSize int, baseSeed int64) []Tile {
	var tiles []Tile
	index := int64(0)
	for y := 0; y < height; y += tileSize {
		maxY := y + tileSize
		if maxY > height {
			maxY = height
		}
		for x := 0; x < width; x += tileSize {
			maxX := x + tileSize
			if maxX > width {
				maxX = width
			}
			tiles = append(tiles, Tile{
				Bounds: Bounds{MinX: x, MinY: y, MaxX: maxX, MaxY: maxY},
				Seed:   baseSeed + index,
			})
			index++
		}
	}
	return tiles
}

// tileTask pairs a tile with a task ID, purely for result correlation.
type tileTask struct {
	tile   Tile
	taskID int
}

// TileResult reports a completed tile; Err is always nil today (RenderBounds
// cannot fail), kept for the same reason df07's pool keeps it: a worker loop
// that can one day surface a panic recovery or a cancellation error without
// changing its signature.
type TileResult struct {
	TaskID int
	Err    error
}

// WorkerPool renders an image by handing tiles to a fixed set of goroutines,
// each with its own RNG stream, writing into shared buffers partitioned by
// tile so no locking is needed.
type WorkerPool struct {
	rt         *Raytracer
	color      *Buffer
	position   *Buffer
	normal     *Buffer
	stats      []PixelStats
	numWorkers int
}

// NewWorkerPool creates a pool bound to rt, allocating buffers sized for
// width x height. numWorkers <= 0 uses runtime.NumCPU().
func NewWorkerPool(rt *Raytracer, width, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		rt:         rt,
		color:      NewBuffer(width, height),
		position:   NewBuffer(width, height),
		normal:     NewBuffer(width, height),
		stats:      make([]PixelStats, width*height),
		numWorkers: numWorkers,
	}
}

// Render splits the image into tileSize x tileSize tiles, renders them
// across the pool's workers, and returns the finished buffers and summary
// statistics once every tile has completed.
func (wp *WorkerPool) Render(tileSize int, baseSeed int64) (color, position, normal *Buffer, stats RenderStats) {
	tiles := SplitIntoTiles(wp.color.Width, wp.color.Height, tileSize, baseSeed)

	taskQueue := make(chan tileTask, len(tiles))
	resultQueue := make(chan TileResult, len(tiles))

	for i, tile := range tiles {
		taskQueue <- tileTask{tile: tile, taskID: i}
	}
	close(taskQueue)

	var wg sync.WaitGroup
	for w := 0; w < wp.numWorkers; w++ {
		wg.Add(1)
		go wp.runWorker(taskQueue, resultQueue, &wg)
	}

	go func() {
		wg.Wait()
		close(resultQueue)
	}()

	for range resultQueue {
		// Drained only to let every worker finish; RenderBounds writes
		// directly into wp's shared buffers so there is nothing else to
		// collect per tile.
	}

	wp.rt.logger.Printf("render complete: %d tiles across %d workers", len(tiles), wp.numWorkers)

	stats = Summarize(wp.stats)
	return wp.color, wp.position, wp.normal, stats
}

func (wp *WorkerPool) runWorker(taskQueue <-chan tileTask, resultQueue chan<- TileResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for task := range taskQueue {
		random := rand.New(rand.NewSource(task.tile.Seed))
		wp.rt.RenderBounds(task.tile.Bounds, wp.color, wp.position, wp.normal, wp.stats, random)
		resultQueue <- TileResult{TaskID: task.taskID}
	}
}
