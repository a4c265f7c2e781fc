// Package worker provides a parallel tile rendering worker pool.
//
// Noise graphs are stateless and safe for concurrent evaluation, so the
// pool parallelizes across independent tiles rather than inside a single
// evaluation.
package worker

import (
	"context"
	"sync"
	"time"
)

// Renderer produces the encoded image for one tile of the pyramid.
type Renderer interface {
	RenderTile(ctx context.Context, z, x, y int) (png []byte, err error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, z, x, y int) ([]byte, error)

// RenderTile calls the wrapped function.
func (f RendererFunc) RenderTile(ctx context.Context, z, x, y int) ([]byte, error) {
	return f(ctx, z, x, y)
}

// Task identifies a single tile to render, in XYZ addressing.
type Task struct {
	Z int
	X int
	Y int
}

// Result is the outcome of rendering one tile.
type Result struct {
	Task    Task
	PNG     []byte
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Renderer   Renderer
	OnProgress ProgressFunc
}

// Pool renders tiles in parallel.
type Pool struct {
	workers    int
	renderer   Renderer
	onProgress ProgressFunc
}

// New creates a new worker pool. A non-positive worker count is treated
// as one worker.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		renderer:   cfg.Renderer,
		onProgress: cfg.OnProgress,
	}
}

// Tasks enumerates every tile of a pyramid between minZoom and maxZoom
// inclusive, 4^z tiles per level.
func Tasks(minZoom, maxZoom int) []Task {
	var tasks []Task
	for z := minZoom; z <= maxZoom; z++ {
		n := 1 << z
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				tasks = append(tasks, Task{Z: z, X: x, Y: y})
			}
		}
	}
	return tasks
}

// Run renders all tasks and returns their results. The call blocks until
// every task has completed or the context is cancelled; cancelled tasks
// carry the context error in their Result.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	var (
		completed int
		failed    int
		mu        sync.Mutex
	)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	// Feed tasks until done or cancelled.
	go func() {
		defer close(taskCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		for result := range resultCh {
			results = append(results, result)

			mu.Lock()
			completed++
			if result.Err != nil {
				failed++
			}
			c, f := completed, failed
			mu.Unlock()

			if p.onProgress != nil {
				p.onProgress(c, len(tasks), f)
			}
		}
		close(done)
	}()

	wg.Wait()
	close(resultCh)

	<-done

	return results
}

func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			results <- Result{
				Task: task,
				Err:  ctx.Err(),
			}
			continue
		default:
		}

		start := time.Now()
		png, err := p.renderer.RenderTile(ctx, task.Z, task.X, task.Y)
		elapsed := time.Since(start)

		results <- Result{
			Task:    task,
			PNG:     png,
			Err:     err,
			Elapsed: elapsed,
		}
	}
}
