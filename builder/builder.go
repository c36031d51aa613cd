package builder

import (
	"fmt"
	"image"
	"sync"
	"time"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/plane"
	"MandelbrotExplorer/task"
	"MandelbrotExplorer/worker"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	Partition task.Generation
	Viewport  plane.Viewport
	Workers   int
}

func (s *Settings) Verify() error {
	if err := s.Viewport.Verify(); err != nil {
		return err
	}
	if s.Partition < task.Row || s.Partition > task.Image {
		return fmt.Errorf("unknown generation type: %d", s.Partition)
	}
	if s.Workers < 1 {
		s.Workers = 1
	}
	return nil
}

// Builder renders complete rasters of the Mandelbrot set. Calls to Build are serialized so a
// rebuild requested while another one is running waits for it to finish.
type Builder struct {
	builds     uint
	logger     bslogger.Logger
	mandelbrot mandelbrot.Mandelbrot
	mutex      sync.Mutex
	settings   Settings
	workers    []worker.Worker
}

// NewBuilder starts with the worker pool used by every parallel build
func NewBuilder(m mandelbrot.Mandelbrot, settings Settings) *Builder {
	b := &Builder{
		logger:     bslogger.NewLogger("Builder", bslogger.Normal, nil),
		mandelbrot: m,
		settings:   settings,
	}
	if settings.Workers > 1 {
		for i := 0; i < settings.Workers; i++ {
			b.workers = append(b.workers, worker.NewWorker(i, m))
		}
	}
	return b
}

func (b *Builder) Viewport() plane.Viewport {
	return b.settings.Viewport
}

func (b *Builder) Builds() uint {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.builds
}

// TasksCompleted counts the tasks the worker pool has finished over every build so far
func (b *Builder) TasksCompleted() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	var total int
	for i := range b.workers {
		total += b.workers[i].TasksCompleted()
	}
	return total
}

// Build returns a new raster of the viewport for bounds. The raster is not touched again by the builder
// once returned.
func (b *Builder) Build(bounds plane.Bounds) *image.RGBA {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.logger.Info("Drawing image...")
	var startTime = time.Now()

	var img *image.RGBA
	if len(b.workers) == 0 {
		img = b.buildSequential(bounds)
	} else {
		img = b.buildParallel(bounds)
	}

	b.builds++
	b.logger.Infof("Image drawn in %s", time.Since(startTime))
	return img
}

func (b *Builder) buildSequential(bounds plane.Bounds) *image.RGBA {
	viewport := b.settings.Viewport
	img := misc.NewRGBA(viewport.Width, viewport.Height)
	mapper := plane.NewMapper(bounds, viewport)

	for y := 0; y < viewport.Height; y++ {
		for x := 0; x < viewport.Width; x++ {
			re, im := mapper.PixelToComplex(x, y)
			img.SetRGBA(x, y, b.mandelbrot.Pixel(re, im))
		}
	}
	return img
}

func (b *Builder) buildParallel(bounds plane.Bounds) *image.RGBA {
	viewport := b.settings.Viewport
	img := misc.NewRGBA(viewport.Width, viewport.Height)

	tasks := b.generateTasks(bounds)
	todo := make(chan task.Task, len(tasks))
	done := make(chan task.Task, len(tasks))
	for _, t := range tasks {
		todo <- t
	}
	close(todo)

	var wg sync.WaitGroup
	for i := range b.workers {
		wg.Add(1)
		go b.workers[i].ProcessTasks(todo, done, &wg)
	}

	go func() {
		wg.Wait()
		close(done)
	}()

	// Every pixel is written by this goroutine only
	pixelsLeft := viewport.PixelCount()
	for taskDone := range done {
		for _, result := range taskDone.Results {
			img.SetRGBA(result.Column, result.Row, result.Color)
			pixelsLeft--
		}
	}
	if pixelsLeft != 0 {
		b.logger.Warningf("Image finished with %d pixels left", pixelsLeft)
	}

	return img
}

func (b *Builder) generateTasks(bounds plane.Bounds) []task.Task {
	viewport := b.settings.Viewport
	var tasks []task.Task

	switch b.settings.Partition {
	case task.Column:
		for column := 0; column < viewport.Width; column++ {
			t := task.NewTask(uint(len(tasks)), bounds, viewport)
			t.AddTasksForColumn(column)
			tasks = append(tasks, t)
		}
	case task.Image:
		t := task.NewTask(0, bounds, viewport)
		t.AddTasksForImage()
		tasks = append(tasks, t)
	default:
		for row := 0; row < viewport.Height; row++ {
			t := task.NewTask(uint(len(tasks)), bounds, viewport)
			t.AddTasksForRow(row)
			tasks = append(tasks, t)
		}
	}

	b.logger.Debugf("Generated %d %s tasks", len(tasks), b.settings.Partition)
	return tasks
}
