package worker

import (
	"fmt"
	"sync"
	"time"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/plane"
	"MandelbrotExplorer/task"

	"github.com/BrugadaSyndrome/bslogger"
)

type Worker struct {
	id             int
	logger         bslogger.Logger
	mandelbrot     mandelbrot.Mandelbrot
	tasksCompleted int
}

func NewWorker(id int, m mandelbrot.Mandelbrot) Worker {
	return Worker{
		id:         id,
		logger:     bslogger.NewLogger(fmt.Sprintf("Worker %d", id), bslogger.Normal, nil),
		mandelbrot: m,
	}
}

func (w *Worker) TasksCompleted() int {
	return w.tasksCompleted
}

// ProcessTasks computes every task received on todo and hands it back on done. It returns once todo is closed.
func (w *Worker) ProcessTasks(todo <-chan task.Task, done chan<- task.Task, wg *sync.WaitGroup) {
	defer wg.Done()

	var startTime = time.Now()
	var processed int
	for taskTodo := range todo {
		w.Process(&taskTodo)
		done <- taskTodo
		processed++
	}
	w.tasksCompleted += processed

	w.logger.Debugf("Processed %d tasks in %s, %d in total", processed, time.Since(startTime), w.tasksCompleted)
}

func (w *Worker) Process(t *task.Task) {
	mapper := plane.NewMapper(t.Bounds, t.Viewport)
	for {
		coordinate, err := t.GetNextTask()
		if err != nil {
			break
		}

		re, im := mapper.PixelToComplex(coordinate.Column, coordinate.Row)
		t.AddResult(task.Pixel{
			Coordinate: coordinate,
			Color:      w.mandelbrot.Pixel(re, im),
		})
	}
}
