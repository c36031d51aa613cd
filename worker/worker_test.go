package worker

import (
	"sync"
	"testing"

	"MandelbrotExplorer/mandelbrot"
	"MandelbrotExplorer/plane"
	"MandelbrotExplorer/task"
)

func newMandelbrot(t *testing.T) mandelbrot.Mandelbrot {
	t.Helper()
	settings := mandelbrot.Settings{MaxIterations: 60}
	if err := settings.Verify(); err != nil {
		t.Fatal(err)
	}
	return mandelbrot.NewMandelbrot(settings)
}

func TestProcessFillsEveryCoordinate(t *testing.T) {
	m := newMandelbrot(t)
	bounds := plane.Bounds{MinRe: -2, MaxRe: 1, MinIm: -1.125, MaxIm: 1.125}
	viewport := plane.Viewport{Width: 8, Height: 6}

	taskTodo := task.NewTask(0, bounds, viewport)
	taskTodo.AddTasksForRow(3)

	w := NewWorker(0, m)
	w.Process(&taskTodo)

	if !taskTodo.Done() || len(taskTodo.Results) != viewport.Width {
		t.Fatalf("got %d results, want %d", len(taskTodo.Results), viewport.Width)
	}

	mapper := plane.NewMapper(bounds, viewport)
	for i, p := range taskTodo.Results {
		re, im := mapper.PixelToComplex(i, 3)
		if want := m.Pixel(re, im); p.Color != want || p.Column != i || p.Row != 3 {
			t.Errorf("result %d is %s, want colour %v at (%d, 3)", i, &p, want, i)
		}
	}
}

func TestProcessTasksDrainsChannel(t *testing.T) {
	m := newMandelbrot(t)
	viewport := plane.Viewport{Width: 5, Height: 4}
	bounds := plane.AspectBounds(-2, 1, viewport)

	todo := make(chan task.Task, viewport.Height)
	done := make(chan task.Task, viewport.Height)
	for r := 0; r < viewport.Height; r++ {
		taskTodo := task.NewTask(uint(r), bounds, viewport)
		taskTodo.AddTasksForRow(r)
		todo <- taskTodo
	}
	close(todo)

	var wg sync.WaitGroup
	w := NewWorker(1, m)
	wg.Add(1)
	w.ProcessTasks(todo, done, &wg)
	wg.Wait()
	close(done)

	count := 0
	for taskDone := range done {
		if !taskDone.Done() {
			t.Errorf("task %d returned unfinished", taskDone.ID)
		}
		count++
	}
	if count != viewport.Height || w.TasksCompleted() != viewport.Height {
		t.Errorf("got %d tasks back and %d completed, want %d", count, w.TasksCompleted(), viewport.Height)
	}
}
