package task

import (
	"errors"
	"fmt"
	"strings"

	"MandelbrotExplorer/plane"
)

var ErrNoMoreTasks = errors.New("no more tasks")

const (
	Row Generation = iota
	Column
	Image
)

// Generation is how a raster is split into tasks
type Generation int

func (g Generation) String() string {
	names := []string{
		"row", "column", "image",
	}
	if int(g) < 0 || int(g) >= len(names) {
		return fmt.Sprintf("%d", int(g))
	}
	return names[g]
}

func (g Generation) MarshalText() ([]byte, error) {
	if g < Row || g > Image {
		return nil, fmt.Errorf("unknown generation type: %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Generation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "row":
		*g = Row
	case "column":
		*g = Column
	case "image":
		*g = Image
	default:
		return fmt.Errorf("unknown generation type: %q", text)
	}
	return nil
}

type Task struct {
	Bounds      plane.Bounds
	CurrentTask int
	ID          uint
	Results     []Pixel
	Tasks       []Coordinate
	Viewport    plane.Viewport
}

func NewTask(id uint, bounds plane.Bounds, viewport plane.Viewport) Task {
	return Task{
		Bounds:   bounds,
		ID:       id,
		Viewport: viewport,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Bounds: %s ", t.Bounds)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results))
	output += fmt.Sprintf("Task Count: %d}", len(t.Tasks))
	return output
}

func (t *Task) AddTaskForPixel(coordinate Coordinate) {
	t.Tasks = append(t.Tasks, coordinate)
}

func (t *Task) AddTasksForRow(row int) {
	for c := 0; c < t.Viewport.Width; c++ {
		t.AddTaskForPixel(Coordinate{Column: c, Row: row})
	}
}

func (t *Task) AddTasksForColumn(column int) {
	for r := 0; r < t.Viewport.Height; r++ {
		t.AddTaskForPixel(Coordinate{Column: column, Row: r})
	}
}

func (t *Task) AddTasksForImage() {
	for r := 0; r < t.Viewport.Height; r++ {
		t.AddTasksForRow(r)
	}
}

// GetNextTask
// Returns the current coordinate to be processed. Make sure to return the result to the AddResult method before
// calling this method again
func (t *Task) GetNextTask() (Coordinate, error) {
	if t.Done() {
		return Coordinate{}, ErrNoMoreTasks
	}
	return t.Tasks[t.CurrentTask], nil
}

// AddResult
// When returning a result the CurrentTask value is incremented so the next call to the GetNextTask method will return
// the correct coordinate
func (t *Task) AddResult(pixel Pixel) {
	t.Results = append(t.Results, pixel)
	t.CurrentTask++
}

func (t *Task) Done() bool {
	return len(t.Results) >= len(t.Tasks)
}
