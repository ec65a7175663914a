package todolist

import "github.com/MKhiriev/go-todo-keeper/models"

// View is a snapshot of what the list renders.
//
// Todos and the empty-state marker are mutually exclusive: ShowEmptyMarker is
// true only when Todos is empty and the list has been confirmed by the
// backend at least once.
type View struct {
	Todos           []models.Todo
	ShowEmptyMarker bool
	// Loaded is false until the first Load completes, whatever its outcome.
	Loaded bool
}

// EmptyMarker returns the marker text when it is shown, and "" otherwise.
func (v View) EmptyMarker() string {
	if !v.ShowEmptyMarker {
		return ""
	}
	return EmptyMarker
}
