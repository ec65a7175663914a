package tui

import "github.com/MKhiriev/go-todo-keeper/models"

type loadedMsg struct {
	err error
}

type createdMsg struct {
	todo models.Todo
	err  error
}

type deletedMsg struct {
	todo models.Todo
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
