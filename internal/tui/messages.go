package tui

import (
	"github.com/MKhiriev/fresh-alert/models"
)

type restoreDoneMsg struct {
	ok  bool
	err error
}

type authDoneMsg struct {
	register bool
	err      error
}

type loggedOutMsg struct {
	err error
}

type listLoadedMsg struct {
	err error
}

type foodAddedMsg struct {
	food models.Food
	err  error
}

type foodDeletedMsg struct {
	name string
	err  error
}

type recognizedMsg struct {
	result models.RecognitionResult
	err    error
}

type passwordChangedMsg struct {
	err error
}

type secretKeyAddedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
