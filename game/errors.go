package game

import "errors"

var (
	ErrInvalidColor  = errors.New("bad player color")
	ErrInvalidLayout = errors.New("bad board description")
	ErrEmptyHistory  = errors.New("no previous move to undo")
	ErrInvalidMove   = errors.New("bad move notation")
)
