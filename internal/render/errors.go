package render

import "errors"

var (
	// ErrRender indicates that a single record could not be rendered.
	ErrRender = errors.New("record render error")
	// ErrUnknownKind indicates that no formatter exists for a profile kind.
	ErrUnknownKind = errors.New("no formatter for profile kind")
)
