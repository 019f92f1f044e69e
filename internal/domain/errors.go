package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDraftNotFound          = errors.New("draft not found")
	ErrUnknownSection         = errors.New("unknown section")
	ErrDictionaryKeyCollision = errors.New("dictionary key collision")
	ErrNoJSONBlock            = errors.New("no JSON block found")
)

// BuildError reports the pipeline step that stopped a build
type BuildError struct {
	TraceID string
	Step    string
	Message string
}

func (e *BuildError) Error() string {
	if e.Step == "" {
		return e.Message
	}
	return fmt.Sprintf("build failed at step %s: %s", e.Step, e.Message)
}
