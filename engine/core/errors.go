package core

import (
	"errors"
)

var (
	// ErrNotInitialized is returned when a frame is requested before Initialize.
	ErrNotInitialized = errors.New("engine not initialized")
	// ErrCollaboratorInit wraps failures of the renderer backend or input source
	// to start. The command line maps it to exit code -1.
	ErrCollaboratorInit = errors.New("collaborator failed to initialize")
	ErrUnknown          = errors.New("unknown")
)
