package client

import "errors"

var (
	ErrNoSession      = errors.New("no saved session")
	ErrCorruptSession = errors.New("session file is corrupt")
)
