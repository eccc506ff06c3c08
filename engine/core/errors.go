package core

import (
	"errors"
)

var (
	ErrCameraMissing   = errors.New("no render camera attached")
	ErrQueueFull       = errors.New("queue is full")
	ErrQueueEmpty      = errors.New("queue is empty")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
