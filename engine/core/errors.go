package core

import (
	"errors"
)

var (
	ErrUnknownLogLevel   = errors.New("unknown log level")
	ErrUnknownInputType  = errors.New("unknown input type")
	ErrInvalidSubscriber = errors.New("subscriber callback is nil")
)
