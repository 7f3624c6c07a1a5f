package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrNoSQL     = errors.New("no valid SQL found in completion")
	ErrCacheMiss = errors.New("response cache miss")
)
