package client

import "errors"

// ErrLocalDataNotAvailable is returned when the cache file cannot be opened.
var ErrLocalDataNotAvailable = errors.New("local data unavailable")
