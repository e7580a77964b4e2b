package common

import "errors"

// ErrNoSession is returned when an operation needs a cached token and there
// is none.
var ErrNoSession = errors.New("no active session")
