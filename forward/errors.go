package forward

import "github.com/pkg/errors"

var (
	// ErrNilSource is returned by Assign when the source list is nil.
	ErrNilSource = errors.New("forward: assign from nil list")
)
