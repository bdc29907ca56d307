package lists

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrIndexOutOfRange        = errors.New("index out of range")
	ErrNullReference          = errors.New("null reference")
	ErrNoSuchElement          = errors.New("no such element")
	ErrIllegalState           = errors.New("illegal state")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// outOfRange reports the offending index together with the current size.
func outOfRange(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index: %d, size: %d", index, size)
}

func nullArgument(name string) error {
	return errors.Wrapf(ErrNullReference, "%s must not be nil", name)
}
