package blob

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// ErrInvalidArgument reports a caller mistake detected before any
// storage access.
var ErrInvalidArgument = errors.New("gitective: invalid argument")

// StorageError reports that the object store could not produce the
// content of an object: the id was not found, named a non-blob
// object, the content was too large to materialize, or the read
// itself failed. The underlying cause is wrapped for diagnostics but
// callers are expected to treat all of these alike.
type StorageError struct {
	Hash plumbing.Hash
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("gitective: reading object %s: %v", e.Hash, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
