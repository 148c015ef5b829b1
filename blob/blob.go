// Package blob loads and diffs blob content from a Git object store.
//
// Operations take the store's object-reading capability
// (storer.EncodedObjectStorer, available as the Storer field of
// *git.Repository) and object ids. The store is borrowed, never
// mutated and never closed. plumbing.ZeroHash is a sentinel meaning
// "absent content" for Diff; Content treats it like any other id and
// lets the lookup fail.
package blob

import (
	"fmt"
	"io"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// MaxContentSize is the largest blob Content will materialize in
// memory. Larger objects fail with a StorageError.
const MaxContentSize = 64 << 20

// Content returns the full byte content of the blob with the given
// id. It either returns the complete content or an error; there is no
// partial result. Failures to produce content, whatever the storage
// level cause, are reported as *StorageError.
func Content(store storer.EncodedObjectStorer, h plumbing.Hash) ([]byte, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: nil store", ErrInvalidArgument)
	}
	return content(store, h)
}

func content(store storer.EncodedObjectStorer, h plumbing.Hash) ([]byte, error) {
	obj, err := store.EncodedObject(plumbing.BlobObject, h)
	if err != nil {
		return nil, &StorageError{Hash: h, Err: err}
	}
	if obj.Size() > MaxContentSize {
		err := fmt.Errorf("object is %d bytes, above the %d byte limit", obj.Size(), MaxContentSize)
		return nil, &StorageError{Hash: h, Err: err}
	}
	r, err := obj.Reader()
	if err != nil {
		return nil, &StorageError{Hash: h, Err: err}
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &StorageError{Hash: h, Err: err}
	}
	return data, nil
}
