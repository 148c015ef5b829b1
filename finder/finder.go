// Package finder walks the commit graph of a repository, selecting
// commits through a chain of filters. Filters both select and act:
// collecting results from a walk means installing a filter that
// records what it sees.
package finder

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// ErrStop ends a walk early without error. Filters return it
// (usually alongside include == false) once they have seen enough.
var ErrStop = errors.New("finder: stop walk")

// Filter decides whether a commit is included in a walk. A commit is
// included only if every filter in the chain includes it; the first
// filter that excludes it short-circuits the rest.
type Filter interface {
	Include(c *object.Commit) (bool, error)
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(*object.Commit) (bool, error)

func (f FilterFunc) Include(c *object.Commit) (bool, error) { return f(c) }

// Finder walks commits in reverse chronological order applying a
// filter chain.
type Finder struct {
	repo    *git.Repository
	filters []Filter
}

// New creates a Finder over the given repository.
func New(r *git.Repository) *Finder {
	return &Finder{repo: r}
}

// SetFilter replaces the filter chain and returns the Finder for
// chaining.
func (f *Finder) SetFilter(filters ...Filter) *Finder {
	f.filters = filters
	return f
}

// Find walks from HEAD.
func (f *Finder) Find(ctx context.Context) error {
	if f.repo == nil {
		return errors.New("finder: nil repository")
	}
	head, err := f.repo.Head()
	if err != nil {
		return fmt.Errorf("resolving HEAD: %w", err)
	}
	return f.FindFrom(ctx, head.Hash())
}

// FindFrom walks from the given commit.
func (f *Finder) FindFrom(ctx context.Context, from plumbing.Hash) error {
	if f.repo == nil {
		return errors.New("finder: nil repository")
	}
	iter, err := f.repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return fmt.Errorf("opening commit log: %w", err)
	}
	defer iter.Close()

	return iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, flt := range f.filters {
			ok, err := flt.Include(c)
			if errors.Is(err, ErrStop) {
				return storer.ErrStop
			}
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		return nil
	})
}
