package finder

import (
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Limit includes the first n commits that reach it, then stops the
// walk. The returned filter is stateful and good for one walk only.
func Limit(n int) Filter {
	count := 0
	return FilterFunc(func(*object.Commit) (bool, error) {
		if count >= n {
			return false, ErrStop
		}
		count++
		return true, nil
	})
}

// Author includes commits whose author name or email matches the
// pattern.
func Author(re *regexp.Regexp) Filter {
	return FilterFunc(func(c *object.Commit) (bool, error) {
		return re.MatchString(c.Author.Name) || re.MatchString(c.Author.Email), nil
	})
}

// Message includes commits whose full message matches the pattern.
func Message(re *regexp.Regexp) Filter {
	return FilterFunc(func(c *object.Commit) (bool, error) {
		return re.MatchString(c.Message), nil
	})
}

// Diffs computes the tree changes each commit introduces against its
// first parent (the empty tree for root commits) and hands them to
// fn. The blob hashes hanging off each change are what feed
// blob.Diff and blob.Content.
func Diffs(fn func(c *object.Commit, changes object.Changes) (bool, error)) Filter {
	return FilterFunc(func(c *object.Commit) (bool, error) {
		var parentTree *object.Tree
		if c.NumParents() > 0 {
			parent, err := c.Parent(0)
			if err != nil {
				return false, err
			}
			if parentTree, err = parent.Tree(); err != nil {
				return false, err
			}
		}
		tree, err := c.Tree()
		if err != nil {
			return false, err
		}
		changes, err := object.DiffTree(parentTree, tree)
		if err != nil {
			return false, err
		}
		return fn(c, changes)
	})
}

// Paths includes commits whose changes touch a path matching one of
// the doublestar glob patterns.
func Paths(patterns ...string) Filter {
	return Diffs(func(_ *object.Commit, changes object.Changes) (bool, error) {
		for _, ch := range changes {
			name := ch.To.Name
			if name == "" {
				name = ch.From.Name
			}
			for _, p := range patterns {
				ok, err := doublestar.Match(p, name)
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
		}
		return false, nil
	})
}
