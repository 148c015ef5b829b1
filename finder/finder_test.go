package finder_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gargdeendayal/gitective/blob"
	"github.com/gargdeendayal/gitective/finder"
	"github.com/gargdeendayal/gitective/internal/gittest"
)

// collect returns a side-effecting filter that records every commit
// reaching it, plus the backing slice.
func collect(hashes *[]plumbing.Hash) finder.Filter {
	return finder.FilterFunc(func(c *object.Commit) (bool, error) {
		*hashes = append(*hashes, c.Hash)
		return true, nil
	})
}

func TestFindAll(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "a.txt", "a\n")
	tr.Add(t, "b.txt", "b\n")
	tr.Add(t, "c.txt", "c\n")

	var seen []plumbing.Hash
	err := finder.New(tr.Repo).SetFilter(collect(&seen)).Find(context.Background())
	require.NoError(t, err)
	assert.Len(t, seen, 3)
	assert.Equal(t, tr.Head(t), seen[0])
}

func TestLimit(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "a.txt", "a\n")
	tr.Add(t, "b.txt", "b\n")
	tr.Add(t, "c.txt", "c\n")

	var seen []plumbing.Hash
	err := finder.New(tr.Repo).
		SetFilter(finder.Limit(2), collect(&seen)).
		Find(context.Background())
	require.NoError(t, err)
	assert.Len(t, seen, 2)
}

func TestAuthor(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "a.txt", "a\n")
	tr.AddAuthored(t, "b.txt", "b\n", "Someone Else", "else@example.com")

	var seen []plumbing.Hash
	err := finder.New(tr.Repo).
		SetFilter(finder.Author(regexp.MustCompile(`else@`)), collect(&seen)).
		Find(context.Background())
	require.NoError(t, err)
	assert.Len(t, seen, 1)
}

func TestMessage(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "a.txt", "a\n")
	tr.Remove(t, "a.txt")

	var seen []plumbing.Hash
	err := finder.New(tr.Repo).
		SetFilter(finder.Message(regexp.MustCompile(`^remove`)), collect(&seen)).
		Find(context.Background())
	require.NoError(t, err)
	assert.Len(t, seen, 1)
}

func TestPaths(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "docs/readme.md", "hi\n")
	tr.Add(t, "src/main.go", "package main\n")

	var seen []plumbing.Hash
	err := finder.New(tr.Repo).
		SetFilter(finder.Paths("docs/**"), collect(&seen)).
		Find(context.Background())
	require.NoError(t, err)
	assert.Len(t, seen, 1)
}

// TestDiffsFeedDiff walks the history of a file that was written
// twice, harvests the blob ids from the tree changes, and diffs them.
func TestDiffsFeedDiff(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "file.txt", "a\nb")
	tr.Add(t, "file.txt", "c\nb")

	var ids []plumbing.Hash
	err := finder.New(tr.Repo).
		SetFilter(finder.Diffs(func(_ *object.Commit, changes object.Changes) (bool, error) {
			for _, ch := range changes {
				ids = append(ids, ch.To.TreeEntry.Hash)
			}
			return true, nil
		})).
		Find(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 2)

	// The walk is newest first, so ids[1] is the original version.
	edits, err := blob.Diff(tr.Repo.Storer, ids[1], ids[0])
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, blob.EditReplace, edits[0].Kind)
}

// TestDiffsDeletedFile mirrors diffing a real blob against an absent
// side: the removal change carries no To hash, and the diff is one
// pure deletion.
func TestDiffsDeletedFile(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "file.txt", "a\nb\n")
	removal := tr.Remove(t, "file.txt")

	var from, to plumbing.Hash
	err := finder.New(tr.Repo).
		SetFilter(
			finder.Limit(1),
			finder.Diffs(func(_ *object.Commit, changes object.Changes) (bool, error) {
				require.Len(t, changes, 1)
				from = changes[0].From.TreeEntry.Hash
				to = changes[0].To.TreeEntry.Hash
				return true, nil
			}),
		).
		FindFrom(context.Background(), removal)
	require.NoError(t, err)
	require.False(t, from.IsZero())
	require.True(t, to.IsZero())

	edits, err := blob.Diff(tr.Repo.Storer, from, to)
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, blob.EditDelete, edits[0].Kind)
	assert.Equal(t, 2, edits[0].EndA-edits[0].BeginA)
}

func TestFindCanceledContext(t *testing.T) {
	tr := gittest.New(t)
	tr.Add(t, "a.txt", "a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := finder.New(tr.Repo).Find(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindNilRepository(t *testing.T) {
	err := finder.New(nil).Find(context.Background())
	assert.Error(t, err)
}
