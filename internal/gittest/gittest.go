// Package gittest builds throwaway in-memory repositories for tests.
package gittest

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

// Repo wraps an in-memory repository with helpers for staging
// deterministic commits. The commit clock advances one minute per
// commit from a fixed epoch, so repeated runs produce identical
// hashes.
type Repo struct {
	Repo *git.Repository

	fs    billy.Filesystem
	wt    *git.Worktree
	clock time.Time
}

// New initializes an empty in-memory repository.
func New(t *testing.T) *Repo {
	t.Helper()
	fs := memfs.New()
	r, err := git.Init(memory.NewStorage(), fs)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}
	wt, err := r.Worktree()
	if err != nil {
		t.Fatalf("get worktree: %v", err)
	}
	return &Repo{
		Repo:  r,
		fs:    fs,
		wt:    wt,
		clock: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Add writes content to path, stages it, and commits, returning the
// hash of the staged blob.
func (r *Repo) Add(t *testing.T, path, content string) plumbing.Hash {
	return r.AddAuthored(t, path, content, "Test Author", "author@example.com")
}

// AddAuthored is Add with an explicit author.
func (r *Repo) AddAuthored(t *testing.T, path, content, name, email string) plumbing.Hash {
	t.Helper()
	if err := util.WriteFile(r.fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	h, err := r.wt.Add(path)
	if err != nil {
		t.Fatalf("stage %s: %v", path, err)
	}
	r.commit(t, "add "+path, name, email)
	return h
}

// Remove deletes path and commits the removal, returning the commit
// hash.
func (r *Repo) Remove(t *testing.T, path string) plumbing.Hash {
	t.Helper()
	if _, err := r.wt.Remove(path); err != nil {
		t.Fatalf("remove %s: %v", path, err)
	}
	return r.commit(t, "remove "+path, "Test Author", "author@example.com")
}

// Head returns the hash of the current HEAD commit.
func (r *Repo) Head(t *testing.T) plumbing.Hash {
	t.Helper()
	ref, err := r.Repo.Head()
	if err != nil {
		t.Fatalf("resolve HEAD: %v", err)
	}
	return ref.Hash()
}

func (r *Repo) commit(t *testing.T, msg, name, email string) plumbing.Hash {
	t.Helper()
	r.clock = r.clock.Add(time.Minute)
	sig := &object.Signature{Name: name, Email: email, When: r.clock}
	h, err := r.wt.Commit(msg, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("commit %q: %v", msg, err)
	}
	return h
}
