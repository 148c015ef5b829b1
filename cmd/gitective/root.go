package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

var env = envconfig.MustProcess(context.Background(), &struct {
	Repo string `env:"GITECTIVE_REPO,default=."`
}{})

var repoPath string

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitective",
		Short:         "Inspect blob content and history of a Git repository",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&repoPath, "repo", env.Repo, "path to the repository")
	cmd.AddCommand(catCmd(), diffCmd(), logCmd())
	return cmd
}

func openRepo() (*git.Repository, error) {
	r, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", repoPath, err)
	}
	return r, nil
}

// resolveBlob turns a command-line argument into a blob id. The
// argument is a full object id, "-" for the absent side, or rev:path.
func resolveBlob(r *git.Repository, arg string) (plumbing.Hash, error) {
	if arg == "-" {
		return plumbing.ZeroHash, nil
	}
	if plumbing.IsHash(arg) {
		return plumbing.NewHash(arg), nil
	}
	rev, path, ok := strings.Cut(arg, ":")
	if !ok {
		return plumbing.ZeroHash, fmt.Errorf("cannot resolve %q: want an object id, rev:path, or -", arg)
	}
	h, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolving revision %q: %w", rev, err)
	}
	commit, err := r.CommitObject(*h)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("loading commit %s: %w", h, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("loading tree of %s: %w", h, err)
	}
	entry, err := tree.FindEntry(path)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("finding %s at %s: %w", path, rev, err)
	}
	return entry.Hash, nil
}
