// Package git stages and removes fragment files in the enclosing git
// repository. It uses the go-git library directly instead of shelling
// out, so the commands work without a git binary on PATH.
package git

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// openWorktree opens the repository enclosing path and returns its
// worktree. DetectDotGit walks up the directory tree, so path may be
// anywhere inside the repository.
func openWorktree(path string) (*git.Worktree, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	return worktree, nil
}

// relToRoot rewrites path relative to the worktree root, in the
// slash-separated form go-git's index operations expect.
func relToRoot(worktree *git.Worktree, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	rel, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return "", fmt.Errorf("relativizing %s: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}

// Stage adds the given files to the index of the repository enclosing
// dir. Paths may be absolute or relative to the current directory.
func Stage(dir string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	worktree, err := openWorktree(dir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		rel, err := relToRoot(worktree, path)
		if err != nil {
			return err
		}
		if _, err := worktree.Add(rel); err != nil {
			return fmt.Errorf("staging %s: %w", path, err)
		}
	}
	return nil
}

// Remove deletes the given files from both the index and the working
// tree of the repository enclosing dir.
func Remove(dir string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	worktree, err := openWorktree(dir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		rel, err := relToRoot(worktree, path)
		if err != nil {
			return err
		}
		if _, err := worktree.Remove(rel); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return nil
}
