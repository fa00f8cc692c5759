// Package vcs answers git questions about the lint root.
package vcs

import (
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"
)

// ChangedFiles returns the worktree paths that differ from HEAD (modified,
// added, or untracked), relative to the repository root. The lint root must
// be inside a git repository.
func ChangedFiles(root string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	var files []string
	for path, st := range status {
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		if st.Worktree != git.Unmodified || st.Staging != git.Unmodified {
			files = append(files, path)
		}
	}

	sort.Strings(files)

	log.Debug().Int("count", len(files)).Msg("changed files resolved")
	return files, nil
}

// Head returns the current commit SHA, or "" when the root is not a
// repository or has no commits yet.
func Head(root string) string {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()
}
