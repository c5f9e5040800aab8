// Package git looks up the repository a focus session is started in, using
// go-git so no git binary is required.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/xvierd/focusflow/internal/ports"
)

// Detector implements the ports.GitDetector interface using go-git.
type Detector struct {
	// SkipStatus leaves IsClean false instead of walking the worktree, which
	// can be slow on large checkouts.
	SkipStatus bool
}

// NewDetector creates a new git detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Ensure Detector implements ports.GitDetector.
var _ ports.GitDetector = (*Detector)(nil)

// Detect finds the repository containing workingDir and reports its branch.
// A repository without commits reports the branch HEAD points at.
func (d *Detector) Detect(ctx context.Context, workingDir string) (*ports.GitInfo, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repo, err := git.PlainOpenWithOptions(workingDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("git repository not found: %w", err)
	}

	info := &ports.GitInfo{Repository: repoName(repo)}

	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		ref, refErr := repo.Reference(plumbing.HEAD, false)
		if refErr != nil {
			return nil, fmt.Errorf("failed to read HEAD: %w", refErr)
		}
		info.Branch = ref.Target().Short()
		return info, nil
	case err != nil:
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	info.Branch = head.Name().Short()
	if !head.Name().IsBranch() {
		info.Branch = "HEAD detached"
	}
	info.Commit = head.Hash().String()

	if d.SkipStatus {
		return info, nil
	}
	if err := ctx.Err(); err != nil {
		return info, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}
	info.IsClean = status.IsClean()

	return info, nil
}

func repoName(repo *git.Repository) string {
	remotes, err := repo.Remotes()
	if err != nil || len(remotes) == 0 {
		return ""
	}
	urls := remotes[0].Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return extractRepoName(urls[0])
}

// extractRepoName extracts "owner/repo" from a git URL.
func extractRepoName(url string) string {
	url = strings.TrimSuffix(url, ".git")

	// git@github.com:user/repo
	if strings.HasPrefix(url, "git@") {
		if i := strings.LastIndex(url, ":"); i >= 0 {
			return url[i+1:]
		}
	}

	if strings.HasPrefix(url, "http") {
		parts := strings.Split(url, "/")
		if len(parts) >= 2 {
			return parts[len(parts)-2] + "/" + parts[len(parts)-1]
		}
	}

	return url
}
