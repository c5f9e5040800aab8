package ports

import (
	"context"
)

// GitInfo holds the repository context shown next to a focus session.
type GitInfo struct {
	Branch     string
	Commit     string
	IsClean    bool
	Repository string
}

// GitDetector defines the interface for git context detection.
// This is a driven port (implemented by adapters).
type GitDetector interface {
	// Detect scans workingDir (or the process directory when empty).
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)
}

// Label formats the context for the overlay header, e.g. "main@1a2b3c4*".
// A trailing star marks uncommitted changes.
func (g *GitInfo) Label() string {
	if g == nil || g.Branch == "" {
		return ""
	}
	label := g.Branch
	if g.Commit != "" {
		commit := g.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		label += "@" + commit
		if !g.IsClean {
			label += "*"
		}
	}
	return label
}
