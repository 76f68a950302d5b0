package domain

// Workspace is the result of materializing (or reusing) a checkout for an
// issue. It is never persisted.
type Workspace struct {
	// Path is the worktree directory on disk.
	Path string
	// Issue is the identity the workspace was materialized for.
	Issue IssueRef
	// Created is true when this call created the worktree, false when an
	// existing one was reused.
	Created bool
}
