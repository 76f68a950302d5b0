// Package usecase contains the application use cases composing domain ports.
package usecase

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/worktree-io/worktree/internal/domain"
)

// MirrorInspector reads metadata from an existing bare mirror. Failures are
// advisory only; the lifecycle never aborts on them.
type MirrorInspector func(bare string) (originURL string, err error)

// OpenWorkspace materializes (or reuses) the workspace for an issue:
// one shared bare mirror per owner/repo, one worktree per issue.
type OpenWorkspace struct {
	git     domain.RemoteGit
	inspect MirrorInspector
	logger  *slog.Logger
	root    string
}

// NewOpenWorkspace creates the use case. inspect may be nil to skip mirror
// origin verification.
func NewOpenWorkspace(git domain.RemoteGit, inspect MirrorInspector, logger *slog.Logger, root string) *OpenWorkspace {
	return &OpenWorkspace{
		git:     git,
		inspect: inspect,
		logger:  logger,
		root:    root,
	}
}

// Execute opens an existing worktree or creates a fresh one.
//
// An existing worktree short-circuits immediately: no fetch, no branch
// re-check. Otherwise the mirror is cloned (first reference to the repo) or
// fetched, the default branch detected, and a worktree added that either
// tracks an existing remote branch of the same name or starts a new branch
// from the default. Any failure aborts with no partial worktree; the mirror
// is left as clone/fetch produced it.
func (u *OpenWorkspace) Execute(issue domain.IssueRef) (*domain.Workspace, error) {
	worktreePath := issue.WorktreePath(u.root)
	barePath := issue.BareClonePath(u.root)

	if _, err := os.Stat(worktreePath); err == nil {
		return &domain.Workspace{Path: worktreePath, Issue: issue, Created: false}, nil
	}

	if _, err := os.Stat(barePath); os.IsNotExist(err) {
		u.logger.Info("cloning bare mirror", "url", issue.CloneURL(), "dest", barePath)
		if err := u.git.BareClone(issue.CloneURL(), barePath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat mirror path %s: %w", barePath, err)
	} else {
		u.verifyMirrorOrigin(issue, barePath)
		u.logger.Info("fetching origin", "mirror", barePath)
		if err := u.git.Fetch(barePath); err != nil {
			return nil, err
		}
	}

	baseBranch, err := u.git.DefaultBranch(barePath)
	if err != nil {
		return nil, err
	}
	u.logger.Info("detected default branch", "branch", baseBranch)

	branch := issue.BranchName()
	branchExists := u.git.RemoteBranchExists(barePath, branch)

	u.logger.Info("creating worktree", "branch", branch, "path", worktreePath, "tracking", branchExists)
	if err := u.git.AddWorktree(barePath, worktreePath, branch, baseBranch, branchExists); err != nil {
		return nil, err
	}

	return &domain.Workspace{Path: worktreePath, Issue: issue, Created: true}, nil
}

// verifyMirrorOrigin warns when the mirror at barePath tracks a different
// repository than the issue's clone URL. Advisory only.
func (u *OpenWorkspace) verifyMirrorOrigin(issue domain.IssueRef, barePath string) {
	if u.inspect == nil {
		return
	}
	origin, err := u.inspect(barePath)
	if err != nil {
		u.logger.Debug("could not inspect mirror origin", "mirror", barePath, "error", err)
		return
	}
	if origin != issue.CloneURL() {
		u.logger.Warn("mirror origin differs from issue repository",
			"mirror", barePath, "origin", origin, "expected", issue.CloneURL())
	}
}
