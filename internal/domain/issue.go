// Package domain contains the core types and ports for worktree.
package domain

import (
	"fmt"
	"path/filepath"
)

// IssueKind discriminates the closed set of issue trackers an IssueRef can
// point at. Adding a tracker means revisiting every switch over this type.
type IssueKind int

const (
	// IssueGitHub is a GitHub issue identified by its number.
	IssueGitHub IssueKind = iota
	// IssueLinear is a Linear issue identified by its UUID, paired with the
	// GitHub repository that hosts the code for that project.
	IssueLinear
)

// IssueRef is the canonical identity of one issue workspace.
// Owner and Repo are used verbatim as path and URL components.
// Number is set for IssueGitHub, LinearID for IssueLinear.
type IssueRef struct {
	Owner    string
	Repo     string
	LinearID string
	Number   uint64
	Kind     IssueKind
}

// DeepLinkOptions carries options embedded in a worktree:// deep link.
type DeepLinkOptions struct {
	// Editor override from the `editor` query param. May be a symbolic name
	// (cursor, code, zed, nvim, ...) or a raw command string. Never validated.
	Editor string
}

// WorkspaceDirName returns the directory name used inside the bare clone for
// this issue's worktree.
func (r IssueRef) WorkspaceDirName() string {
	switch r.Kind {
	case IssueGitHub:
		return fmt.Sprintf("issue-%d", r.Number)
	case IssueLinear:
		return "linear-" + r.LinearID
	default:
		panic(fmt.Sprintf("unknown issue kind %d", r.Kind))
	}
}

// BranchName returns the git branch name for this issue's worktree.
func (r IssueRef) BranchName() string {
	return r.WorkspaceDirName()
}

// CloneURL returns the HTTPS clone URL of the repository. Both kinds resolve
// to a GitHub-hosted repository.
func (r IssueRef) CloneURL() string {
	return fmt.Sprintf("https://github.com/%s/%s.git", r.Owner, r.Repo)
}

// BareClonePath returns the path of the shared bare mirror under root:
// <root>/github/<owner>/<repo>.
func (r IssueRef) BareClonePath(root string) string {
	return filepath.Join(root, "github", r.Owner, r.Repo)
}

// WorktreePath returns the path of this issue's checkout:
// <root>/github/<owner>/<repo>/<dir-name>.
func (r IssueRef) WorktreePath(root string) string {
	return filepath.Join(r.BareClonePath(root), r.WorkspaceDirName())
}

// String returns the shorthand form of the reference.
func (r IssueRef) String() string {
	switch r.Kind {
	case IssueGitHub:
		return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
	case IssueLinear:
		return fmt.Sprintf("%s/%s@%s", r.Owner, r.Repo, r.LinearID)
	default:
		panic(fmt.Sprintf("unknown issue kind %d", r.Kind))
	}
}

// IssueID returns the tracker-native identifier as a string: the issue
// number for GitHub, the UUID for Linear. Used as the {{issue}} hook variable.
func (r IssueRef) IssueID() string {
	switch r.Kind {
	case IssueGitHub:
		return fmt.Sprintf("%d", r.Number)
	case IssueLinear:
		return r.LinearID
	default:
		panic(fmt.Sprintf("unknown issue kind %d", r.Kind))
	}
}
