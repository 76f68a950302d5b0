// Package git runs remote git operations against bare mirrors via the git CLI.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/worktree-io/worktree/internal/domain"
)

// fetchRefspec makes a bare clone track all remote branches, not just the one
// checked out by default.
const fetchRefspec = "+refs/heads/*:refs/remotes/origin/*"

// defaultBranchCandidates are probed in order by the last detection tier.
var defaultBranchCandidates = []string{"main", "master", "develop"}

// Client implements domain.RemoteGit using the git binary on PATH.
type Client struct{}

// NewClient creates a new remote git client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.RemoteGit.
var _ domain.RemoteGit = (*Client)(nil)

// BareClone clones url as a bare mirror at dest, configures the fetch refspec
// to track all remote branches, and fetches so refs/remotes/origin/* and the
// remote HEAD are populated.
func (c *Client) BareClone(url, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
		return fmt.Errorf("create mirror parent directory: %w", err)
	}

	//nolint:gosec // url and dest come from the parsed issue reference
	cmd := exec.Command("git", "clone", "--bare", url, dest)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("clone --bare %s: %w: %s", url, err, string(out))
	}

	cmd = exec.Command("git", "-C", dest, "config", "remote.origin.fetch", fetchRefspec)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("configure remote.origin.fetch: %w: %s", err, string(out))
	}

	if err := c.Fetch(dest); err != nil {
		return fmt.Errorf("initial fetch after bare clone: %w", err)
	}
	return nil
}

// Fetch refreshes an existing mirror from its origin.
func (c *Client) Fetch(bare string) error {
	cmd := exec.Command("git", "-C", bare, "fetch", "origin")
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("fetch origin in %s: %w: %s", bare, err, string(out))
	}
	return nil
}

// DefaultBranch detects the remote's default branch. Tiers, each tried only
// when the previous produced no answer:
//  1. the refs/remotes/origin/HEAD symbolic ref
//  2. the "HEAD branch" line of `git remote show origin`
//  3. probing main, master, develop for an existing remote ref
func (c *Client) DefaultBranch(bare string) (string, error) {
	cmd := exec.Command("git", "-C", bare, "symbolic-ref", "refs/remotes/origin/HEAD")
	if out, err := cmd.Output(); err == nil {
		ref := strings.TrimSpace(string(out))
		if branch, ok := strings.CutPrefix(ref, "refs/remotes/origin/"); ok {
			return branch, nil
		}
	}

	cmd = exec.Command("git", "-C", bare, "remote", "show", "origin")
	if out, err := cmd.Output(); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if branch, ok := strings.CutPrefix(strings.TrimSpace(line), "HEAD branch: "); ok {
				return branch, nil
			}
		}
	}

	for _, candidate := range defaultBranchCandidates {
		if c.RemoteBranchExists(bare, candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w in %s", domain.ErrNoDefaultBranch, bare)
}

// RemoteBranchExists reports whether origin/<branch> exists in the mirror.
// A probe that cannot run counts as "does not exist".
func (c *Client) RemoteBranchExists(bare, branch string) bool {
	//nolint:gosec // branch is an argument, not a shell command
	cmd := exec.Command("git", "-C", bare, "rev-parse", "--verify", "--quiet", "refs/remotes/origin/"+branch)
	return cmd.Run() == nil
}

// AddWorktree checks out branch at dest. Exactly one of the two paths runs:
// track the existing origin/<branch> under the same local name, or create a
// new branch from origin/<baseBranch>.
func (c *Client) AddWorktree(bare, dest, branch, baseBranch string, branchExists bool) error {
	var args []string
	if branchExists {
		args = []string{"-C", bare, "worktree", "add", "--track", "-b", branch, dest, "origin/" + branch}
	} else {
		args = []string{"-C", bare, "worktree", "add", "-b", branch, dest, "origin/" + baseBranch}
	}

	//nolint:gosec // arguments derive from the parsed issue reference
	cmd := exec.Command("git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("worktree add for branch %s: %w: %s", branch, err, string(out))
	}
	return nil
}

// MirrorOriginURL reads the origin remote URL of an existing bare mirror
// in-process. Used to warn when a mirror path is occupied by a different
// repository than the issue expects.
func MirrorOriginURL(bare string) (string, error) {
	repo, err := gogit.PlainOpen(bare)
	if err != nil {
		return "", fmt.Errorf("open mirror %s: %w", bare, err)
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("origin remote in %s: %w", bare, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote in %s has no URL", bare)
	}
	return urls[0], nil
}
