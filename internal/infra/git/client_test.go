package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktree-io/worktree/internal/domain"
)

// setupSourceRepo creates a local repository that stands in for the remote.
func setupSourceRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Test\n"), 0o644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// runGit executes a git command and fails the test if it errors.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
}

// gitOutput runs a git command and returns its trimmed stdout.
func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err, "git %v failed", args)
	return strings.TrimSpace(string(out))
}

func TestClient_BareClone(t *testing.T) {
	source := setupSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "github", "acme", "widgets")
	client := NewClient()

	require.NoError(t, client.BareClone(source, dest))

	// The mirror is bare, tracks all branches, and has origin/main populated.
	assert.Equal(t, "true", gitOutput(t, dest, "rev-parse", "--is-bare-repository"))
	assert.Equal(t, "+refs/heads/*:refs/remotes/origin/*",
		gitOutput(t, dest, "config", "remote.origin.fetch"))
	assert.True(t, client.RemoteBranchExists(dest, "main"))
}

func TestClient_BareCloneCreatesParentDirs(t *testing.T) {
	source := setupSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "deeply", "nested", "mirror")

	require.NoError(t, NewClient().BareClone(source, dest))
	assert.DirExists(t, dest)
}

func TestClient_BareCloneBadURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "mirror")
	err := NewClient().BareClone(filepath.Join(t.TempDir(), "no-such-repo"), dest)
	assert.Error(t, err)
}

func TestClient_Fetch(t *testing.T) {
	source := setupSourceRepo(t)
	dest := filepath.Join(t.TempDir(), "mirror")
	client := NewClient()
	require.NoError(t, client.BareClone(source, dest))

	// Advance the source and verify the mirror picks it up.
	require.NoError(t, os.WriteFile(filepath.Join(source, "new.txt"), []byte("x\n"), 0o644))
	runGit(t, source, "add", ".")
	runGit(t, source, "commit", "-m", "Second commit")

	require.NoError(t, client.Fetch(dest))
	assert.Equal(t,
		gitOutput(t, source, "rev-parse", "main"),
		gitOutput(t, dest, "rev-parse", "refs/remotes/origin/main"))
}

func TestClient_DefaultBranch(t *testing.T) {
	t.Run("from symbolic ref", func(t *testing.T) {
		source := setupSourceRepo(t)
		dest := filepath.Join(t.TempDir(), "mirror")
		client := NewClient()
		require.NoError(t, client.BareClone(source, dest))
		runGit(t, dest, "symbolic-ref", "refs/remotes/origin/HEAD", "refs/remotes/origin/main")

		branch, err := client.DefaultBranch(dest)
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
	})

	t.Run("from remote show", func(t *testing.T) {
		source := setupSourceRepo(t)
		dest := filepath.Join(t.TempDir(), "mirror")
		client := NewClient()
		require.NoError(t, client.BareClone(source, dest))

		// No origin/HEAD symbolic ref; detection falls through to asking
		// the remote directly.
		branch, err := client.DefaultBranch(dest)
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
	})

	t.Run("from candidate probe", func(t *testing.T) {
		source := setupSourceRepo(t)
		dest := filepath.Join(t.TempDir(), "mirror")
		client := NewClient()
		require.NoError(t, client.BareClone(source, dest))

		// Remove the source so the first two tiers cannot answer; the
		// probe still finds the fetched origin/main ref.
		require.NoError(t, os.RemoveAll(source))

		branch, err := client.DefaultBranch(dest)
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
	})

	t.Run("exhausted", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "empty")
		runGit(t, t.TempDir(), "init", "--bare", dest)

		_, err := NewClient().DefaultBranch(dest)
		assert.ErrorIs(t, err, domain.ErrNoDefaultBranch)
	})
}

func TestClient_RemoteBranchExists(t *testing.T) {
	source := setupSourceRepo(t)
	runGit(t, source, "branch", "feature")

	dest := filepath.Join(t.TempDir(), "mirror")
	client := NewClient()
	require.NoError(t, client.BareClone(source, dest))

	assert.True(t, client.RemoteBranchExists(dest, "main"))
	assert.True(t, client.RemoteBranchExists(dest, "feature"))
	assert.False(t, client.RemoteBranchExists(dest, "nope"))
	assert.False(t, client.RemoteBranchExists(filepath.Join(t.TempDir(), "not-a-repo"), "main"))
}

func TestClient_AddWorktreeNewBranch(t *testing.T) {
	source := setupSourceRepo(t)
	bare := filepath.Join(t.TempDir(), "mirror")
	client := NewClient()
	require.NoError(t, client.BareClone(source, bare))

	dest := filepath.Join(bare, "issue-417")
	require.NoError(t, client.AddWorktree(bare, dest, "issue-417", "main", false))

	assert.Equal(t, "issue-417", gitOutput(t, dest, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.Equal(t,
		gitOutput(t, bare, "rev-parse", "refs/remotes/origin/main"),
		gitOutput(t, dest, "rev-parse", "HEAD"))
}

func TestClient_AddWorktreeTracksExistingBranch(t *testing.T) {
	source := setupSourceRepo(t)
	runGit(t, source, "checkout", "-b", "issue-7")
	require.NoError(t, os.WriteFile(filepath.Join(source, "wip.txt"), []byte("wip\n"), 0o644))
	runGit(t, source, "add", ".")
	runGit(t, source, "commit", "-m", "Work in progress")
	runGit(t, source, "checkout", "main")

	bare := filepath.Join(t.TempDir(), "mirror")
	client := NewClient()
	require.NoError(t, client.BareClone(source, bare))
	require.True(t, client.RemoteBranchExists(bare, "issue-7"))

	dest := filepath.Join(bare, "issue-7")
	require.NoError(t, client.AddWorktree(bare, dest, "issue-7", "main", true))

	assert.Equal(t, "issue-7", gitOutput(t, dest, "rev-parse", "--abbrev-ref", "HEAD"))
	assert.Equal(t, "origin/issue-7",
		gitOutput(t, dest, "rev-parse", "--abbrev-ref", "issue-7@{upstream}"))
	assert.Equal(t,
		gitOutput(t, bare, "rev-parse", "refs/remotes/origin/issue-7"),
		gitOutput(t, dest, "rev-parse", "HEAD"))
}

func TestClient_AddWorktreeDuplicateBranchFails(t *testing.T) {
	source := setupSourceRepo(t)
	bare := filepath.Join(t.TempDir(), "mirror")
	client := NewClient()
	require.NoError(t, client.BareClone(source, bare))

	first := filepath.Join(bare, "issue-1")
	require.NoError(t, client.AddWorktree(bare, first, "issue-1", "main", false))

	second := filepath.Join(bare, "issue-1-dup")
	err := client.AddWorktree(bare, second, "issue-1", "main", false)
	assert.Error(t, err)
}

func TestMirrorOriginURL(t *testing.T) {
	source := setupSourceRepo(t)
	bare := filepath.Join(t.TempDir(), "mirror")
	require.NoError(t, NewClient().BareClone(source, bare))

	url, err := MirrorOriginURL(bare)
	require.NoError(t, err)
	assert.Equal(t, source, url)
}

func TestMirrorOriginURL_NotARepo(t *testing.T) {
	_, err := MirrorOriginURL(t.TempDir())
	assert.Error(t, err)
}
