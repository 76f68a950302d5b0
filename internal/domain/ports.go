package domain

// RemoteGit performs git operations against a shared bare mirror. Every call
// is a single blocking subprocess invocation; failures propagate immediately
// and are never retried.
type RemoteGit interface {
	// BareClone clones url as a bare mirror at dest, configures the fetch
	// refspec to track all remote branches, and fetches once so the remote
	// HEAD ref is populated. All three steps must succeed.
	BareClone(url, dest string) error

	// Fetch refreshes an existing mirror from its origin.
	Fetch(bare string) error

	// DefaultBranch detects the remote's default branch using a three-tier
	// fallback: remote HEAD symbolic ref, `remote show origin` output, then
	// probing main/master/develop. Exhausting all tiers returns
	// ErrNoDefaultBranch.
	DefaultBranch(bare string) (string, error)

	// RemoteBranchExists reports whether origin/<branch> exists in the
	// mirror. A failed probe counts as "does not exist", never an error.
	RemoteBranchExists(bare, branch string) bool

	// AddWorktree checks out branch at dest. When branchExists is true the
	// worktree tracks the existing origin/<branch> under the same local
	// name; otherwise a new branch is created from origin/<baseBranch>.
	AddWorktree(bare, dest, branch, baseBranch string, branchExists bool) error
}

// ConfigStore loads and saves the user configuration.
type ConfigStore interface {
	// Load reads the config file, returning defaults when it doesn't exist.
	Load() (*Config, error)

	// Save writes the config file, creating parent directories as needed.
	Save(cfg *Config) error

	// Path returns the config file location.
	Path() string
}

// Opener launches an editor, terminal, or file manager on a workspace path.
type Opener interface {
	// OpenEditor runs the command template with `.` replaced by path.
	OpenEditor(path, command string) error

	// OpenWithHook opens path with command and arranges for initScript to
	// run inside the resulting window when command is a known terminal
	// emulator. Returns true when the script ran there; false means the
	// caller should run the hook itself.
	OpenWithHook(path, command, initScript string) (bool, error)
}

// HookRunner renders and executes a user-defined hook script.
type HookRunner interface {
	// Run renders script with ctx and executes it via sh. A non-zero exit
	// is reported as a warning, not an error.
	Run(script string, ctx HookContext) error
}

// SchemeStatus describes the installation state of the worktree:// handler.
type SchemeStatus struct {
	// Path is the handler artifact location when installed.
	Path      string
	Installed bool
}

// SchemeRegistrar manages the OS registration of the worktree:// URL scheme.
type SchemeRegistrar interface {
	Install() error
	Uninstall() error
	Status() (SchemeStatus, error)
}
