// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"github.com/worktree-io/worktree/internal/domain"
)

// MockRemoteGit is a test double for domain.RemoteGit.
// Fields are ordered to minimize memory padding.
type MockRemoteGit struct {
	BareCloneErr     error
	FetchErr         error
	DefaultBranchErr error
	AddWorktreeErr   error

	DefaultBranchName string
	ClonedURL         string
	ClonedDest        string
	FetchedBare       string
	WorktreeBare      string
	WorktreeDest      string
	WorktreeBranch    string
	WorktreeBase      string

	BranchExistsVal    bool
	WorktreeTracked    bool
	BareCloneCalled    bool
	FetchCalled        bool
	AddWorktreeCalled  bool
	BranchExistsCalled bool
}

// NewMockRemoteGit creates a MockRemoteGit that detects "main" by default.
func NewMockRemoteGit() *MockRemoteGit {
	return &MockRemoteGit{DefaultBranchName: "main"}
}

// Ensure MockRemoteGit implements domain.RemoteGit interface.
var _ domain.RemoteGit = (*MockRemoteGit)(nil)

// BareClone records the call and returns the configured error.
func (m *MockRemoteGit) BareClone(url, dest string) error {
	m.BareCloneCalled = true
	m.ClonedURL = url
	m.ClonedDest = dest
	return m.BareCloneErr
}

// Fetch records the call and returns the configured error.
func (m *MockRemoteGit) Fetch(bare string) error {
	m.FetchCalled = true
	m.FetchedBare = bare
	return m.FetchErr
}

// DefaultBranch returns the configured branch name or error.
func (m *MockRemoteGit) DefaultBranch(_ string) (string, error) {
	if m.DefaultBranchErr != nil {
		return "", m.DefaultBranchErr
	}
	return m.DefaultBranchName, nil
}

// RemoteBranchExists returns the configured value.
func (m *MockRemoteGit) RemoteBranchExists(_, _ string) bool {
	m.BranchExistsCalled = true
	return m.BranchExistsVal
}

// AddWorktree records the call and returns the configured error.
func (m *MockRemoteGit) AddWorktree(bare, dest, branch, baseBranch string, branchExists bool) error {
	m.AddWorktreeCalled = true
	m.WorktreeBare = bare
	m.WorktreeDest = dest
	m.WorktreeBranch = branch
	m.WorktreeBase = baseBranch
	m.WorktreeTracked = branchExists
	return m.AddWorktreeErr
}

// MockConfigStore is a test double for domain.ConfigStore.
type MockConfigStore struct {
	Config   *domain.Config
	LoadErr  error
	SaveErr  error
	FilePath string
	Saved    bool
}

// NewMockConfigStore creates a MockConfigStore with default config.
func NewMockConfigStore() *MockConfigStore {
	return &MockConfigStore{
		Config:   domain.NewDefaultConfig(),
		FilePath: "/test/.config/worktree/config.toml",
	}
}

// Ensure MockConfigStore implements domain.ConfigStore interface.
var _ domain.ConfigStore = (*MockConfigStore)(nil)

// Load returns the configured config or error.
func (m *MockConfigStore) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// Save records the saved config and returns the configured error.
func (m *MockConfigStore) Save(cfg *domain.Config) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = true
	m.Config = cfg
	return nil
}

// Path returns the configured file path.
func (m *MockConfigStore) Path() string {
	return m.FilePath
}

// MockOpener is a test double for domain.Opener.
type MockOpener struct {
	OpenEditorErr   error
	OpenedPath      string
	OpenedCommand   string
	InitScript      string
	HookRanInWindow bool
	OpenCalled      bool
	WithHookCalled  bool
}

// Ensure MockOpener implements domain.Opener interface.
var _ domain.Opener = (*MockOpener)(nil)

// OpenEditor records the call and returns the configured error.
func (m *MockOpener) OpenEditor(path, command string) error {
	m.OpenCalled = true
	m.OpenedPath = path
	m.OpenedCommand = command
	return m.OpenEditorErr
}

// OpenWithHook records the call and returns the configured values.
func (m *MockOpener) OpenWithHook(path, command, initScript string) (bool, error) {
	m.WithHookCalled = true
	m.OpenedPath = path
	m.OpenedCommand = command
	m.InitScript = initScript
	return m.HookRanInWindow, m.OpenEditorErr
}

// MockHookRunner is a test double for domain.HookRunner.
type MockHookRunner struct {
	RunErr     error
	RunScripts []string
	RunCtxs    []domain.HookContext
}

// Ensure MockHookRunner implements domain.HookRunner interface.
var _ domain.HookRunner = (*MockHookRunner)(nil)

// Run records the call and returns the configured error.
func (m *MockHookRunner) Run(script string, ctx domain.HookContext) error {
	m.RunScripts = append(m.RunScripts, script)
	m.RunCtxs = append(m.RunCtxs, ctx)
	return m.RunErr
}

// MockSchemeRegistrar is a test double for domain.SchemeRegistrar.
type MockSchemeRegistrar struct {
	InstallErr      error
	UninstallErr    error
	StatusVal       domain.SchemeStatus
	InstallCalled   bool
	UninstallCalled bool
}

// Ensure MockSchemeRegistrar implements domain.SchemeRegistrar interface.
var _ domain.SchemeRegistrar = (*MockSchemeRegistrar)(nil)

// Install records the call and returns the configured error.
func (m *MockSchemeRegistrar) Install() error {
	m.InstallCalled = true
	return m.InstallErr
}

// Uninstall records the call and returns the configured error.
func (m *MockSchemeRegistrar) Uninstall() error {
	m.UninstallCalled = true
	return m.UninstallErr
}

// Status returns the configured status.
func (m *MockSchemeRegistrar) Status() (domain.SchemeStatus, error) {
	return m.StatusVal, nil
}
