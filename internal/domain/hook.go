package domain

import "strings"

// HookContext carries the template variables available to hook scripts.
type HookContext struct {
	Owner        string
	Repo         string
	Issue        string
	Branch       string
	WorktreePath string
}

// NewHookContext builds the hook variables for an issue and its workspace path.
func NewHookContext(issue IssueRef, worktreePath string) HookContext {
	return HookContext{
		Owner:        issue.Owner,
		Repo:         issue.Repo,
		Issue:        issue.IssueID(),
		Branch:       issue.BranchName(),
		WorktreePath: worktreePath,
	}
}

// Render substitutes the {{var}} placeholders in a hook script template.
func (c HookContext) Render(template string) string {
	r := strings.NewReplacer(
		"{{owner}}", c.Owner,
		"{{repo}}", c.Repo,
		"{{issue}}", c.Issue,
		"{{branch}}", c.Branch,
		"{{worktree_path}}", c.WorktreePath,
	)
	return r.Replace(template)
}
