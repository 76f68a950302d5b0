package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Scheme is the custom URL scheme handled by deep links.
const Scheme = "worktree"

const supportedFormats = `supported formats:
  - https://github.com/owner/repo/issues/42
  - worktree://open?owner=owner&repo=repo&issue=42
  - worktree://open?owner=owner&repo=repo&linear_id=<uuid>
  - owner/repo#42
  - owner/repo@<linear-uuid>`

// Parse parses any of the supported issue reference formats into an IssueRef.
// The forms are tried in a fixed order: worktree:// deep link, GitHub issue
// URL, owner/repo@<uuid> shorthand, owner/repo#N shorthand.
func Parse(s string) (IssueRef, error) {
	ref, _, err := ParseWithOptions(s)
	return ref, err
}

// ParseWithOptions is like Parse but also returns any DeepLinkOptions
// embedded in a worktree:// URL (e.g. the editor query param). For the other
// forms the options are empty.
func ParseWithOptions(s string) (IssueRef, DeepLinkOptions, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, Scheme+"://") {
		return parseDeepLink(s)
	}

	if strings.HasPrefix(s, "https://github.com") || strings.HasPrefix(s, "http://github.com") {
		ref, err := parseGitHubURL(s)
		return ref, DeepLinkOptions{}, err
	}

	if ref, ok, err := parseShorthand(s); ok {
		return ref, DeepLinkOptions{}, err
	}

	return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("cannot parse issue reference %q\n%s", s, supportedFormats)
}

// parseDeepLink parses a worktree://open?... URL. Identity-bearing params
// resolve in precedence order: url > linear_id > issue.
func parseDeepLink(s string) (IssueRef, DeepLinkOptions, error) {
	u, err := url.Parse(s)
	if err != nil {
		return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("invalid URL %q: %w", s, err)
	}
	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("invalid query in %q: %w", s, err)
	}

	var (
		issueNum  uint64
		hasIssue  bool
		linearID  string
		nestedURL string
	)
	if v := query.Get("issue"); v != "" {
		issueNum, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("invalid issue number %q", v)
		}
		hasIssue = true
	}
	if v := query.Get("linear_id"); v != "" {
		if !validUUID(v) {
			return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("invalid Linear issue UUID %q", v)
		}
		linearID = v
	}
	// url.Values already percent-decodes the nested URL for us.
	nestedURL = query.Get("url")

	opts := DeepLinkOptions{Editor: query.Get("editor")}

	if nestedURL != "" {
		ref, err := parseGitHubURL(nestedURL)
		return ref, opts, err
	}

	owner := query.Get("owner")
	repo := query.Get("repo")
	if owner == "" {
		return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("missing 'owner' query param in %q", s)
	}
	if repo == "" {
		return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("missing 'repo' query param in %q", s)
	}

	if linearID != "" {
		return IssueRef{Kind: IssueLinear, Owner: owner, Repo: repo, LinearID: linearID}, opts, nil
	}
	if !hasIssue {
		return IssueRef{}, DeepLinkOptions{}, fmt.Errorf("missing 'issue' query param in %q", s)
	}
	return IssueRef{Kind: IssueGitHub, Owner: owner, Repo: repo, Number: issueNum}, opts, nil
}

// validUUID reports whether s is a canonical hyphenated UUID
// (8-4-4-4-12 hex groups, case-insensitive). uuid.Parse alone also accepts
// braced, urn-prefixed, and undashed forms, which are not valid here.
func validUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// parseGitHubURL parses https://github.com/{owner}/{repo}/issues/{N}.
func parseGitHubURL(s string) (IssueRef, error) {
	u, err := url.Parse(s)
	if err != nil {
		return IssueRef{}, fmt.Errorf("invalid URL %q: %w", s, err)
	}

	var segments []string
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}

	if len(segments) < 4 || segments[2] != "issues" {
		return IssueRef{}, fmt.Errorf("expected GitHub issue URL like https://github.com/owner/repo/issues/42, got %q", s)
	}

	number, err := strconv.ParseUint(segments[3], 10, 64)
	if err != nil {
		return IssueRef{}, fmt.Errorf("invalid issue number %q in URL", segments[3])
	}

	return IssueRef{Kind: IssueGitHub, Owner: segments[0], Repo: segments[1], Number: number}, nil
}

// parseShorthand tries the owner/repo@<uuid> and owner/repo#N forms. ok is
// false when the input is not shaped like either form at all, in which case
// the caller falls through to the generic error. A malformed UUID or issue
// number in an otherwise well-shaped shorthand is a hard error.
func parseShorthand(s string) (ref IssueRef, ok bool, err error) {
	if at := strings.LastIndex(s, "@"); at >= 0 {
		repoPart, id := s[:at], s[at+1:]
		owner, repo, found := strings.Cut(repoPart, "/")
		if !found {
			return IssueRef{}, false, nil
		}
		if owner == "" || repo == "" {
			return IssueRef{}, true, fmt.Errorf("invalid shorthand %q", s)
		}
		if !validUUID(id) {
			return IssueRef{}, true, fmt.Errorf("invalid Linear issue UUID %q in shorthand", id)
		}
		return IssueRef{Kind: IssueLinear, Owner: owner, Repo: repo, LinearID: id}, true, nil
	}

	repoPart, numStr, found := strings.Cut(s, "#")
	if !found {
		return IssueRef{}, false, nil
	}
	owner, repo, found := strings.Cut(repoPart, "/")
	if !found {
		return IssueRef{}, false, nil
	}
	if owner == "" || repo == "" {
		return IssueRef{}, true, fmt.Errorf("invalid shorthand %q", s)
	}
	number, err := strconv.ParseUint(numStr, 10, 64)
	if err != nil {
		return IssueRef{}, true, fmt.Errorf("invalid issue number %q in shorthand", numStr)
	}
	return IssueRef{Kind: IssueGitHub, Owner: owner, Repo: repo, Number: number}, true, nil
}
