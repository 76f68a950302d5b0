package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_GitHubURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IssueRef
	}{
		{
			name:  "https issue URL",
			input: "https://github.com/acme/widgets/issues/417",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
		{
			name:  "http issue URL",
			input: "http://github.com/acme/widgets/issues/417",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
		{
			name:  "trailing segments ignored",
			input: "https://github.com/acme/widgets/issues/417#issuecomment-1",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  https://github.com/acme/widgets/issues/417\n",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_GitHubURLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "pull request URL", input: "https://github.com/acme/widgets/pull/417"},
		{name: "repo URL without issue", input: "https://github.com/acme/widgets"},
		{name: "non-numeric issue", input: "https://github.com/acme/widgets/issues/abc"},
		{name: "negative issue number", input: "https://github.com/acme/widgets/issues/-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParse_Shorthand(t *testing.T) {
	got, err := Parse("acme/widgets#417")
	require.NoError(t, err)
	assert.Equal(t, IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417}, got)
}

func TestParse_ShorthandEquivalentToURL(t *testing.T) {
	fromURL, err := Parse("https://github.com/acme/widgets/issues/417")
	require.NoError(t, err)
	fromShorthand, err := Parse("acme/widgets#417")
	require.NoError(t, err)
	assert.Equal(t, fromURL, fromShorthand)
}

func TestParse_LinearShorthand(t *testing.T) {
	got, err := Parse("acme/widgets@9cad7a4b-9426-4788-9dbc-e784df999053")
	require.NoError(t, err)
	assert.Equal(t, IssueRef{
		Kind:     IssueLinear,
		Owner:    "acme",
		Repo:     "widgets",
		LinearID: "9cad7a4b-9426-4788-9dbc-e784df999053",
	}, got)
}

func TestParse_LinearShorthandSplitsOnLastAt(t *testing.T) {
	// An @ in the owner segment must not confuse the split.
	got, err := Parse("we@ird/widgets@9cad7a4b-9426-4788-9dbc-e784df999053")
	require.NoError(t, err)
	assert.Equal(t, "we@ird", got.Owner)
	assert.Equal(t, "9cad7a4b-9426-4788-9dbc-e784df999053", got.LinearID)
}

func TestParse_LinearShorthandBadUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a uuid", input: "acme/widgets@not-a-uuid"},
		{name: "truncated uuid", input: "acme/widgets@9cad7a4b-9426-4788-9dbc"},
		{name: "undashed uuid", input: "acme/widgets@9cad7a4b942647889dbce784df999053"},
		{name: "braced uuid", input: "acme/widgets@{9cad7a4b-9426-4788-9dbc-e784df99905}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			// A malformed UUID in a well-shaped shorthand is a hard error
			// naming the UUID, not the generic format list.
			assert.Contains(t, err.Error(), "UUID")
			assert.NotContains(t, err.Error(), "supported formats")
		})
	}
}

func TestParse_DeepLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IssueRef
	}{
		{
			name:  "owner repo issue",
			input: "worktree://open?owner=acme&repo=widgets&issue=417",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
		{
			name:  "linear id",
			input: "worktree://open?owner=acme&repo=widgets&linear_id=9cad7a4b-9426-4788-9dbc-e784df999053",
			want: IssueRef{
				Kind:     IssueLinear,
				Owner:    "acme",
				Repo:     "widgets",
				LinearID: "9cad7a4b-9426-4788-9dbc-e784df999053",
			},
		},
		{
			name:  "nested url",
			input: "worktree://open?url=https%3A%2F%2Fgithub.com%2Facme%2Fwidgets%2Fissues%2F417",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
		{
			name:  "url wins over owner repo issue",
			input: "worktree://open?owner=other&repo=thing&issue=1&url=https%3A%2F%2Fgithub.com%2Facme%2Fwidgets%2Fissues%2F417",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
		{
			name:  "url wins over linear_id",
			input: "worktree://open?owner=other&repo=thing&linear_id=9cad7a4b-9426-4788-9dbc-e784df999053&url=https%3A%2F%2Fgithub.com%2Facme%2Fwidgets%2Fissues%2F417",
			want:  IssueRef{Kind: IssueGitHub, Owner: "acme", Repo: "widgets", Number: 417},
		},
		{
			name:  "linear_id wins over issue",
			input: "worktree://open?owner=acme&repo=widgets&issue=417&linear_id=9cad7a4b-9426-4788-9dbc-e784df999053",
			want: IssueRef{
				Kind:     IssueLinear,
				Owner:    "acme",
				Repo:     "widgets",
				LinearID: "9cad7a4b-9426-4788-9dbc-e784df999053",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_DeepLinkErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantSub string
	}{
		{
			name:    "missing owner",
			input:   "worktree://open?repo=widgets&issue=417",
			wantSub: "owner",
		},
		{
			name:    "missing repo",
			input:   "worktree://open?owner=acme&issue=417",
			wantSub: "repo",
		},
		{
			name:    "missing issue and linear_id",
			input:   "worktree://open?owner=acme&repo=widgets",
			wantSub: "issue",
		},
		{
			name:    "invalid issue number",
			input:   "worktree://open?owner=acme&repo=widgets&issue=abc",
			wantSub: "issue number",
		},
		{
			name:    "invalid linear uuid",
			input:   "worktree://open?owner=acme&repo=widgets&linear_id=nope",
			wantSub: "UUID",
		},
		{
			// Malformed identity params are rejected even when url would win.
			name:    "invalid issue alongside url",
			input:   "worktree://open?issue=abc&url=https%3A%2F%2Fgithub.com%2Facme%2Fwidgets%2Fissues%2F417",
			wantSub: "issue number",
		},
		{
			name:    "invalid linear_id alongside url",
			input:   "worktree://open?linear_id=nope&url=https%3A%2F%2Fgithub.com%2Facme%2Fwidgets%2Fissues%2F417",
			wantSub: "UUID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestParse_ShorthandEmptySegments(t *testing.T) {
	for _, input := range []string{"/widgets#417", "acme/#417"} {
		_, err := Parse(input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid shorthand")
	}
}

func TestParseWithOptions_Editor(t *testing.T) {
	ref, opts, err := ParseWithOptions("worktree://open?owner=acme&repo=widgets&issue=417&editor=cursor")
	require.NoError(t, err)
	assert.Equal(t, uint64(417), ref.Number)
	assert.Equal(t, "cursor", opts.Editor)
}

func TestParseWithOptions_EmptyForNonDeepLink(t *testing.T) {
	for _, input := range []string{
		"https://github.com/acme/widgets/issues/417",
		"acme/widgets#417",
		"acme/widgets@9cad7a4b-9426-4788-9dbc-e784df999053",
	} {
		_, opts, err := ParseWithOptions(input)
		require.NoError(t, err)
		assert.Equal(t, DeepLinkOptions{}, opts)
	}
}

func TestParse_UnrecognizedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bare word", input: "widgets"},
		{name: "missing separator", input: "acme/widgets"},
		{name: "number only", input: "#417"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "supported formats")
		})
	}
}
