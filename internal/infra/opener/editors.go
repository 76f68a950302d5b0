package opener

import (
	"os/exec"
	"runtime"
	"strings"
)

// Editor pairs a display name with the command template that launches it.
type Editor struct {
	Name    string
	Command string
}

// symbolicEditors maps the symbolic names accepted in deep links to command
// templates. Lookup is case-insensitive.
var symbolicEditors = []Editor{
	{"cursor", "cursor ."},
	{"code", "code ."},
	{"zed", "zed ."},
	{"subl", "subl ."},
	{"nvim", "nvim ."},
	{"vim", "vim ."},
	{"iterm", "open -a iTerm ."},
	{"iterm2", "open -a iTerm ."},
	{"warp", "open -a Warp ."},
	{"ghostty", "open -a Ghostty ."},
	{"alacritty", "alacritty --working-directory ."},
	{"kitty", "kitty --directory ."},
	{"wezterm", "wezterm start --cwd ."},
	{"wt", "wt -d ."},
	{"windowsterminal", "wt -d ."},
}

// ResolveEditorCommand maps a symbolic editor name from a deep link to its
// command template. Unknown names are returned as-is and treated as raw
// commands.
func ResolveEditorCommand(name string) string {
	for _, e := range symbolicEditors {
		if strings.EqualFold(name, e.Name) {
			return e.Command
		}
	}
	if strings.EqualFold(name, "terminal") {
		switch runtime.GOOS {
		case "darwin":
			return "open -a Terminal ."
		case "windows":
			return "wt -d ."
		default:
			return "xterm"
		}
	}
	return name
}

// DetectEditors probes PATH (and, on macOS, the Applications folders) for
// installed editors and terminals, in preference order.
func DetectEditors() []Editor {
	pathCandidates := []Editor{
		{"Cursor", "cursor ."},
		{"VS Code", "code ."},
		{"Zed", "zed ."},
		{"Sublime Text", "subl ."},
		{"Neovim", "nvim ."},
		{"Vim", "vim ."},
		{"Alacritty", "alacritty --working-directory ."},
		{"Kitty", "kitty --directory ."},
		{"WezTerm", "wezterm start --cwd ."},
	}

	var found []Editor
	for _, e := range pathCandidates {
		program := strings.Fields(e.Command)[0]
		if _, err := exec.LookPath(program); err == nil {
			found = append(found, e)
		}
	}

	if runtime.GOOS == "darwin" {
		found = append(found, Editor{"Terminal", "open -a Terminal ."})
		appCandidates := []struct {
			editor Editor
			app    string
		}{
			{Editor{"iTerm2", "open -a iTerm ."}, "iTerm"},
			{Editor{"Warp", "open -a Warp ."}, "Warp"},
			{Editor{"Ghostty", "open -a Ghostty ."}, "Ghostty"},
		}
		for _, c := range appCandidates {
			if macAppExists(c.app) {
				found = append(found, c.editor)
			}
		}
	}

	if runtime.GOOS == "windows" {
		if _, err := exec.LookPath("wt"); err == nil {
			found = append(found, Editor{"Windows Terminal", "wt -d ."})
		}
	}

	return found
}
