package scheme

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/worktree-io/worktree/internal/domain"
)

const lsregister = "/System/Library/Frameworks/CoreServices.framework/Versions/A/Frameworks/" +
	"LaunchServices.framework/Versions/A/Support/lsregister"

// appBundlePath returns ~/Applications/WorktreeRunner.app.
func appBundlePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Applications", "WorktreeRunner.app"), nil
}

func installDarwin() error {
	exe, err := executablePath()
	if err != nil {
		return err
	}
	app, err := appBundlePath()
	if err != nil {
		return err
	}
	macosDir := filepath.Join(app, "Contents", "MacOS")
	if err := os.MkdirAll(macosDir, 0o755); err != nil {
		return fmt.Errorf("create app bundle: %w", err)
	}

	// Shell handler that forwards the URL as the first argument.
	handler := filepath.Join(macosDir, "runner-handler")
	script := fmt.Sprintf("#!/bin/sh\nexec %s open \"$1\"\n", exe)
	if err := os.WriteFile(handler, []byte(script), 0o755); err != nil { //nolint:gosec // handler must be executable
		return fmt.Errorf("write handler script: %w", err)
	}

	plist := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN"
    "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>CFBundleIdentifier</key>
    <string>io.worktree.runner</string>
    <key>CFBundleName</key>
    <string>WorktreeRunner</string>
    <key>CFBundleExecutable</key>
    <string>runner-handler</string>
    <key>CFBundlePackageType</key>
    <string>APPL</string>
    <key>LSUIElement</key>
    <true/>
    <key>CFBundleURLTypes</key>
    <array>
        <dict>
            <key>CFBundleURLName</key>
            <string>Worktree URL</string>
            <key>CFBundleURLSchemes</key>
            <array>
                <string>%s</string>
            </array>
        </dict>
    </array>
</dict>
</plist>
`, domain.Scheme)
	plistPath := filepath.Join(app, "Contents", "Info.plist")
	if err := os.WriteFile(plistPath, []byte(plist), 0o644); err != nil { //nolint:gosec // plists are world-readable
		return fmt.Errorf("write Info.plist: %w", err)
	}

	cmd := exec.Command(lsregister, "-f", app)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("lsregister: %w: %s", err, string(out))
	}
	return nil
}

func uninstallDarwin() error {
	app, err := appBundlePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(app); err != nil {
		return nil
	}
	// Best effort unregister before removing.
	_ = exec.Command(lsregister, "-u", app).Run()
	if err := os.RemoveAll(app); err != nil {
		return fmt.Errorf("remove app bundle %s: %w", app, err)
	}
	return nil
}

func statusDarwin() (domain.SchemeStatus, error) {
	app, err := appBundlePath()
	if err != nil {
		return domain.SchemeStatus{}, err
	}
	if _, err := os.Stat(filepath.Join(app, "Contents", "Info.plist")); err != nil {
		return domain.SchemeStatus{}, nil
	}
	return domain.SchemeStatus{Installed: true, Path: app}, nil
}
