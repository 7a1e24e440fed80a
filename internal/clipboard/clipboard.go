// Package clipboard talks to the system clipboard through the platform's
// own tools, so reads and writes work over SSH and on Wayland where cgo
// clipboard bindings tend not to. Both directions can fail (no tool
// installed, permission denied); callers must treat failure as an outcome,
// not a crash.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// System implements the grid's Clipboard collaborator on OS commands.
type System struct{}

func (System) WriteText(s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	switch runtime.GOOS {
	case "darwin":
		return runCmd("pbcopy", nil, s)
	case "windows":
		// Try clip.exe first; fall back to PowerShell.
		if err := runCmd("cmd", []string{"/c", "clip"}, s); err == nil {
			return nil
		}
		return runCmd("powershell", []string{"-NoProfile", "-Command", "Set-Clipboard"}, s)
	default:
		// Prefer Wayland if available, then X11 fallbacks.
		if err := runCmd("wl-copy", nil, s); err == nil {
			return nil
		}
		if err := runCmd("xclip", []string{"-selection", "clipboard"}, s); err == nil {
			return nil
		}
		return runCmd("xsel", []string{"--clipboard", "--input"}, s)
	}
}

func (System) ReadText() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return outputCmd("pbpaste", nil)
	case "windows":
		return outputCmd("powershell", []string{"-NoProfile", "-Command", "Get-Clipboard", "-Raw"})
	default:
		if out, err := outputCmd("wl-paste", []string{"--no-newline"}); err == nil {
			return out, nil
		}
		if out, err := outputCmd("xclip", []string{"-selection", "clipboard", "-o"}); err == nil {
			return out, nil
		}
		return outputCmd("xsel", []string{"--clipboard", "--output"})
	}
}

func runCmd(name string, args []string, stdin string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	if err := cmd.Run(); err != nil {
		return errors.New(name + ": " + err.Error())
	}
	return nil
}

func outputCmd(name string, args []string) (string, error) {
	if _, err := exec.LookPath(name); err != nil {
		return "", err
	}
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", errors.New(name + ": " + err.Error())
	}
	return string(out), nil
}
