package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// preferredEditor returns $EDITOR, falling back to vi
func preferredEditor() string {
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// runEditor opens path in the user's editor and waits for it to exit
func runEditor(path string) error {
	c := exec.Command(preferredEditor(), path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// systemOpener returns the command the OS uses to open a file with its
// default application
func systemOpener() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}
	default:
		return "xdg-open", nil
	}
}

// openFile opens an image with the OS default viewer. The viewer is
// detached so gallery can exit while it stays open.
func openFile(path string) error {
	name, args := systemOpener()
	cmd := exec.Command(name, append(args, path)...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}
	return nil
}
