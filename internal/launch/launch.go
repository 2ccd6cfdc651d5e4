// Package launch starts applications detached from the launcher process.
package launch

import (
	"os/exec"
	"syscall"
)

// Launcher is the single capability the rest of the program depends on:
// run a fully-assembled shell command without waiting for it.
type Launcher interface {
	Launch(command string) error
}

// shellLauncher executes commands via the shell in a new session, so the
// child outlives the launcher and never holds its terminal.
type shellLauncher struct{}

// New returns the shell-backed Launcher
func New() Launcher {
	return shellLauncher{}
}

// Launch starts command detached. It returns once the process has started;
// the child is never waited on or monitored.
func (shellLauncher) Launch(command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start()
}
