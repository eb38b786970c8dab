//go:build !windows

package manager

import (
	"os/exec"
	"syscall"
)

// configureSysProcAttr detaches the child on Unix-like systems: a new
// session (setsid) keeps it off the controlling terminal so it survives
// this invocation's exit.
func configureSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
