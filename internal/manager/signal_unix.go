//go:build !windows

package manager

import "syscall"

// forceKill sends SIGKILL to pid. No liveness or identity check is made
// first; a reused pid gets the signal all the same.
func forceKill(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}

// processExists checks whether a process with the given pid exists.
func processExists(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}
