package manager

import (
	"os"
	"os/exec"
)

// spawn launches binaryPath as a detached child with stdout and stderr
// discarded and returns its pid. The child is never waited on; reaping
// falls to init once this invocation exits.
func spawn(binaryPath string) (int, error) {
	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer func() { _ = null.Close() }()

	// #nosec G204 -- launching an arbitrary user-supplied binary is the point
	cmd := exec.Command(binaryPath)
	cmd.Stdout = null
	cmd.Stderr = null
	configureSysProcAttr(cmd)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	return cmd.Process.Pid, nil
}
