//go:build unix

package shell

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// isolate starts the command in its own process group so that cancellation reaches the
// helpers it spawns, which would otherwise keep its output pipes open.
func isolate(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return killGroup(cmd)
	}
}

// killGroup sends SIGKILL to every process in the command's group.
func killGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		return os.ErrProcessDone
	}
	return err
}
