//go:build !unix

package shell

import "os/exec"

// isolate is a no-op where process groups are unavailable; cancellation kills only the
// direct child.
func isolate(_ *exec.Cmd) {}
