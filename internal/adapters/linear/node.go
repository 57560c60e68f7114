package linear

import (
	"go.trai.ch/xcbatch/internal/adapters/detector"
	"go.trai.ch/xcbatch/internal/core/ports"
)

// ForMode returns a reporter on stdout for the resolved output mode.
func ForMode(mode detector.OutputMode) ports.Reporter {
	if mode == detector.ModeInteractive {
		return NewReporter(nil, true).WithWidth(detector.TerminalWidth())
	}
	return NewReporter(nil, false)
}
