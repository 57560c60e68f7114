package domain

import "go.trai.ch/zerr"

// BuildMode selects how a scheme's build output is captured.
type BuildMode string

const (
	// ModeSimple runs the build tool alone and captures its stdout line by line.
	ModeSimple BuildMode = "simple"
	// ModeChained pipes the build tool's stdout into a formatter process.
	ModeChained BuildMode = "chained"
)

// SuccessPolicy names how a build outcome is decided.
type SuccessPolicy string

const (
	// PolicyMarker treats a build as succeeded iff a captured line starts with the success marker.
	// The process exit status is ignored.
	PolicyMarker SuccessPolicy = "marker"
	// PolicyExitStatus treats a build as succeeded iff the build process exits with status zero.
	// Log content is ignored.
	PolicyExitStatus SuccessPolicy = "exit-status"
)

// ParseBuildMode validates a mode name. An empty name selects ModeSimple.
func ParseBuildMode(s string) (BuildMode, error) {
	switch BuildMode(s) {
	case "", ModeSimple:
		return ModeSimple, nil
	case ModeChained:
		return ModeChained, nil
	default:
		return "", zerr.With(ErrInvalidBuildMode, "mode", s)
	}
}

// Policy returns the success policy used by the mode.
func (m BuildMode) Policy() SuccessPolicy {
	if m == ModeChained {
		return PolicyExitStatus
	}
	return PolicyMarker
}

func (m BuildMode) String() string {
	return string(m)
}
