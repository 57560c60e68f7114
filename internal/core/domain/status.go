package domain

import "strings"

// DefaultSuccessMarker is the line prefix the build tool prints when a build succeeds.
const DefaultSuccessMarker = "** BUILD SUCCEEDED **"

// MarkerDetector watches captured lines for the success marker.
// The zero value uses DefaultSuccessMarker.
type MarkerDetector struct {
	Marker string
	seen   bool
}

// NewMarkerDetector returns a detector for marker, falling back to DefaultSuccessMarker.
func NewMarkerDetector(marker string) *MarkerDetector {
	return &MarkerDetector{Marker: marker}
}

// Observe inspects a single line of build output.
func (d *MarkerDetector) Observe(line string) {
	if d.seen {
		return
	}
	marker := d.Marker
	if marker == "" {
		marker = DefaultSuccessMarker
	}
	if strings.HasPrefix(line, marker) {
		d.seen = true
	}
}

// Succeeded reports whether the marker has been observed.
func (d *MarkerDetector) Succeeded() bool {
	return d.seen
}

// ExitStatusSucceeded classifies a build by its exit code alone.
func ExitStatusSucceeded(exitCode int) bool {
	return exitCode == 0
}
