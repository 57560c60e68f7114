// Package xcodebuild lists and builds workspace schemes with the external build tool.
package xcodebuild

// ListArgs returns the arguments that make the build tool print the workspace's schemes.
func ListArgs(workspace string) []string {
	return []string{"-quiet", "-workspace", workspace, "-list"}
}

// BuildArgs returns the arguments that build a single scheme.
func BuildArgs(workspace, scheme string) []string {
	return []string{"-workspace", workspace, "-scheme", scheme}
}
