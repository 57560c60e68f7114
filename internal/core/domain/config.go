package domain

import "strings"

// DefaultBuildTool is the executable used to list and build schemes.
const DefaultBuildTool = "xcodebuild"

// DefaultFormatter pipes build output through xcpretty and writes a compile command database
// next to the scheme's logs.
var DefaultFormatter = []string{
	"xcpretty",
	"--report", "json-compilation-database",
	"--output", "{logDir}/{scheme}" + CompileCommandsSuffix,
}

// Config is the resolved run configuration.
type Config struct {
	Mode      BuildMode
	LogDir    string
	Toolchain Toolchain
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Mode:   ModeSimple,
		LogDir: DefaultLogDir,
		Toolchain: Toolchain{
			BuildTool:     DefaultBuildTool,
			Formatter:     append([]string(nil), DefaultFormatter...),
			SuccessMarker: DefaultSuccessMarker,
		},
	}
}

// ExpandFormatter substitutes the {scheme} and {logDir} placeholders in a formatter argv.
func ExpandFormatter(argv []string, scheme, logDir string) []string {
	r := strings.NewReplacer("{scheme}", scheme, "{logDir}", logDir)
	out := make([]string, len(argv))
	for i, a := range argv {
		out[i] = r.Replace(a)
	}
	return out
}
