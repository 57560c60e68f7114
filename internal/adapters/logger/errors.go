package logger

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/xcbatch/internal/ui/style"
)

// maxChainDepth bounds traversal of cyclic error chains.
const maxChainDepth = 100

// zerrError is the subset of *zerr.Error used to print one link of a chain.
type zerrError interface {
	Message() string
	Metadata() map[string]any
}

// errorEntry is one printable link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks err's chain. A zerr link contributes its own message and metadata;
// the first foreign error ends the walk with its full text. Links with an empty message only
// carry metadata, which is merged into the next printable link.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		z, ok := err.(zerrError)
		if !ok {
			entries = append(entries, errorEntry{message: err.Error(), metadata: pending})
			return entries
		}

		meta := mergeMetadata(pending, z.Metadata())
		if z.Message() == "" {
			pending = meta
		} else {
			entries = append(entries, errorEntry{message: z.Message(), metadata: meta})
			pending = nil
		}
		err = errors.Unwrap(err)
	}

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		last.metadata = mergeMetadata(last.metadata, pending)
	}
	return entries
}

// formatErrorEntries renders the chain as a headline followed by an indented cause list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.message, "\n")
		head := msgLines[0] + formatMetadata(e.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+head)
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+head)
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, meta[k])
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func mergeMetadata(a, b map[string]any) map[string]any {
	if len(a) == 0 {
		if len(b) == 0 {
			return nil
		}
		return b
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
