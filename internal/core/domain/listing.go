package domain

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// SchemeIndent is the leading whitespace that marks a scheme line in the listing output.
const SchemeIndent = "        "

// maxListingLine bounds a single listing line.
const maxListingLine = 1024 * 1024

// ListingResult holds the schemes extracted from a listing together with the number of
// lines that were dropped because they could not be decoded.
type ListingResult struct {
	Schemes []string
	Skipped int
}

// ParseSchemeListing extracts scheme names from the listing produced by the build tool.
//
// A line is a scheme iff it starts with SchemeIndent; the name is the line with surrounding
// whitespace removed. Section headers, blank lines, targets and configurations are discarded.
// Lines that are not valid UTF-8 are skipped and counted rather than failing the listing.
func ParseSchemeListing(r io.Reader) (ListingResult, error) {
	var res ListingResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxListingLine)

	for scanner.Scan() {
		line := scanner.Bytes()
		if !utf8.Valid(line) {
			res.Skipped++
			continue
		}

		s := string(line)
		if !strings.HasPrefix(s, SchemeIndent) {
			continue
		}
		res.Schemes = append(res.Schemes, strings.TrimSpace(s))
	}

	if err := scanner.Err(); err != nil {
		return res, zerr.Wrap(err, ErrListReadFailed.Error())
	}

	return res, nil
}
