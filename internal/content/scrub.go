package content

import (
	"regexp"
	"strings"
)

var (
	blankLinesRe    = regexp.MustCompile(`\n\s*\n`)
	boldRe          = regexp.MustCompile(`\*\*(.+?)\*\*`)
	segmentMarkerRe = regexp.MustCompile(`(?i)\bsegment\s+\d+\b`)
	outroRe         = regexp.MustCompile(`(?i)\boutro\b`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
)

// Scrubber removes speaker labels, emphasis and structural leftovers from revised dialogue
type Scrubber struct {
	prefixRe *regexp.Regexp
}

// NewScrubber creates a scrubber that strips the labels of both hosts
func NewScrubber(hosts [2]string) *Scrubber {
	names := regexp.QuoteMeta(hosts[0]) + "|" + regexp.QuoteMeta(hosts[1])
	return &Scrubber{
		prefixRe: regexp.MustCompile(`^(?:\*\*)?(?:` + names + `)(?::\*\*|\*\*:|:)\s*`),
	}
}

// Line scrubs a single line of dialogue
func (s *Scrubber) Line(line string) string {
	line = s.prefixRe.ReplaceAllString(strings.TrimSpace(line), "")
	line = boldRe.ReplaceAllString(line, "$1")
	line = segmentMarkerRe.ReplaceAllString(line, "")
	line = outroRe.ReplaceAllString(line, "")
	line = multiSpaceRe.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

// Script normalizes blank lines and scrubs every line, lines left empty are dropped
func (s *Scrubber) Script(text string) []string {
	var lines []string
	for _, line := range strings.Split(NormalizeBlankLines(text), "\n") {
		if line = s.Line(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// NormalizeBlankLines collapses runs of blank lines and trims the text
func NormalizeBlankLines(text string) string {
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(text, "\n"))
}

// ScrubScript is a shortcut for NewScrubber(hosts).Script(text)
func ScrubScript(text string, hosts [2]string) []string {
	return NewScrubber(hosts).Script(text)
}
