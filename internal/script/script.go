package script

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"
)

const separatorWidth = 50

// Script accumulates command entries over one scan and renders the final
// output. Entries keep the order in which they were added.
type Script struct {
	platform Platform
	entries  []Entry
}

func New(platform Platform) *Script {
	return &Script{platform: platform}
}

func (s *Script) Add(e Entry) {
	s.entries = append(s.entries, e)
}

func (s *Script) Len() int {
	return len(s.entries)
}

// Render writes the script: a header with the generator version and
// timestamp, the entry count, on Windows a codepage switch when any command
// contains non-ASCII characters, then one numbered comment plus command line
// per entry.
func (s *Script) Render(w io.Writer, version string, now time.Time) error {
	lines := lo.Map(s.entries, func(e Entry, _ int) string {
		return e.Render(s.platform)
	})

	var b strings.Builder
	comment := s.platform.Comment
	fmt.Fprintf(&b, "%screated by %s at %s\n", comment, version, now.Format(time.RFC3339))
	fmt.Fprintf(&b, "%s%d entries\n", comment, len(lines))

	// Latin1/Latin15 characters in paths need a matching console codepage
	if s.platform.Windows && lo.SomeBy(lines, hasNonASCII) {
		fmt.Fprintln(&b, "chcp 1252")
		fmt.Fprintf(&b, "%s%s\n", comment, strings.Repeat("-", separatorWidth))
	}

	for i, line := range lines {
		fmt.Fprintf(&b, "%s-- %d. %s\n", comment, i+1, strings.Repeat("-", separatorWidth))
		fmt.Fprintf(&b, "%s\n", line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}
