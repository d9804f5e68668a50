package archive

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ".7z" or the first volume of a multi-volume set, ".7z.001"
	sevenZipFirstRe = regexp.MustCompile(`(?i)\.7z(\.0*1)?$`)
	// suffixes stripped by Basename, e.g. "xyz.7z.001" -> "xyz"
	sevenZipBasenameRe = regexp.MustCompile(`(?i)\.7z(\.[0-9]+)?$`)
)

// SevenZip classifies 7-Zip archives, single files and the numbered
// ".7z.NNN" multi-volume scheme.
type SevenZip struct{}

func NewSevenZip() *SevenZip {
	return &SevenZip{}
}

func (*SevenZip) Family() Family {
	return FamilySevenZip
}

// FindArchives returns the representative of every 7-Zip set in files: plain
// ".7z" files and first volumes ("xyz.7z.001"). Later volumes of a set are
// excluded, they are covered by the removal glob of their first volume.
func (*SevenZip) FindArchives(files []string) map[string]struct{} {
	result := make(map[string]struct{})
	for _, name := range files {
		if sevenZipFirstRe.MatchString(name) {
			result[name] = struct{}{}
		}
	}
	return result
}

// Basename strips an optional numeric volume suffix and the trailing ".7z",
// once: "xyz.7z.001" and "xyz.7z" both become "xyz".
func (*SevenZip) Basename(name string) string {
	return sevenZipBasenameRe.ReplaceAllString(name, "")
}

// RemovalPatterns expands a representative path into the patterns that
// remove the whole set, e.g. "xyz.7z.001" -> "xyz".7z* "xyz.par2". The glob
// is left outside the quotes so the shell expands it.
func (s *SevenZip) RemovalPatterns(path string) []string {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ".7z") && !numericExt(ext) {
		panic(fmt.Sprintf("7zip removal patterns: not a 7-Zip path: %s", path))
	}
	base := filepath.Join(filepath.Dir(path), s.Basename(filepath.Base(path)))
	return []string{
		fmt.Sprintf(`"%s".7z*`, base),
		fmt.Sprintf(`"%s.par2"`, base),
	}
}

// numericExt reports whether ext is a purely numeric volume suffix
// such as ".001".
func numericExt(ext string) bool {
	if len(ext) < 2 || ext[0] != '.' {
		return false
	}
	for _, r := range ext[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
