package archive

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var (
	// any ".partN.rar" volume, e.g. "xyz.part03.rar"
	rarVolumeRe = regexp.MustCompile(`(?i)\.part[0-9]+\.rar$`)
	// first volume of a modern set, "part1", "part01", "part001", ...
	rarFirstVolumeRe = regexp.MustCompile(`(?i)\.part0*1\.rar$`)
	// legacy numbered volume, e.g. "xyz.r00", "xyz.r01"
	rarLegacyVolumeRe = regexp.MustCompile(`(?i)\.r[0-9]+$`)
	// suffixes stripped by Basename
	rarBasenameRe = regexp.MustCompile(`(?i)(\.part[0-9]+)?\.rar$`)
)

// Rar classifies RAR archives. The filesystem is only used to probe for a
// legacy ".r00" sibling when building removal patterns.
type Rar struct {
	fs afero.Fs
}

func NewRar(fs afero.Fs) *Rar {
	return &Rar{fs: fs}
}

func (*Rar) Family() Family {
	return FamilyRar
}

// FindArchives returns the representative of every RAR set in files.
//
// A legacy set ("xyz.rar" + "xyz.r00", "xyz.r01", ...) is represented by the
// "xyz.rar" sibling, which is added even when the listing itself does not
// contain it.
func (r *Rar) FindArchives(files []string) map[string]struct{} {
	result := make(map[string]struct{})

	// single files, not part of a modern multi-volume set
	for _, name := range files {
		if strings.HasSuffix(strings.ToLower(name), ".rar") && !rarVolumeRe.MatchString(name) {
			result[name] = struct{}{}
		}
	}

	// first volumes of modern multi-volume sets
	for _, name := range files {
		if rarFirstVolumeRe.MatchString(name) {
			result[name] = struct{}{}
		}
	}

	// legacy volumes map to their .rar sibling
	for _, name := range files {
		if rarLegacyVolumeRe.MatchString(name) {
			stem := strings.TrimSuffix(name, filepath.Ext(name))
			result[stem+".rar"] = struct{}{}
		}
	}

	return result
}

// Basename strips an optional ".partN" segment and the trailing ".rar",
// once: "xyz.part1.rar" and "xyz.rar" both become "xyz".
func (*Rar) Basename(name string) string {
	return rarBasenameRe.ReplaceAllString(name, "")
}

// RemovalPatterns expands a representative path into the patterns that
// remove the whole set:
//
//	"xyz.part1.rar"          -> "xyz".part*.rar "xyz.par2"
//	"xyz.rar" + "xyz.r00"    -> "xyz.rar" "xyz".r* "xyz.par2"
//	"xyz.rar"                -> "xyz.rar" "xyz.par2"
//
// Globs are left outside the quotes so the shell expands them.
func (r *Rar) RemovalPatterns(path string) []string {
	if !strings.EqualFold(filepath.Ext(path), ".rar") {
		panic(fmt.Sprintf("rar removal patterns: not a .rar path: %s", path))
	}
	base := filepath.Join(filepath.Dir(path), r.Basename(filepath.Base(path)))

	if rarVolumeRe.MatchString(path) {
		return []string{
			fmt.Sprintf(`"%s".part*.rar`, base),
			fmt.Sprintf(`"%s.par2"`, base),
		}
	}

	if ok, _ := afero.Exists(r.fs, base+".r00"); ok {
		return []string{
			fmt.Sprintf(`"%s"`, path),
			fmt.Sprintf(`"%s".r*`, base),
			fmt.Sprintf(`"%s.par2"`, base),
		}
	}

	return []string{
		fmt.Sprintf(`"%s"`, path),
		fmt.Sprintf(`"%s.par2"`, base),
	}
}
