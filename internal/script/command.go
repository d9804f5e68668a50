package script

import (
	"fmt"
	"strings"

	"github.com/Ixtalo/NzbDownloadsMultiUnpack/internal/archive"
)

// Entry is one generated script line in structured form: the extraction
// invocation, the removal of the consumed archive parts and an optional
// trailing cooldown pause. Text rendering is deferred to the aggregator.
type Entry struct {
	Extract  string
	Remove   string
	Cooldown bool
}

// Synthesize builds the command entry for one archive set. path is the
// absolute representative file path, targetDir the archive's own directory.
// password may be empty, removalPatterns come from the family's classifier
// and sizeMB is the representative's size in binary megabytes.
func Synthesize(p Platform, family archive.Family, path, targetDir, password string, removalPatterns []string, sizeMB float64) Entry {
	e := Entry{
		Remove:   p.Remove + " " + strings.Join(removalPatterns, " "),
		Cooldown: sizeMB > p.CooldownThresholdMB,
	}

	if family == archive.FamilySevenZip || p.Windows {
		// 7z: x = extract with paths, -aos = skip existing files
		if password != "" {
			e.Extract = fmt.Sprintf(`%s x -aos -o"%s/" -p"%s" "%s"`, p.SevenZip, targetDir, password, path)
		} else {
			e.Extract = fmt.Sprintf(`%s x -aos -o"%s/" "%s"`, p.SevenZip, targetDir, path)
		}
		return e
	}

	// unrar: x = extract with paths, -o- = do not overwrite
	if password != "" {
		e.Extract = fmt.Sprintf(`%s x -o- -p"%s" "%s" "%s/"`, p.Unrar, password, path, targetDir)
	} else {
		e.Extract = fmt.Sprintf(`%s x -o- "%s" "%s/"`, p.Unrar, path, targetDir)
	}
	return e
}

// Render joins the entry into one shell line. The removal runs only when the
// extraction succeeded, the cooldown runs regardless.
func (e Entry) Render(p Platform) string {
	line := e.Extract + " && " + e.Remove
	if e.Cooldown {
		line += fmt.Sprintf(" ; %s %d", p.Sleep, p.CooldownSeconds)
	}
	return line
}
