// Package archive classifies directory listings into archive sets.
//
// An archive set is one logical archive on disk: either a single file or a
// multi-volume series of part files. Each set is identified by exactly one
// representative filename, the first or only part. The package covers the
// RAR family (single files, the legacy ".rNN" scheme and the modern
// ".partN.rar" scheme) and the 7-Zip family (".7z" and ".7z.NNN").
package archive

// Family identifies the archive format family of a representative file.
type Family string

const (
	FamilyRar      Family = "rar"
	FamilySevenZip Family = "7zip"
)

// Classifier is the per-family contract shared by the RAR and 7-Zip
// implementations.
type Classifier interface {
	Family() Family

	// FindArchives picks the representative filenames out of a directory
	// listing: the sole file of single archives and the first part of
	// multi-volume sets. Non-first volume parts are never returned.
	FindArchives(files []string) map[string]struct{}

	// Basename strips the family's volume and archive suffixes from name,
	// once. The result is the prefix shared by all volume parts of the set.
	Basename(name string) string

	// RemovalPatterns expands a representative path into the shell-quoted
	// patterns that cover every volume part of the set plus the
	// conventional .par2 recovery file. It panics if path does not carry
	// an extension of this family.
	RemovalPatterns(path string) []string
}
