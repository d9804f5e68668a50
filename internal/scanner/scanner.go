// Package scanner walks a directory tree and turns every archive set it
// finds into a script entry.
package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Ixtalo/NzbDownloadsMultiUnpack/internal/archive"
	"github.com/Ixtalo/NzbDownloadsMultiUnpack/internal/password"
	"github.com/Ixtalo/NzbDownloadsMultiUnpack/internal/script"
)

// ErrNoArchives is returned when the scanned tree contains no archive set
// anywhere. Callers use it to exit with a distinct code so "nothing to do"
// can be told apart from failure.
var ErrNoArchives = errors.New("no archives found")

type Scanner struct {
	fs       afero.Fs
	logger   *zap.Logger
	platform script.Platform
	rar      *archive.Rar
	sevenZip *archive.SevenZip
}

func New(fs afero.Fs, logger *zap.Logger, platform script.Platform) *Scanner {
	return &Scanner{
		fs:       fs,
		logger:   logger,
		platform: platform,
		rar:      archive.NewRar(fs),
		sevenZip: archive.NewSevenZip(),
	}
}

// Scan walks root recursively and returns the aggregated script. Directories
// are visited in lexicographic order and archive sets within one directory
// are sorted by representative filename, so output is reproducible.
func (s *Scanner) Scan(root string) (*script.Script, error) {
	out := script.New(s.platform)
	if err := s.scanDir(root, out); err != nil {
		return nil, err
	}
	s.logger.Debug("scan finished", zap.Int("entries", out.Len()))
	if out.Len() == 0 {
		return nil, ErrNoArchives
	}
	return out, nil
}

func (s *Scanner) scanDir(dir string, out *script.Script) error {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files, subdirs []string
	for _, info := range infos {
		if info.IsDir() {
			subdirs = append(subdirs, info.Name())
		} else {
			files = append(files, info.Name())
		}
	}

	// representative filename -> family; a file is claimed by one family only
	reps := make(map[string]archive.Family)
	for name := range s.rar.FindArchives(files) {
		reps[name] = archive.FamilyRar
	}
	for name := range s.sevenZip.FindArchives(files) {
		reps[name] = archive.FamilySevenZip
	}

	names := lo.Keys(reps)
	sort.Strings(names)
	if len(names) > 0 {
		s.logger.Debug("archives found", zap.String("dir", dir), zap.Strings("archives", names))
	}

	for _, name := range names {
		entry, err := s.synthesize(dir, name, reps[name])
		if err != nil {
			return err
		}
		out.Add(entry)
	}

	for _, sub := range subdirs {
		if err := s.scanDir(filepath.Join(dir, sub), out); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) synthesize(dir, name string, family archive.Family) (script.Entry, error) {
	pwd, found := password.Resolve(dir, name)
	if !found {
		// still processed, just without a password flag
		s.logger.Warn("no password found", zap.String("dir", dir), zap.String("file", name))
	}

	path := filepath.Join(dir, name)
	info, err := s.fs.Stat(path)
	if err != nil {
		return script.Entry{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	sizeMB := float64(info.Size()) / 1024.0 / 1024.0
	s.logger.Debug("archive set", zap.String("file", path),
		zap.String("family", string(family)), zap.Float64("size_mb", sizeMB))

	var patterns []string
	switch family {
	case archive.FamilySevenZip:
		patterns = s.sevenZip.RemovalPatterns(path)
	default:
		patterns = s.rar.RemovalPatterns(path)
	}

	return script.Synthesize(s.platform, family, path, dir, pwd, patterns, sizeMB), nil
}
