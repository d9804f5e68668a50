package archive

import (
	"testing"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRarFindArchives(t *testing.T) {
	r := NewRar(afero.NewMemMapFs())

	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{
			name:  "single rar",
			files: []string{"x.rar", "readme.txt"},
			want:  []string{"x.rar"},
		},
		{
			name:  "legacy set",
			files: []string{"x.rar", "x.r00", "x.r01", "x.r02"},
			want:  []string{"x.rar"},
		},
		{
			name:  "legacy set without main rar in listing",
			files: []string{"x.r00", "x.r01"},
			want:  []string{"x.rar"},
		},
		{
			name:  "modern set",
			files: []string{"x.part1.rar", "x.part2.rar", "x.part3.rar"},
			want:  []string{"x.part1.rar"},
		},
		{
			name:  "modern set zero padded",
			files: []string{"x.part001.rar", "x.part002.rar", "x.part010.rar"},
			want:  []string{"x.part001.rar"},
		},
		{
			name:  "modern later parts only",
			files: []string{"x.part2.rar", "x.part11.rar"},
			want:  nil,
		},
		{
			name:  "case insensitive",
			files: []string{"X.PART01.RAR", "X.PART02.RAR", "Y.RAR"},
			want:  []string{"X.PART01.RAR", "Y.RAR"},
		},
		{
			name:  "mixed schemes",
			files: []string{"a.rar", "b.part01.rar", "b.part02.rar", "c.r00", "c.rar"},
			want:  []string{"a.rar", "b.part01.rar", "c.rar"},
		},
		{
			name:  "no rar files",
			files: []string{"x.7z", "y.txt"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.FindArchives(tt.files)
			assert.ElementsMatch(t, tt.want, lo.Keys(got))
		})
	}
}

func TestRarBasename(t *testing.T) {
	r := NewRar(afero.NewMemMapFs())

	tests := []struct {
		in   string
		want string
	}{
		{"xyz.rar", "xyz"},
		{"xyz.part1.rar", "xyz"},
		{"xyz.part001.rar", "xyz"},
		{"XYZ.PART01.RAR", "XYZ"},
		{"foo {{pwd}}.rar", "foo {{pwd}}"},
		{"noextension", "noextension"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Basename(tt.in), tt.in)
	}

	// idempotent: re-deriving from a derived basename plus suffix gives the
	// same basename again
	base := r.Basename("xyz.part1.rar")
	assert.Equal(t, base, r.Basename(base+".part42.rar"))
	assert.Equal(t, base, r.Basename(base+".rar"))
}

func TestRarRemovalPatterns(t *testing.T) {
	t.Run("modern multi-volume", func(t *testing.T) {
		r := NewRar(afero.NewMemMapFs())
		got := r.RemovalPatterns("/dl/x.part1.rar")
		assert.Equal(t, []string{`"/dl/x".part*.rar`, `"/dl/x.par2"`}, got)
	})

	t.Run("legacy set with r00 sibling", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/dl/x.r00", []byte("v"), 0644))
		r := NewRar(fs)
		got := r.RemovalPatterns("/dl/x.rar")
		assert.Equal(t, []string{`"/dl/x.rar"`, `"/dl/x".r*`, `"/dl/x.par2"`}, got)
	})

	t.Run("single file", func(t *testing.T) {
		r := NewRar(afero.NewMemMapFs())
		got := r.RemovalPatterns("/dl/x.rar")
		assert.Equal(t, []string{`"/dl/x.rar"`, `"/dl/x.par2"`}, got)
	})

	t.Run("wrong extension panics", func(t *testing.T) {
		r := NewRar(afero.NewMemMapFs())
		require.Panics(t, func() {
			r.RemovalPatterns("/dl/x.7z")
		})
	})
}
