package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		dir       string
		filename  string
		want      string
		wantFound bool
	}{
		{
			name:      "password in directory path",
			dir:       "/downloads/foobar {{secret}}",
			filename:  "archive.rar",
			want:      "secret",
			wantFound: true,
		},
		{
			name:      "password in filename",
			dir:       "/downloads/foobar",
			filename:  "archive {{hunter2}}.rar",
			want:      "hunter2",
			wantFound: true,
		},
		{
			name:      "directory wins over filename",
			dir:       "/downloads/foobar {{fromdir}}",
			filename:  "archive {{fromfile}}.rar",
			want:      "fromdir",
			wantFound: true,
		},
		{
			name:      "first occurrence wins",
			dir:       "/downloads/{{one}}/{{two}}",
			filename:  "archive.rar",
			want:      "one",
			wantFound: true,
		},
		{
			name:     "no password anywhere",
			dir:      "/downloads/foobar",
			filename: "archive.rar",
		},
		{
			name:     "single braces do not count",
			dir:      "/downloads/foobar {secret}",
			filename: "archive.rar",
		},
		{
			name:     "empty braces do not count",
			dir:      "/downloads/foobar {{}}",
			filename: "archive.rar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Resolve(tt.dir, tt.filename)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
