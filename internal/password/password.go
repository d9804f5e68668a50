// Package password extracts archive passwords embedded between double curly
// braces in file or folder names, e.g. ".../foobar {{secret}}/archive.rar".
package password

import "regexp"

var passwordRe = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Resolve looks for a {{...}} password, first in the directory path and only
// then in the archive filename. The match is case-sensitive and the first
// occurrence wins. The boolean reports whether a password was found.
func Resolve(dir, filename string) (string, bool) {
	if m := passwordRe.FindStringSubmatch(dir); m != nil {
		return m[1], true
	}
	if m := passwordRe.FindStringSubmatch(filename); m != nil {
		return m[1], true
	}
	return "", false
}
