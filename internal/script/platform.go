// Package script synthesizes the extraction command lines and renders them
// into the final output script. The external programs referenced here are
// only ever named in generated text, never executed.
package script

// Default external program names.
const (
	SevenZipProgram = "7z"
	UnrarProgram    = "unrar"
)

const (
	// CooldownThresholdMB is the representative file size in binary
	// megabytes above which a cooldown pause is appended.
	CooldownThresholdMB = 300
	// CooldownSeconds is the length of the cooldown pause.
	CooldownSeconds = 60
)

// Platform carries every platform-dependent fragment of the generated
// script, so command synthesis never branches on the host OS directly.
type Platform struct {
	Name     string // "posix" or "windows"
	Comment  string // comment prefix including trailing space
	Remove   string // delete command for consumed archive parts
	Sleep    string // pause command for the cooldown directive
	SevenZip string // extraction tool for 7-Zip archives
	Unrar    string // extraction tool for RAR archives
	Windows  bool   // Windows-like target: 7z for everything, codepage handling

	CooldownThresholdMB float64
	CooldownSeconds     int
}

// Posix returns the platform configuration for a POSIX shell target.
func Posix() Platform {
	return Platform{
		Name:                "posix",
		Comment:             "# ",
		Remove:              "rm -fv",
		Sleep:               "sleep",
		SevenZip:            SevenZipProgram,
		Unrar:               UnrarProgram,
		CooldownThresholdMB: CooldownThresholdMB,
		CooldownSeconds:     CooldownSeconds,
	}
}

// Windows returns the platform configuration for a Windows cmd.exe target.
// There is no unrar assumed on Windows, 7z extracts RAR archives as well.
func Windows() Platform {
	return Platform{
		Name:                "windows",
		Comment:             "REM ",
		Remove:              "del /q",
		Sleep:               "timeout",
		SevenZip:            SevenZipProgram,
		Unrar:               SevenZipProgram,
		Windows:             true,
		CooldownThresholdMB: CooldownThresholdMB,
		CooldownSeconds:     CooldownSeconds,
	}
}
