package v1

// Profile tunes the generated script for a target platform. Every field is
// optional, zero values fall back to the defaults of the selected platform.
type Profile struct {
	// Platform selects the script target. Defaults to the host OS.
	Platform string `yaml:"platform,omitempty" json:"platform,omitempty" validate:"omitempty,oneof=posix windows"`

	Tools    ToolsSpec    `yaml:"tools,omitempty" json:"tools,omitempty"`
	Cooldown CooldownSpec `yaml:"cooldown,omitempty" json:"cooldown,omitempty"`
}

// ToolsSpec overrides the external program names referenced in generated
// commands, e.g. "7zz" instead of "7z".
type ToolsSpec struct {
	SevenZip string `yaml:"sevenzip,omitempty" json:"sevenzip,omitempty"`
	Unrar    string `yaml:"unrar,omitempty" json:"unrar,omitempty"`
	Remove   string `yaml:"remove,omitempty" json:"remove,omitempty"`
	Sleep    string `yaml:"sleep,omitempty" json:"sleep,omitempty"`
}

// CooldownSpec tunes the pause appended after large extractions.
type CooldownSpec struct {
	// ThresholdMB is the file size in binary megabytes above which the
	// cooldown is appended.
	ThresholdMB float64 `yaml:"threshold_mb,omitempty" json:"threshold_mb,omitempty" validate:"omitempty,gt=0"`

	// Seconds is the length of the pause.
	Seconds int `yaml:"seconds,omitempty" json:"seconds,omitempty" validate:"omitempty,gt=0"`
}
