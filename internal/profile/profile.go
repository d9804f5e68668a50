// Package profile loads the optional YAML platform profile that tunes the
// generated script: target platform, external tool names and cooldown.
package profile

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	v1 "github.com/Ixtalo/NzbDownloadsMultiUnpack/apis/v1"
	"github.com/Ixtalo/NzbDownloadsMultiUnpack/internal/script"
)

var defaultValidator = validator.New(validator.WithRequiredStructEnabled())

// Parse parses and validates a YAML platform profile.
func Parse(data []byte) (v1.Profile, error) {
	var p v1.Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return v1.Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if err := defaultValidator.Struct(p); err != nil {
		return v1.Profile{}, fmt.Errorf("failed to validate profile: %w", err)
	}
	return p, nil
}

// Load reads filename from fs and resolves it into a platform
// configuration. An empty filename resolves the host defaults.
func Load(fs afero.Fs, filename string) (script.Platform, error) {
	if filename == "" {
		return Resolve(v1.Profile{})
	}
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return script.Platform{}, fmt.Errorf("failed to read profile %s: %w", filename, err)
	}
	p, err := Parse(data)
	if err != nil {
		return script.Platform{}, fmt.Errorf("invalid profile %s: %w", filename, err)
	}
	return Resolve(p)
}

// Resolve applies the profile overrides on top of the selected platform's
// defaults.
func Resolve(p v1.Profile) (script.Platform, error) {
	name := p.Platform
	if name == "" {
		if runtime.GOOS == "windows" {
			name = "windows"
		} else {
			name = "posix"
		}
	}

	var platform script.Platform
	switch name {
	case "posix":
		platform = script.Posix()
	case "windows":
		platform = script.Windows()
	default:
		return script.Platform{}, fmt.Errorf("unknown platform %q", name)
	}

	if p.Tools.SevenZip != "" {
		platform.SevenZip = p.Tools.SevenZip
	}
	if p.Tools.Unrar != "" {
		platform.Unrar = p.Tools.Unrar
	}
	if p.Tools.Remove != "" {
		platform.Remove = p.Tools.Remove
	}
	if p.Tools.Sleep != "" {
		platform.Sleep = p.Tools.Sleep
	}
	if p.Cooldown.ThresholdMB > 0 {
		platform.CooldownThresholdMB = p.Cooldown.ThresholdMB
	}
	if p.Cooldown.Seconds > 0 {
		platform.CooldownSeconds = p.Cooldown.Seconds
	}
	return platform, nil
}
