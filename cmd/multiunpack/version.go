package main

import (
	"fmt"
	"runtime/debug"
)

// Release is the version reported in logs and generated script headers.
const Release = "2.0.0"

// Build information populated at init() from debug.ReadBuildInfo().
var (
	GoVersion = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
	Modified  bool
)

func init() {
	parseBuildInfo()
}

func parseBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	GoVersion = info.GoVersion

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			Commit = setting.Value
		case "vcs.time":
			BuildTime = setting.Value
		case "vcs.modified":
			Modified = setting.Value == "true"
		}
	}
}

// versionString identifies the generator in log output and script headers.
func versionString() string {
	return fmt.Sprintf("NzbDownloadsMultiUnpack %s", Release)
}

func printVersion() {
	fmt.Printf("version: %s\n", Release)
	fmt.Printf("go: %s\n", GoVersion)
	if Commit != "unknown" {
		if Modified {
			fmt.Printf("commit: %s (dirty)\n", Commit)
		} else {
			fmt.Printf("commit: %s\n", Commit)
		}
	}
	if BuildTime != "unknown" {
		fmt.Printf("built: %s\n", BuildTime)
	}
}
