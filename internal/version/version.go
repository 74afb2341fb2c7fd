/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the shapestyle build version.
package version

import (
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X mapaware.top/shapestyle/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Name is the program name used in output and network requests.
const Name = "shapestyle"

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Modified  bool   `json:"modified,omitempty"`
}

// Get returns the version string: the ldflags value, else the module
// version, else "dev" with a short VCS revision when one was stamped.
func Get() string {
	if Version != "dev" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	if rev := setting(info, "vcs.revision"); rev != "" {
		v := "dev-" + shortCommit(rev)
		if setting(info, "vcs.modified") == "true" {
			v += "-dirty"
		}
		return v
	}
	return Version
}

// Info returns detailed build information.
func Info() BuildInfo {
	bi := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
		if bi.GitCommit == "unknown" {
			if rev := setting(info, "vcs.revision"); rev != "" {
				bi.GitCommit = rev
			}
		}
		if bi.BuildTime == "unknown" {
			if t := setting(info, "vcs.time"); t != "" {
				bi.BuildTime = t
			}
		}
		bi.Modified = setting(info, "vcs.modified") == "true"
	}
	return bi
}

// UserAgent returns the User-Agent header value for network requests.
func UserAgent() string {
	return Name + "/" + Get()
}

func setting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func shortCommit(rev string) string {
	rev = strings.TrimSpace(rev)
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
