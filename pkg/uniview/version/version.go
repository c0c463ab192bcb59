/*
Copyright 2021 The Uniview Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/blang/semver"
)

// Injected at build time with -ldflags.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

var platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Compiler  string
	Platform  string
}

// Get returns the version and build information.
func Get() *Info {
	return &Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Compiler:  runtime.Compiler,
		Platform:  platform,
	}
}

// ParseVersion parses a semver version, with or without a leading `v`.
func ParseVersion(version string) (semver.Version, error) {
	// Strip the leading 'v' in our version strings.
	version = strings.TrimSpace(version)
	parsed, err := semver.Parse(strings.TrimPrefix(version, "v"))
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing version: %w", err)
	}

	return parsed, nil
}

// UserAgent identifies uniview to the services it calls.
func UserAgent() string {
	return fmt.Sprintf("uniview/%s", version)
}
