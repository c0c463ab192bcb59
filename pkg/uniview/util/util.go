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

package util

import (
	"errors"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Fs is the underlying filesystem to use for reading uniview project files
// and configuration. OS FS by default.
var Fs = afero.NewOsFs()

// OSEnviron is the environment passed to external processes. A variable so
// that tests can fix the environment.
var OSEnviron = os.Environ

// ReadConfiguration reads a `uniview.yaml` configuration and returns its
// content.
func ReadConfiguration(filename string) ([]byte, error) {
	if filename == "" {
		return nil, errors.New("filename not specified")
	}
	return afero.ReadFile(Fs, ExpandHomePath(filename))
}

// ExpandHomePath expands a leading `~` to the current user's home directory.
func ExpandHomePath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		logrus.Debugf("unable to expand %q: %v", path, err)
		return path
	}
	return expanded
}

// StringPtr returns a pointer to a string.
func StringPtr(s string) *string {
	return &s
}
