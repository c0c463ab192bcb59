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

package config

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/iico/uniview/pkg/uniview/constants"
	"github.com/iico/uniview/pkg/uniview/util"
	"github.com/iico/uniview/testutil"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description string
		yaml        string
		expected    *Config
		shouldErr   bool
	}{
		{
			description: "minimal config gets defaults",
			yaml:        "apiVersion: uniview/v1\n",
			expected:    Default(),
		},
		{
			description: "build overrides",
			yaml: `apiVersion: uniview/v1
build:
  image: uniview:nightly
  dockerfile: docker/nightly.Dockerfile
`,
			expected: func() *Config {
				cfg := Default()
				cfg.Build.Image = "uniview:nightly"
				cfg.Build.Dockerfile = "docker/nightly.Dockerfile"
				return cfg
			}(),
		},
		{
			description: "packages overrides",
			yaml: `apiVersion: uniview/v1
packages:
  install: [git, wget]
  cleanup: false
`,
			expected: func() *Config {
				cfg := Default()
				cfg.Packages.Install = []string{"git", "wget"}
				cleanup := false
				cfg.Packages.Cleanup = &cleanup
				return cfg
			}(),
		},
		{
			description: "missing apiVersion",
			yaml:        "build:\n  image: uniview:latest\n",
			shouldErr:   true,
		},
		{
			description: "wrong apiVersion",
			yaml:        "apiVersion: uniview/v0\n",
			shouldErr:   true,
		},
		{
			description: "unknown field",
			yaml:        "apiVersion: uniview/v1\ndeploy: {}\n",
			shouldErr:   true,
		},
		{
			description: "invalid yaml",
			yaml:        "apiVersion: [",
			shouldErr:   true,
		},
	}

	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			cfg, err := Parse([]byte(test.yaml))

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, cfg)
		})
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		description string
		filename    string
		files       map[string]string
		expected    *Config
		shouldErr   bool
	}{
		{
			description: "missing default file falls back to defaults",
			filename:    constants.DefaultConfigFile,
			expected:    Default(),
		},
		{
			description: "missing explicit file is an error",
			filename:    "other.yaml",
			shouldErr:   true,
		},
		{
			description: "empty filename is an error",
			filename:    "",
			shouldErr:   true,
		},
		{
			description: "existing file is parsed",
			filename:    constants.DefaultConfigFile,
			files: map[string]string{
				constants.DefaultConfigFile: "apiVersion: uniview/v1\nbuild:\n  context: images\n",
			},
			expected: func() *Config {
				cfg := Default()
				cfg.Build.Context = "images"
				return cfg
			}(),
		},
	}

	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			fs := afero.NewMemMapFs()
			for path, content := range test.files {
				if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			t.Override(&util.Fs, fs)

			cfg, err := Read(test.filename)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, cfg)
		})
	}
}
