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
	"errors"
	"fmt"
	"io/fs"

	yaml "gopkg.in/yaml.v2"

	"github.com/iico/uniview/pkg/uniview/constants"
	"github.com/iico/uniview/pkg/uniview/util"
)

// LatestVersion is the apiVersion accepted in `uniview.yaml`.
const LatestVersion = "uniview/v1"

// Config describes the optional `uniview.yaml` project file. Every field
// has a default so the file can be partial or absent.
type Config struct {
	APIVersion string         `yaml:"apiVersion"`
	Build      BuildConfig    `yaml:"build,omitempty"`
	Packages   PackagesConfig `yaml:"packages,omitempty"`
}

// BuildConfig selects what `uniview build` passes to the docker CLI.
type BuildConfig struct {
	// Image is the name and tag of the image being built.
	Image string `yaml:"image,omitempty"`

	// Dockerfile is the path to the build configuration file.
	Dockerfile string `yaml:"dockerfile,omitempty"`

	// Context is the docker build context directory.
	Context string `yaml:"context,omitempty"`

	// ArgKey is the build-time variable set to the selected mode.
	ArgKey string `yaml:"argKey,omitempty"`
}

// PackagesConfig describes the OS packages installed into the image.
type PackagesConfig struct {
	// Manager is the package manager command, `apt-get` by default.
	Manager string `yaml:"manager,omitempty"`

	// Install lists the packages to install.
	Install []string `yaml:"install,omitempty"`

	// Cleanup controls whether package caches are removed after install.
	Cleanup *bool `yaml:"cleanup,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	cfg := &Config{APIVersion: LatestVersion}
	cfg.setDefaults()
	return cfg
}

// Read loads `filename` and applies defaults for any unset field. A missing
// file is only an error when its name differs from the default, since the
// fixed defaults describe a complete build on their own.
func Read(filename string) (*Config, error) {
	buf, err := util.ReadConfiguration(filename)
	if err != nil {
		if filename == constants.DefaultConfigFile && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return Parse(buf)
}

// Parse unmarshals a configuration and applies defaults.
func Parse(buf []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(buf, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.APIVersion != LatestVersion {
		return nil, fmt.Errorf("config version %q out of date: expected %q", cfg.APIVersion, LatestVersion)
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Build.Image == "" {
		c.Build.Image = constants.DefaultImage
	}
	if c.Build.Dockerfile == "" {
		c.Build.Dockerfile = constants.DefaultDockerfile
	}
	if c.Build.Context == "" {
		c.Build.Context = constants.DefaultBuildContext
	}
	if c.Build.ArgKey == "" {
		c.Build.ArgKey = constants.DefaultBuildArgKey
	}
	if c.Packages.Manager == "" {
		c.Packages.Manager = constants.DefaultPackageManager
	}
	if c.Packages.Install == nil {
		c.Packages.Install = DefaultPackages()
	}
	if c.Packages.Cleanup == nil {
		cleanup := true
		c.Packages.Cleanup = &cleanup
	}
}

// DefaultPackages returns the OS packages baked into the uniview image.
func DefaultPackages() []string {
	return []string{
		"build-essential",
		"ca-certificates",
		"cmake",
		"ffmpeg",
		"git",
		"libgl1-mesa-glx",
		"libglib2.0-0",
		"libsm6",
		"libxext6",
		"libxrender1",
		"pkg-config",
		"python3-dev",
		"python3-pip",
		"unzip",
		"wget",
	}
}
