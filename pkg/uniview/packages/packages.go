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

// Package packages manages the static list of OS packages installed while
// the uniview image is being built.
package packages

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/iico/uniview/pkg/uniview/config"
	"github.com/iico/uniview/pkg/uniview/util"
)

// Manifest is the fixed set of packages fed to the package manager, plus
// the cleanup steps that keep the image small.
type Manifest struct {
	Manager  string
	Packages []string
	Cleanup  bool
}

// FromConfig builds a Manifest from the project configuration.
func FromConfig(cfg config.PackagesConfig) Manifest {
	cleanup := cfg.Cleanup == nil || *cfg.Cleanup
	return Manifest{
		Manager:  cfg.Manager,
		Packages: cfg.Install,
		Cleanup:  cleanup,
	}
}

// Commands returns the command lines run by Install, in order.
func (m Manifest) Commands() [][]string {
	install := append([]string{m.Manager, "install", "-y", "--no-install-recommends"}, m.Packages...)

	commands := [][]string{
		{m.Manager, "update"},
		install,
	}
	if m.Cleanup {
		commands = append(commands,
			[]string{m.Manager, "clean"},
			[]string{"rm", "-rf", "/var/lib/apt/lists/*"},
		)
	}
	return commands
}

// Install runs the package manager. Intended to run inside the image build;
// any failure propagates with the tool's own exit status, untranslated.
func (m Manifest) Install(ctx context.Context, out io.Writer) error {
	for _, args := range m.Commands() {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Env = util.OSEnviron()
		cmd.Stdout = out
		cmd.Stderr = out

		if err := util.RunCmd(ctx, cmd); err != nil {
			return fmt.Errorf("running %q: %w", strings.Join(args, " "), err)
		}
	}
	return nil
}

// Script renders the equivalent shell script, for baking into a build
// context instead of invoking `uniview packages install`.
func (m Manifest) Script() string {
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\nset -eu\n\n")
	for _, args := range m.Commands() {
		sb.WriteString(strings.Join(args, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
