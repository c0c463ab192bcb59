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

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iico/uniview/pkg/uniview/config"
	"github.com/iico/uniview/pkg/uniview/packages"
)

var packagesScript bool

// NewCmdPackages describes the commands around the OS packages baked into
// the image.
func NewCmdPackages(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Manage the OS packages installed into the uniview image",
	}
	cmd.AddCommand(NewCmdPackagesList(out))
	cmd.AddCommand(NewCmdPackagesInstall(out))
	return cmd
}

// NewCmdPackagesList describes the CLI command to list the package manifest.
func NewCmdPackagesList(out io.Writer) *cobra.Command {
	return NewCmd(out, "list").
		WithDescription("Print the packages installed into the image").
		WithExample("List the packages", "packages list").
		WithExample("Render the equivalent install script", "packages list --script").
		WithCommonFlags().
		WithFlags(func(f *pflag.FlagSet) {
			f.BoolVar(&packagesScript, "script", false, "Render the manifest as a shell script")
		}).
		NoArgs(doPackagesList)
}

// NewCmdPackagesInstall describes the CLI command that installs the
// packages. It is meant to run inside the image build.
func NewCmdPackagesInstall(out io.Writer) *cobra.Command {
	return NewCmd(out, "install").
		WithDescription("Install the packages, then clean the package caches").
		WithExample("Install the packages during an image build", "packages install").
		WithCommonFlags().
		NoArgs(doPackagesInstall)
}

func doPackagesList(_ context.Context, out io.Writer) error {
	manifest, err := readManifest()
	if err != nil {
		return err
	}

	if packagesScript {
		fmt.Fprint(out, manifest.Script())
		return nil
	}

	for _, pkg := range manifest.Packages {
		fmt.Fprintln(out, pkg)
	}
	return nil
}

func doPackagesInstall(ctx context.Context, out io.Writer) error {
	manifest, err := readManifest()
	if err != nil {
		return err
	}

	return manifest.Install(ctx, out)
}

func readManifest() (packages.Manifest, error) {
	cfg, err := config.Read(filename)
	if err != nil {
		return packages.Manifest{}, fmt.Errorf("reading configuration: %w", err)
	}
	return packages.FromConfig(cfg.Packages), nil
}
