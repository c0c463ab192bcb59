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

	"github.com/iico/uniview/cmd/uniview/app/flags"
	"github.com/iico/uniview/pkg/uniview/version"
)

var versionFlag = flags.NewTemplateFlag("{{.Version}}\n")

// NewCmdVersion describes the CLI command to print the version information.
func NewCmdVersion(out io.Writer) *cobra.Command {
	return NewCmd(out, "version").
		WithDescription("Print the version information").
		WithExample("Print the version", "version").
		WithExample("Print the full build information as json", "version -o '{{json .}}'").
		WithFlags(func(f *pflag.FlagSet) {
			f.VarP(versionFlag, "output", "o", versionFlag.Usage())
		}).
		NoArgs(doVersion)
}

func doVersion(_ context.Context, out io.Writer) error {
	if err := versionFlag.Template().Execute(out, version.Get()); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}
