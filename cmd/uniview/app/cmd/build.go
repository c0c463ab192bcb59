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

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iico/uniview/pkg/uniview/build"
	"github.com/iico/uniview/pkg/uniview/config"
	"github.com/iico/uniview/pkg/uniview/util"
)

var buildEnvFile string

// buildUsage is shown when the mode token is missing or unrecognized. That
// is not an error: nothing is built and the user corrects the invocation.
const buildUsage = `Please choose a build mode:

  uniview build prod    Build the production image
  uniview build dev     Build the development image
`

// NewCmdBuild describes the CLI command to build the uniview image.
func NewCmdBuild(out io.Writer) *cobra.Command {
	return NewCmd(out, "build").
		WithDescription("Build the uniview container image").
		WithLongDescription("Build the uniview container image in one of two modes. The mode is passed to the build as a build-time variable so the Dockerfile can shape the image accordingly.").
		WithExample("Build the production image", "build prod").
		WithExample("Build the development image", "build dev").
		WithCommonFlags().
		WithFlags(func(f *pflag.FlagSet) {
			f.StringVar(&buildEnvFile, "env-file", "", "File with KEY=VALUE pairs passed as additional build-time variables")
		}).
		MaximumArgs(1, doBuild)
}

func doBuild(ctx context.Context, out io.Writer, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	}

	mode, ok := build.ParseMode(token)
	if !ok {
		fmt.Fprint(out, buildUsage)
		return nil
	}

	cfg, err := config.Read(filename)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	extraBuildArgs, err := readEnvFile(buildEnvFile)
	if err != nil {
		return err
	}

	return build.NewBuilder(cfg.Build, extraBuildArgs).Build(ctx, out, mode)
}

func readEnvFile(path string) (map[string]*string, error) {
	if path == "" {
		return nil, nil
	}

	envs, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %q: %w", path, err)
	}

	buildArgs := make(map[string]*string, len(envs))
	for k, v := range envs {
		buildArgs[k] = util.StringPtr(v)
	}
	return buildArgs, nil
}
