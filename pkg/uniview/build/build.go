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

package build

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sort"

	"github.com/iico/uniview/pkg/uniview/config"
	"github.com/iico/uniview/pkg/uniview/util"
)

// Builder shells out to the docker CLI to build the uniview image. It is a
// pure dispatch: the build tool's outcome is streamed and propagated, never
// inspected or retried.
type Builder struct {
	cfg            config.BuildConfig
	extraBuildArgs map[string]*string
}

// NewBuilder returns a Builder for the given build configuration.
// extraBuildArgs are passed in addition to the mode variable.
func NewBuilder(cfg config.BuildConfig, extraBuildArgs map[string]*string) *Builder {
	return &Builder{
		cfg:            cfg,
		extraBuildArgs: extraBuildArgs,
	}
}

// Build runs `docker build` for the given mode, streaming the tool's output
// to out. The returned error carries the tool's own exit status.
func (b *Builder) Build(ctx context.Context, out io.Writer, mode Mode) error {
	cmd := exec.CommandContext(ctx, "docker", b.cliArgs(mode)...)
	cmd.Env = util.OSEnviron()
	cmd.Stdout = out
	cmd.Stderr = out

	if err := util.RunCmd(ctx, cmd); err != nil {
		return fmt.Errorf("running build: %w", err)
	}
	return nil
}

// cliArgs assembles the docker CLI argument list for a mode.
func (b *Builder) cliArgs(mode Mode) []string {
	args := []string{"build", b.cfg.Context, "--file", b.cfg.Dockerfile, "-t", b.cfg.Image}

	buildArgs := map[string]*string{
		b.cfg.ArgKey: util.StringPtr(mode.String()),
	}
	for k, v := range b.extraBuildArgs {
		buildArgs[k] = v
	}

	return append(args, toCLIBuildArgs(buildArgs)...)
}

// toCLIBuildArgs renders build args as `--build-arg` flags, in a stable
// order. A nil value passes the key alone so docker resolves it from the
// environment.
func toCLIBuildArgs(buildArgs map[string]*string) []string {
	var keys []string
	for k := range buildArgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var args []string
	for _, k := range keys {
		args = append(args, "--build-arg")

		v := buildArgs[k]
		if v == nil {
			args = append(args, k)
		} else {
			args = append(args, fmt.Sprintf("%s=%s", k, *v))
		}
	}
	return args
}
