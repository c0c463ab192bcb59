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

	"github.com/blang/semver"
	"github.com/cenkalti/backoff/v4"
	"github.com/docker/docker/api/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iico/uniview/pkg/uniview/config"
	"github.com/iico/uniview/pkg/uniview/docker"
	"github.com/iico/uniview/pkg/uniview/version"
)

const daemonWaitRetries = 3

// minDaemonVersion is the oldest docker release the build workflow is
// tested against. Older daemons only draw a warning.
var minDaemonVersion = semver.MustParse("20.10.0")

// NewCmdDiagnose describes the CLI command to check the local docker setup.
func NewCmdDiagnose(out io.Writer) *cobra.Command {
	return NewCmd(out, "diagnose").
		WithDescription("Check docker connectivity and the configured image").
		WithExample("Check the local docker setup", "diagnose").
		WithCommonFlags().
		NoArgs(doDiagnose)
}

func doDiagnose(ctx context.Context, out io.Writer) error {
	cfg, err := config.Read(filename)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	daemon, err := docker.NewAPIClient(ctx)
	if err != nil {
		return fmt.Errorf("getting docker client: %w", err)
	}
	defer daemon.Close()

	serverVersion, err := waitForDaemon(ctx, daemon)
	if err != nil {
		return fmt.Errorf("connecting to the docker daemon: %w", err)
	}
	fmt.Fprintf(out, "docker: version %s, API %s\n", serverVersion.Version, serverVersion.APIVersion)

	if daemonVersion, err := version.ParseVersion(serverVersion.Version); err != nil {
		logrus.Debugf("parsing docker version %q: %v", serverVersion.Version, err)
	} else if daemonVersion.LT(minDaemonVersion) {
		fmt.Fprintf(out, "docker %s is older than the minimum supported %s, consider upgrading\n", serverVersion.Version, minDaemonVersion)
	}

	id, err := daemon.ImageID(ctx, cfg.Build.Image)
	if err != nil {
		return fmt.Errorf("looking up image %q: %w", cfg.Build.Image, err)
	}
	if id == "" {
		fmt.Fprintf(out, "image %s: not found, run `uniview build prod` or `uniview build dev`\n", cfg.Build.Image)
	} else {
		fmt.Fprintf(out, "image %s: %s\n", cfg.Build.Image, id)
	}

	return nil
}

// waitForDaemon pings the daemon a few times before giving up, so a daemon
// that is still starting doesn't fail the diagnosis.
func waitForDaemon(ctx context.Context, daemon docker.LocalDaemon) (types.Version, error) {
	var serverVersion types.Version

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), daemonWaitRetries), ctx)
	err := backoff.Retry(func() error {
		v, err := daemon.ServerVersion(ctx)
		if err != nil {
			return err
		}
		serverVersion = v
		return nil
	}, b)

	return serverVersion, err
}
