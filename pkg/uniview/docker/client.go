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

// Package docker wraps the Docker API client. The build path shells out to
// the docker CLI and never goes through this package; only inspection
// commands do.
package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"

	"github.com/iico/uniview/pkg/uniview/version"
)

// For testing
var NewAPIClient = newAPIClient

// LocalDaemon is the subset of the Docker API uniview inspects.
type LocalDaemon interface {
	ServerVersion(ctx context.Context) (types.Version, error)
	ImageID(ctx context.Context, ref string) (string, error)
	Close() error
}

type localDaemon struct {
	apiClient client.CommonAPIClient
}

// newAPIClient returns a docker client configured from the environment
// (DOCKER_HOST and friends), with the API version negotiated down to what
// the daemon supports.
func newAPIClient(ctx context.Context) (LocalDaemon, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithHTTPHeaders(map[string]string{"User-Agent": version.UserAgent()}),
	)
	if err != nil {
		return nil, fmt.Errorf("getting docker client: %w", err)
	}
	cli.NegotiateAPIVersion(ctx)

	return &localDaemon{apiClient: cli}, nil
}

// ServerVersion retrieves the version information from the daemon.
func (l *localDaemon) ServerVersion(ctx context.Context) (types.Version, error) {
	return l.apiClient.ServerVersion(ctx)
}

// ImageID returns the image ID for a reference, or "" when the image is not
// present locally.
func (l *localDaemon) ImageID(ctx context.Context, ref string) (string, error) {
	image, _, err := l.apiClient.ImageInspectWithRaw(ctx, ref)
	if err != nil {
		if client.IsErrNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("inspecting image %q: %w", ref, err)
	}

	return image.ID, nil
}

func (l *localDaemon) Close() error {
	return l.apiClient.Close()
}
