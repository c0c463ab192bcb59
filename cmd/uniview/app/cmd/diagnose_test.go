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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/docker/docker/api/types"

	"github.com/iico/uniview/pkg/uniview/constants"
	"github.com/iico/uniview/pkg/uniview/docker"
	"github.com/iico/uniview/testutil"
)

type fakeDaemon struct {
	serverVersion types.Version
	serverErr     error
	imageID       string
	imageErr      error
}

func (f *fakeDaemon) ServerVersion(context.Context) (types.Version, error) {
	return f.serverVersion, f.serverErr
}

func (f *fakeDaemon) ImageID(context.Context, string) (string, error) {
	return f.imageID, f.imageErr
}

func (f *fakeDaemon) Close() error { return nil }

func TestDoDiagnose(t *testing.T) {
	tests := []struct {
		description string
		daemon      *fakeDaemon
		expected    []string
		notExpected []string
		shouldErr   bool
	}{
		{
			description: "daemon up, image present",
			daemon: &fakeDaemon{
				serverVersion: types.Version{Version: "24.0.7", APIVersion: "1.43"},
				imageID:       "sha256:abcd",
			},
			expected: []string{
				"docker: version 24.0.7, API 1.43",
				"image uniview:latest: sha256:abcd",
			},
			notExpected: []string{
				"older than the minimum supported",
			},
		},
		{
			description: "daemon older than the minimum supported version",
			daemon: &fakeDaemon{
				serverVersion: types.Version{Version: "20.10.9", APIVersion: "1.41"},
				imageID:       "sha256:abcd",
			},
			expected: []string{
				"docker: version 20.10.9, API 1.41",
			},
			notExpected: []string{
				"older than the minimum supported",
			},
		},
		{
			description: "daemon below the minimum supported version",
			daemon: &fakeDaemon{
				serverVersion: types.Version{Version: "19.3.15", APIVersion: "1.40"},
				imageID:       "sha256:abcd",
			},
			expected: []string{
				"docker 19.3.15 is older than the minimum supported 20.10.0",
			},
		},
		{
			description: "daemon up, image missing",
			daemon: &fakeDaemon{
				serverVersion: types.Version{Version: "24.0.7", APIVersion: "1.43"},
			},
			expected: []string{
				"image uniview:latest: not found",
			},
		},
		{
			description: "daemon unreachable",
			daemon: &fakeDaemon{
				serverErr: errors.New("cannot connect to the docker daemon"),
			},
			shouldErr: true,
		},
	}

	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.NewTempDir().Chdir()
			t.Override(&filename, constants.DefaultConfigFile)
			t.Override(&docker.NewAPIClient, func(context.Context) (docker.LocalDaemon, error) {
				return test.daemon, nil
			})

			var out bytes.Buffer
			err := doDiagnose(context.Background(), &out)

			t.CheckError(test.shouldErr, err)
			for _, line := range test.expected {
				t.CheckContains(line, out.String())
			}
			for _, line := range test.notExpected {
				if strings.Contains(out.String(), line) {
					t.Errorf("unexpected output %q found in output: %s", line, out.String())
				}
			}
		})
	}
}
