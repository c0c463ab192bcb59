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

package constants

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultConfigFile is looked up in the current directory when no
	// --filename is given. A missing default file is not an error.
	DefaultConfigFile = "uniview.yaml"

	// DefaultDockerfile is the build configuration consumed by `uniview build`.
	DefaultDockerfile = "docker/uniview.Dockerfile"

	// DefaultImage is the image name and tag produced by `uniview build`.
	DefaultImage = "uniview:latest"

	// DefaultBuildContext is the docker build context directory.
	DefaultBuildContext = "."

	// DefaultBuildArgKey is the build-time variable that selects the
	// image flavor inside the Dockerfile.
	DefaultBuildArgKey = "ENV_MODE"

	// DefaultPackageManager installs the OS packages baked into the image.
	DefaultPackageManager = "apt-get"
)

// DefaultLogLevel is the default global verbosity.
const DefaultLogLevel = logrus.WarnLevel
