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

// Mode selects which flavor of the image gets built. Its value is passed
// verbatim as the build-time variable consumed by the Dockerfile.
type Mode string

const (
	// Prod builds the production image.
	Prod Mode = "prod"

	// Dev builds the development image.
	Dev Mode = "dev"
)

// Modes lists the recognized build modes.
func Modes() []Mode {
	return []Mode{Prod, Dev}
}

// ParseMode maps a command line token to a build mode. Unrecognized tokens,
// including the empty string, are not an error: the caller shows usage
// instead.
func ParseMode(token string) (Mode, bool) {
	for _, m := range Modes() {
		if token == string(m) {
			return m, true
		}
	}
	return "", false
}

func (m Mode) String() string {
	return string(m)
}
