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

package app

import (
	"errors"
	"io"

	"github.com/iico/uniview/cmd/uniview/app/cmd"
)

// Run executes the uniview CLI with os.Args.
func Run(out, stderr io.Writer) error {
	c := cmd.NewUniviewCommand(out, stderr)
	return c.Execute()
}

// ExitCode maps an error to the process exit code. Errors from external
// tools keep the tool's own exit status.
func ExitCode(err error) int {
	var exitCoder interface{ ExitCode() int }
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}
	return 1
}
