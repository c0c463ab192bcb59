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
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const longDescription = `Outputs uniview shell completion for the given shell (bash or zsh).

To load completion for the current bash session:

	. <(uniview completion bash)

To load completion for the current zsh session:

	. <(uniview completion zsh)
`

// NewCmdCompletion returns the cobra command that outputs shell completion
// code.
func NewCmdCompletion(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:       "completion SHELL",
		Short:     "Output shell completion for the given shell (bash or zsh)",
		Long:      longDescription,
		Args:      completionArgs,
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			}
			return nil
		},
	}
}

func completionArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("requires 1 arg, found %d", len(args))
	}
	return cobra.OnlyValidArgs(cmd, args)
}
