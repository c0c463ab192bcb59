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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iico/uniview/pkg/uniview/constants"
)

var (
	filename string
	v        string
)

// NewUniviewCommand returns the root command. Command output goes to out,
// logs go to errOut.
func NewUniviewCommand(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "uniview",
		Short:         "A tool that builds and inspects the uniview container images.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return SetUpLogs(errOut, v)
	}

	rootCmd.SetOut(out)

	rootCmd.AddCommand(NewCmdBuild(out))
	rootCmd.AddCommand(NewCmdBbox(out))
	rootCmd.AddCommand(NewCmdPackages(out))
	rootCmd.AddCommand(NewCmdDiagnose(out))
	rootCmd.AddCommand(NewCmdVersion(out))
	rootCmd.AddCommand(NewCmdCompletion(out))

	rootCmd.PersistentFlags().StringVarP(&v, "verbosity", "v", constants.DefaultLogLevel.String(), "Log level (debug, info, warn, error, fatal, panic)")
	return rootCmd
}

// AddCommonFlags registers the flags shared by all project commands.
func AddCommonFlags(f *pflag.FlagSet) {
	f.StringVarP(&filename, "filename", "f", constants.DefaultConfigFile, "Path to the uniview config file")
}

// SetUpLogs configures logrus from the --verbosity flag.
func SetUpLogs(out io.Writer, level string) error {
	logrus.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	logrus.SetLevel(lvl)
	return nil
}
