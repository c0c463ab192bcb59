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
	"io"
	"testing"

	"github.com/iico/uniview/testutil"
)

func TestNewCmdDescription(t *testing.T) {
	cmd := NewCmd(nil, "help").WithDescription("prints help").NoArgs(nil)

	testutil.CheckErrorAndDeepEqual(t, false, nil, "help", cmd.Use)
	testutil.CheckErrorAndDeepEqual(t, false, nil, "prints help", cmd.Short)
}

func TestNewCmdLongDescription(t *testing.T) {
	cmd := NewCmd(nil, "help").WithLongDescription("long description").NoArgs(nil)

	testutil.CheckErrorAndDeepEqual(t, false, nil, "long description", cmd.Long)
}

func TestNewCmdExample(t *testing.T) {
	cmd := NewCmd(nil, "").WithExample("comment", "dev").NoArgs(nil)

	testutil.CheckErrorAndDeepEqual(t, false, nil, "  # comment\n  uniview dev\n", cmd.Example)
}

func TestNewCmdExamples(t *testing.T) {
	cmd := NewCmd(nil, "").WithExample("comment1", "run1").WithExample("comment2", "run2").NoArgs(nil)

	testutil.CheckErrorAndDeepEqual(t, false, nil, "  # comment1\n  uniview run1\n\n  # comment2\n  uniview run2\n", cmd.Example)
}

func TestNewCmdNoArgs(t *testing.T) {
	out := &bytes.Buffer{}
	var actionOut io.Writer

	cmd := NewCmd(out, "").NoArgs(func(_ context.Context, out io.Writer) error {
		actionOut = out
		return nil
	})
	err := cmd.RunE(cmd, nil)

	testutil.CheckError(t, false, err)
	if actionOut != out {
		t.Error("expected the action to receive the command's output writer")
	}
}

func TestNewCmdMaximumArgs(t *testing.T) {
	var actionArgs []string

	cmd := NewCmd(&bytes.Buffer{}, "").MaximumArgs(1, func(_ context.Context, _ io.Writer, args []string) error {
		actionArgs = args
		return nil
	})

	testutil.CheckError(t, true, cmd.Args(cmd, []string{"too", "many"}))
	testutil.CheckError(t, false, cmd.Args(cmd, []string{"one"}))

	err := cmd.RunE(cmd, []string{"one"})

	testutil.CheckErrorAndDeepEqual(t, false, err, []string{"one"}, actionArgs)
}
