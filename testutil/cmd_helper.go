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

package testutil

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// FakeCmd is a fake implementation of the exec Command interface. It checks
// that commands are run in the expected order with the expected command lines.
type FakeCmd struct {
	runs []run

	mu        sync.Mutex
	callCount int
}

type run struct {
	command string
	output  []byte
	env     []string
	err     error
}

// CmdRun expects a command to be run without output.
func CmdRun(command string) *FakeCmd {
	return (&FakeCmd{}).AndRun(command)
}

// CmdRunErr expects a command to be run and fail with the given error.
func CmdRunErr(command string, err error) *FakeCmd {
	return (&FakeCmd{}).AndRunErr(command, err)
}

// CmdRunOut expects a command to be run and produce the given output.
func CmdRunOut(command string, output string) *FakeCmd {
	return (&FakeCmd{}).AndRunOut(command, output)
}

// CmdRunOutErr expects a command to be run, produce the given output and
// fail with the given error.
func CmdRunOutErr(command string, output string, err error) *FakeCmd {
	return (&FakeCmd{}).AndRunOutErr(command, output, err)
}

// CmdRunEnv expects a command to be run with an environment containing every
// given entry.
func CmdRunEnv(command string, env []string) *FakeCmd {
	return (&FakeCmd{}).AndRunEnv(command, env)
}

func (c *FakeCmd) AndRun(command string) *FakeCmd {
	c.runs = append(c.runs, run{command: command})
	return c
}

func (c *FakeCmd) AndRunErr(command string, err error) *FakeCmd {
	c.runs = append(c.runs, run{command: command, err: err})
	return c
}

func (c *FakeCmd) AndRunOut(command string, output string) *FakeCmd {
	c.runs = append(c.runs, run{command: command, output: []byte(output)})
	return c
}

func (c *FakeCmd) AndRunOutErr(command string, output string, err error) *FakeCmd {
	c.runs = append(c.runs, run{command: command, output: []byte(output), err: err})
	return c
}

func (c *FakeCmd) AndRunEnv(command string, env []string) *FakeCmd {
	c.runs = append(c.runs, run{command: command, env: env})
	return c
}

// TimesCalled returns how many commands were run so far.
func (c *FakeCmd) TimesCalled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// AllCalled reports whether every expected command was run.
func (c *FakeCmd) AllCalled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.runs) == 0
}

func (c *FakeCmd) RunCmd(_ context.Context, cmd *exec.Cmd) error {
	r, err := c.popRun(cmd)
	if err != nil {
		return err
	}
	if r.output != nil {
		return fmt.Errorf("expected RunCmdOut(%s) to be called. Got RunCmd(%s)", r.command, strings.Join(cmd.Args, " "))
	}
	return r.err
}

func (c *FakeCmd) RunCmdOut(_ context.Context, cmd *exec.Cmd) ([]byte, error) {
	r, err := c.popRun(cmd)
	if err != nil {
		return nil, err
	}
	if r.output == nil && r.err == nil {
		return nil, fmt.Errorf("expected RunCmd(%s) to be called. Got RunCmdOut(%s)", r.command, strings.Join(cmd.Args, " "))
	}
	return r.output, r.err
}

func (c *FakeCmd) popRun(cmd *exec.Cmd) (*run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	actualCommand := strings.Join(cmd.Args, " ")
	if len(c.runs) == 0 {
		return nil, fmt.Errorf("unexpected command: %s", actualCommand)
	}

	r := c.runs[0]
	c.runs = c.runs[1:]
	c.callCount++

	if r.command != actualCommand {
		return nil, fmt.Errorf("expected: %s. Got: %s", r.command, actualCommand)
	}

	for _, expected := range r.env {
		if !envContains(cmd.Env, expected) {
			return nil, fmt.Errorf("expected env %q for command %s. Got: %v", expected, r.command, cmd.Env)
		}
	}

	return &r, nil
}

func envContains(env []string, entry string) bool {
	for _, e := range env {
		if e == entry {
			return true
		}
	}
	return false
}
