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
	"os"
	"path/filepath"
	"testing"
)

// TempDir offers a fluent API over a temporary directory that is deleted
// when the test ends.
type TempDir struct {
	t    *testing.T
	root string
}

// NewTempDir creates a temporary directory for the test.
func (t *T) NewTempDir() *TempDir {
	return &TempDir{
		t:    t.T,
		root: t.TempDir(),
	}
}

// Root returns the temp directory.
func (h *TempDir) Root() string {
	return h.root
}

// Path returns the path to a file in the temp directory.
func (h *TempDir) Path(file string) string {
	return filepath.Join(h.root, file)
}

// Touch creates a list of empty files in the temp directory.
func (h *TempDir) Touch(files ...string) *TempDir {
	for _, file := range files {
		h.Write(file, "")
	}
	return h
}

// Write writes a file with a given content in the temp directory.
func (h *TempDir) Write(file, content string) *TempDir {
	h.t.Helper()
	path := h.Path(file)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		h.t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), os.ModePerm); err != nil {
		h.t.Fatal(err)
	}
	return h
}

// Chdir changes the current directory to the temp directory and restores it
// when the test ends.
func (h *TempDir) Chdir() *TempDir {
	h.t.Helper()
	pwd, err := os.Getwd()
	if err != nil {
		h.t.Fatal(err)
	}
	if err := os.Chdir(h.root); err != nil {
		h.t.Fatal(err)
	}
	h.t.Cleanup(func() {
		if err := os.Chdir(pwd); err != nil {
			h.t.Fatal(err)
		}
	})
	return h
}
