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
	"strings"
	"testing"

	"github.com/iico/uniview/testutil"
)

func TestDoBbox(t *testing.T) {
	tests := []struct {
		description string
		from        string
		to          string
		shape       string
		input       string
		expected    string
		shouldErr   bool
	}{
		{
			description: "yolo to albu",
			from:        "yolo",
			to:          "albu",
			shape:       "100x200",
			input:       "0.1 0.8 0.4 0.5\n0.9 0.8 0.4 0.5\n",
			expected:    "0 0.55 0.3 0.99\n0.7 0.55 0.995 0.99\n",
		},
		{
			description: "yolo to coco",
			from:        "yolo",
			to:          "coco",
			shape:       "100x100",
			input:       "0.1 0.8 0.4 0.5\n0.9 0.8 0.4 0.5\n",
			expected:    "0 55 40 44\n70 55 29 44\n",
		},
		{
			description: "coco to albu",
			from:        "coco",
			to:          "albu",
			shape:       "100x200",
			input:       "-10 55 40 144\n70 55 150 60\n",
			expected:    "0 0.55 0.15 0.99\n0.35 0.55 0.995 0.99\n",
		},
		{
			description: "blank lines are skipped",
			from:        "coco",
			to:          "albu",
			shape:       "100x200",
			input:       "\n-10 55 40 144\n\n",
			expected:    "0 0.55 0.15 0.99\n",
		},
		{
			description: "invalid shape",
			from:        "yolo",
			to:          "albu",
			shape:       "100",
			shouldErr:   true,
		},
		{
			description: "non-positive shape",
			from:        "yolo",
			to:          "albu",
			shape:       "0x200",
			shouldErr:   true,
		},
		{
			description: "unknown input format",
			from:        "pascal",
			to:          "albu",
			shape:       "100x200",
			input:       "0.1 0.8 0.4 0.5\n",
			shouldErr:   true,
		},
		{
			description: "unknown output format",
			from:        "yolo",
			to:          "pascal",
			shape:       "100x200",
			input:       "0.1 0.8 0.4 0.5\n",
			shouldErr:   true,
		},
		{
			description: "coco to coco is unsupported",
			from:        "coco",
			to:          "coco",
			shape:       "100x200",
			input:       "10 20 30 40\n",
			shouldErr:   true,
		},
		{
			description: "malformed box line",
			from:        "yolo",
			to:          "albu",
			shape:       "100x200",
			input:       "0.1 0.8 0.4\n",
			shouldErr:   true,
		},
	}

	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.Override(&bboxFrom, test.from)
			t.Override(&bboxTo, test.to)
			t.Override(&bboxShape, test.shape)
			t.Override(&bboxStdin, strings.NewReader(test.input))

			var out bytes.Buffer
			err := doBbox(context.Background(), &out, nil)

			t.CheckError(test.shouldErr, err)
			if !test.shouldErr {
				t.CheckDeepEqual(test.expected, out.String())
			}
		})
	}
}

func TestDoBboxFromFile(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		tmpDir := t.NewTempDir().Write("boxes.txt", "0.1 0.8 0.4 0.5\n")
		t.Override(&bboxFrom, "yolo")
		t.Override(&bboxTo, "albu")
		t.Override(&bboxShape, "100x200")

		var out bytes.Buffer
		err := doBbox(context.Background(), &out, []string{tmpDir.Path("boxes.txt")})

		t.CheckNoError(err)
		t.CheckDeepEqual("0 0.55 0.3 0.99\n", out.String())
	})
}

func TestDoBboxMissingFile(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&bboxFrom, "yolo")
		t.Override(&bboxTo, "albu")
		t.Override(&bboxShape, "100x200")

		var out bytes.Buffer
		err := doBbox(context.Background(), &out, []string{"no-such-boxes.txt"})

		t.CheckError(true, err)
	})
}
