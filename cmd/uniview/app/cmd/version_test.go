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
	"runtime"
	"testing"

	"github.com/iico/uniview/testutil"
)

func TestDoVersion(t *testing.T) {
	testutil.Run(t, "default template", func(t *testutil.T) {
		var out bytes.Buffer

		err := doVersion(context.Background(), &out)

		t.CheckNoError(err)
		// The version string is empty in tests since it is injected at
		// build time; the template still renders and ends with a newline.
		t.CheckDeepEqual("\n", out.String())
	})

	testutil.Run(t, "custom template", func(t *testutil.T) {
		t.CheckNoError(versionFlag.Set("{{.GoVersion}}"))
		t.Cleanup(func() { _ = versionFlag.Set("{{.Version}}\n") })

		var out bytes.Buffer
		err := doVersion(context.Background(), &out)

		t.CheckNoError(err)
		t.CheckDeepEqual(runtime.Version(), out.String())
	})
}
