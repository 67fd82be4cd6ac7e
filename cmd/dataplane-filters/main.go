// Copyright 2026 Whitestack.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

// Command dataplane-filters runs the dataplane filters on the command line:
// resolving NUMA core references, building coremasks, extracting netplan
// addresses, expanding isolated CPU lists, rendering templates using these
// filters, and pinning processes to CPUs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	a := &app{fs: afero.NewOsFs(), pin: pinTask}
	err := newRootCmd(a).Execute()
	if a.log != nil {
		if err != nil {
			a.log.Errorw("command failed", "error", err)
		}
		_ = a.log.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
