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

package cpus

import "strings"

// IsolatedFromCmdline returns the CPU list of the “isolcpus=” parameter of a
// kernel command line, as found in “/proc/cmdline”. Leading isolation flags,
// such as in “isolcpus=managed_irq,domain,2-5”, are dropped. If the parameter
// is given multiple times, the last one wins. The boolean result is false
// when there is no “isolcpus=” parameter.
func IsolatedFromCmdline(cmdline string) (string, bool) {
	var value string
	found := false
	for _, param := range strings.Fields(cmdline) {
		if v, ok := strings.CutPrefix(param, "isolcpus="); ok {
			value, found = v, true
		}
	}
	if !found {
		return "", false
	}
	fields := strings.Split(value, ",")
	for len(fields) > 0 && fields[0] != "" && (fields[0][0] < '0' || fields[0][0] > '9') {
		fields = fields[1:]
	}
	return strings.Join(fields, ","), true
}
