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

package filters

import (
	"strings"

	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
)

const lscpu = "# Node,CPU\n0,0\n0,2\n0,4\n1,1\n1,3\n1,5\n"

const netplanDoc = `network:
  version: 2
  ethernets:
    br-ex:
      addresses:
      - 192.168.199.41/24
`

func render(text string) (string, error) {
	var out strings.Builder
	err := Render(&out, "test", text, map[string]any{
		"lscpu":   lscpu,
		"netplan": netplanDoc,
		"cmdline": "1,3-5,8",
	})
	return out.String(), err
}

var _ = Describe("template filters", func() {

	It("registers all filters", func() {
		Expect(Filters()).To(HaveLen(len(Names)))
		funcs := FuncMap()
		for _, name := range Names {
			Expect(funcs).To(HaveKey(name))
		}
		Expect(funcs).To(HaveKey("join"))
	})

	DescribeTable("rendering",
		func(text string, expected string) {
			Expect(render(text)).To(Equal(expected))
		},
		Entry("NUMA cores",
			`{{ .lscpu | get_cores_from_numa_cores "0.1,1.-1" }}`, "2,5"),
		Entry("coremask",
			`{{ get_coremask_from_cores "1,2,6,10" }}`, "0x446"),
		Entry("NUMA cores into coremask",
			`{{ .lscpu | get_cores_from_numa_cores "0.1,0.2" | get_coremask_from_cores }}`, "0x14"),
		Entry("netplan address",
			`{{ .netplan | get_address_from_netplan_file_content "br-ex" }}`, "192.168.199.41/24"),
		Entry("unknown netplan interface",
			`{{ .netplan | get_address_from_netplan_file_content "eth0" }}`, ""),
		Entry("isolated cores",
			`{{ .cmdline | get_isolated_core_list_from_cmdline_output | join "," }}`, "1,3,4,5,8"),
		Entry("isolated cores ranged over",
			`{{ range .cmdline | get_isolated_core_list_from_cmdline_output }}[{{ . }}]{{ end }}`,
			"[1][3][4][5][8]"),
	)

	DescribeTable("aborting on filter errors",
		func(text string, msg string) {
			Expect(render(text)).Error().To(MatchError(ContainSubstring(msg)))
		},
		Entry(nil, `{{ .lscpu | get_cores_from_numa_cores "7.0" }}`, "unknown NUMA node"),
		Entry(nil, `{{ .lscpu | get_cores_from_numa_cores "0.3" }}`, "CPU index out of range"),
		Entry(nil, `{{ get_coremask_from_cores "x" }}`, "invalid core"),
		Entry(nil, `{{ get_isolated_core_list_from_cmdline_output "5-3" }}`,
			"the upper limit of the range must be greater than the lower limit"),
		Entry(nil, `{{ .nothing }}`, "nothing"),
	)

	It("reports unparsable templates", func() {
		Expect(render(`{{ .lscpu | `)).Error().To(MatchError(ContainSubstring("cannot parse template")))
	})

})
