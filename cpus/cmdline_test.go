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

import (
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("kernel command line", func() {

	DescribeTable("finding isolated CPUs",
		func(cmdline string, expected string, found bool) {
			list, ok := IsolatedFromCmdline(cmdline)
			Expect(ok).To(Equal(found))
			Expect(list).To(Equal(expected))
		},
		Entry(nil, "BOOT_IMAGE=/vmlinuz ro quiet", "", false),
		Entry(nil, "BOOT_IMAGE=/vmlinuz isolcpus=1,3-5,8 quiet\n", "1,3-5,8", true),
		Entry(nil, "isolcpus=managed_irq,domain,2-5 nohz_full=2-5", "2-5", true),
		Entry(nil, "isolcpus=1 isolcpus=2-3", "2-3", true),
		Entry(nil, "isolcpus=", "", true),
	)

	It("feeds the isolated CPU list expansion", func() {
		list, _ := IsolatedFromCmdline("ro isolcpus=nohz,1,3-5,8 hugepages=16")
		Expect(ExpandIsolated(list)).To(Equal([]int{1, 3, 4, 5, 8}))
	})

})
