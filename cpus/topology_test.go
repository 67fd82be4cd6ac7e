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

const lscpu = `# The following is the parsable format, which can be fed to other
# programs. Each different item in every column has an unique ID
# starting from zero.
# Node,CPU
0,0
0,2
0,4
1,1
1,3
1,5
`

var _ = Describe("NUMA topology", func() {

	It("parses lscpu output", func() {
		Expect(ParseTopology(lscpu)).To(Equal(Topology{
			"0": {"0", "2", "4"},
			"1": {"1", "3", "5"},
		}))
	})

	It("skips comments and malformed lines, keeping duplicates", func() {
		Expect(ParseTopology("# Node,CPU\n\n0,7\n0,1,2\nfoo\n0,7\nx,y")).To(Equal(Topology{
			"0": {"7", "7"},
			"x": {"y"},
		}))
	})

	It("returns an empty topology from nothing", func() {
		Expect(ParseTopology("")).To(BeEmpty())
	})

	DescribeTable("resolving NUMA core references",
		func(refs string, expected string) {
			Expect(ResolveNUMACores(refs, lscpu)).To(Equal(expected))
		},
		Entry(nil, "0.1,0.2", "2,4"),
		Entry(nil, "1.1,0.2", "3,4"),
		Entry(nil, "3,0.2", "3,4"),
		Entry(nil, "0.1,1.-1", "2,5"),
		Entry(nil, "0.-1", "4"),
		Entry(nil, "0.-3", "0"),
		Entry(nil, "1.0,1.0", "1,1"),
	)

	DescribeTable("passing through bare core numbers",
		func(refs string) {
			Expect(ResolveNUMACores(refs, lscpu)).To(Equal(refs))
			Expect(ResolveNUMACores(refs, "")).To(Equal(refs))
		},
		Entry(nil, "3"),
		Entry(nil, "3,42,1"),
		Entry(nil, ""),
	)

	DescribeTable("failing to resolve",
		func(refs string, matcher any) {
			Expect(ResolveNUMACores(refs, lscpu)).Error().To(MatchError(matcher))
		},
		Entry("unknown node", "0.1,2.0", ErrUnknownNode),
		Entry("index beyond end", "0.3", ErrIndexOutOfRange),
		Entry("index before start", "1.-4", ErrIndexOutOfRange),
		Entry("non-integer index", "0.x", ContainSubstring("invalid syntax")),
		Entry("empty index", "0.", ContainSubstring("invalid syntax")),
		Entry("too many dots", "0.1.2", ContainSubstring("expected node.index")),
	)

	It("is repeatable", func() {
		first, err := ResolveNUMACores("0.1,1.-1,7", lscpu)
		Expect(err).NotTo(HaveOccurred())
		Expect(ResolveNUMACores("0.1,1.-1,7", lscpu)).To(Equal(first))
	})

})
