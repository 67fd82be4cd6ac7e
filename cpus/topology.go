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
	"fmt"
	"strconv"
	"strings"
)

// Topology maps NUMA node identifiers to the CPUs of each node, in the order
// lscpu lists them. Both node and CPU identifiers are kept verbatim as text.
type Topology map[string][]string

// ParseTopology returns the Topology from the output of “lscpu -p=NODE,CPU”,
// such as:
//
//	# Node,CPU
//	0,0
//	0,2
//	1,1
//	1,3
//
// Comment lines starting with “#” are ignored, as are all lines not
// consisting of exactly two comma-separated fields.
func ParseTopology(lscpu string) Topology {
	t := Topology{}
	for _, line := range strings.Split(lscpu, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			continue
		}
		t[fields[0]] = append(t[fields[0]], fields[1])
	}
	return t
}

// CPU returns the CPU at the specified index of a NUMA node. Negative indices
// count from the end of the node's CPUs, so -1 is the node's last CPU.
func (t Topology) CPU(node string, index int) (string, error) {
	cpus, ok := t[node]
	if !ok {
		return "", fmt.Errorf("node %q: %w", node, ErrUnknownNode)
	}
	idx := index
	if idx < 0 {
		idx += len(cpus)
	}
	if idx < 0 || idx >= len(cpus) {
		return "", fmt.Errorf("node %q has %d CPUs, index %d: %w",
			node, len(cpus), index, ErrIndexOutOfRange)
	}
	return cpus[idx], nil
}

// Resolve translates a single core reference into a CPU number. A reference
// without “.” is already a CPU number and returned unchanged. Otherwise, the
// reference is “node.index” and resolved using [Topology.CPU].
func (t Topology) Resolve(ref string) (string, error) {
	node, index, ok := strings.Cut(ref, ".")
	if !ok {
		return ref, nil
	}
	if strings.Contains(index, ".") {
		return "", fmt.Errorf("invalid NUMA core reference %q: expected node.index", ref)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return "", fmt.Errorf("invalid NUMA core reference %q: %w", ref, err)
	}
	cpu, err := t.CPU(node, idx)
	if err != nil {
		return "", fmt.Errorf("cannot resolve NUMA core reference %q: %w", ref, err)
	}
	return cpu, nil
}

// ResolveNUMACores translates a comma-separated list of core references, such
// as “0.1,1.-1,3”, into a comma-separated list of CPU numbers, using the
// NUMA topology from the specified lscpu output. The CPU numbers are in the
// same order as their references.
func ResolveNUMACores(refs string, lscpu string) (string, error) {
	topo := ParseTopology(lscpu)
	reflist := strings.Split(refs, ",")
	cores := make([]string, 0, len(reflist))
	for _, ref := range reflist {
		cpu, err := topo.Resolve(ref)
		if err != nil {
			return "", err
		}
		cores = append(cores, cpu)
	}
	return strings.Join(cores, ","), nil
}
