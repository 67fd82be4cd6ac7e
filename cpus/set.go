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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Set is a CPU bit string, such as used for DPDK coremasks and CPU affinity
// masks: bit i is set when CPU i is in the set. Word 0 holds CPUs 0-63, word
// 1 CPUs 64-127, and so on.
type Set []uint64

const bitsperword = 64

func setBitIndex(cpu uint) int {
	return int(cpu / bitsperword)
}

func setBitMask(cpu uint) uint64 {
	return uint64(1) << (cpu % bitsperword)
}

// AddRange adds the CPUs from the specified range, returning an updated Set.
// This updated Set may or may not be the original Set.
func (s Set) AddRange(from, to uint) Set {
	if from > to {
		panic(fmt.Sprintf("invalid range %d-%d", from, to))
	}
	if need := setBitIndex(to) + 1; need > len(s) {
		s = append(s, make(Set, need-len(s))...)
	}
	for cpu := from; cpu <= to; cpu++ {
		s[setBitIndex(cpu)] |= setBitMask(cpu)
	}
	return s
}

// Mask returns this set as a hexadecimal mask with “0x” prefix, in lowercase
// and without leading zeros, such as “0x446” for the CPUs 1, 2, 6, and 10. The
// empty set is “0x0”.
func (s Set) Mask() string {
	hi := len(s) - 1
	for hi >= 0 && s[hi] == 0 {
		hi--
	}
	if hi < 0 {
		return "0x0"
	}
	var b strings.Builder
	b.WriteString("0x")
	b.WriteString(strconv.FormatUint(s[hi], 16))
	for idx := hi - 1; idx >= 0; idx-- {
		fmt.Fprintf(&b, "%016x", s[idx])
	}
	return b.String()
}

// ParseMask returns the Set for a hexadecimal mask with “0x” prefix, as
// returned by [Set.Mask]. Masks are not limited to 64 CPUs.
func ParseMask(mask string) (Set, error) {
	hex, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(mask)), "0x")
	if !ok || hex == "" {
		return nil, errors.New("expected hexadecimal mask with 0x prefix")
	}
	s := make(Set, (len(hex)+15)/16)
	for idx := range s {
		end := len(hex) - idx*16
		word, err := strconv.ParseUint(hex[max(end-16, 0):end], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mask %q: %w", mask, err)
		}
		s[idx] = word
	}
	return s, nil
}

// String returns the CPUs in this set in textual list format. In list format,
// individual CPU ranges “x-y” are separated by “,”, and single CPU ranges
// collapsed into “x”.
func (s Set) String() string {
	return s.List().String()
}

// List returns the list of CPU ranges corresponding with this CPU Set, in
// ascending order.
func (s Set) List() List {
	cpulist := List{}
	inRange := false
	var from uint
	for idx, word := range s {
		// Fast-forward through words that cannot start or end a range.
		if (!inRange && word == 0) || (inRange && word == ^uint64(0)) {
			continue
		}
		base := uint(idx) * bitsperword
		for bit := uint(0); bit < bitsperword; bit++ {
			set := word&(uint64(1)<<bit) != 0
			switch {
			case set && !inRange:
				from, inRange = base+bit, true
			case !set && inRange:
				cpulist = append(cpulist, [2]uint{from, base + bit - 1})
				inRange = false
			}
		}
	}
	if inRange {
		cpulist = append(cpulist, [2]uint{from, uint(len(s))*bitsperword - 1})
	}
	return cpulist
}
