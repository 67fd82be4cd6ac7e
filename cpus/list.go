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
	"strings"

	"github.com/thediveo/faf"
)

// List is a list of CPU [from...to] ranges in the order they were specified.
// CPU numbers are starting from zero.
type List [][2]uint

// String returns the CPU list in textual format, with the individual ranges
// “x-y” separated by “,” and single CPU ranges collapsed into “x” (instead of
// “x-x”).
func (l List) String() string {
	var b strings.Builder
	for idx, cpurange := range l {
		if idx > 0 {
			b.WriteString(",")
		}
		if cpurange[0] == cpurange[1] {
			fmt.Fprintf(&b, "%d", cpurange[0])
			continue
		}
		fmt.Fprintf(&b, "%d-%d", cpurange[0], cpurange[1])
	}
	return b.String()
}

// NewList returns a new CPU List for the given textual list format, such as
// “1,3-5,8”. The ranges are kept in the order of the text; they are neither
// sorted nor merged. If the text is malformed, or a range has its upper limit
// below its lower limit, then an error is returned instead.
func NewList(b []byte) (List, error) {
	bs := faf.NewBytestring(b)
	l := List{}
	for {
		if bs.EOL() {
			return l, nil
		}
		from, ok := bs.Uint64()
		if !ok {
			return nil, errors.New("expected unsigned integer number")
		}
		if bs.EOL() {
			return append(l, [2]uint{uint(from), uint(from)}), nil
		}
		switch ch, _ := bs.Next(); ch {
		case '-':
			to, ok := bs.Uint64()
			if !ok {
				return nil, errors.New("expected unsigned integer number")
			}
			if to < from {
				return nil, &RangeError{From: uint(from), To: uint(to)}
			}
			l = append(l, [2]uint{uint(from), uint(to)})
			if bs.EOL() {
				return l, nil
			}
			// another CPU number or range must follow, separated by ",".
			ch, _ = bs.Next()
			if ch != ',' {
				return nil, errors.New("expected ','")
			}
		case ',':
			l = append(l, [2]uint{uint(from), uint(from)})
		default:
			return nil, errors.New("expected '-' or ','")
		}
		// a "," must be followed by another CPU number or range.
		if bs.EOL() {
			return nil, errors.New("expected unsigned integer number")
		}
	}
}

// Len returns the number of CPUs in this List, counting CPUs that appear in
// multiple ranges multiple times.
func (l List) Len() int {
	n := 0
	for _, r := range l {
		n += int(r[1]-r[0]) + 1
	}
	return n
}

// Expand returns the individual CPU numbers of this List, range by range in
// list order, with each range expanded in ascending order. Duplicates are
// kept.
func (l List) Expand() []int {
	cpus := make([]int, 0, l.Len())
	for _, r := range l {
		for cpu := r[0]; cpu <= r[1]; cpu++ {
			cpus = append(cpus, int(cpu))
		}
	}
	return cpus
}

// Set returns the CPU Set corresponding with this list.
func (l List) Set() Set {
	if len(l) == 0 {
		return Set{}
	}
	// Allocate once for the highest CPU in any of the ranges.
	var hi uint
	for _, r := range l {
		hi = max(hi, r[1])
	}
	s := make(Set, setBitIndex(hi)+1)
	for _, r := range l {
		s = s.AddRange(r[0], r[1])
	}
	return s
}
