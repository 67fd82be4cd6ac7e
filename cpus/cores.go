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

// MaxCPU is the highest CPU number accepted in core lists, matching the
// kernel's upper NR_CPUS limit.
const MaxCPU = 8191

// Coremask returns the hexadecimal coremask for a comma-separated list of CPU
// numbers, such as “0x446” for “1,2,6,10”. Whitespace around the CPU numbers
// is ignored. CPU numbers above [MaxCPU] are rejected with [ErrCPUTooLarge].
func Coremask(cores string) (string, error) {
	tokens := strings.Split(cores, ",")
	l := make(List, 0, len(tokens))
	for _, core := range tokens {
		cpu, err := strconv.Atoi(strings.TrimSpace(core))
		if err != nil {
			return "", fmt.Errorf("invalid core %q: %w", core, err)
		}
		if cpu < 0 {
			return "", fmt.Errorf("invalid core %q: negative CPU number", core)
		}
		if cpu > MaxCPU {
			return "", fmt.Errorf("invalid core %q: %w", core, ErrCPUTooLarge)
		}
		l = append(l, [2]uint{uint(cpu), uint(cpu)})
	}
	return l.Set().Mask(), nil
}

// ExpandIsolated returns the individual CPU numbers of an isolated CPU list,
// as found in the “isolcpus=” kernel command line parameter, such as
// “1,3-5,8” giving 1, 3, 4, 5, 8. CPU numbers are returned in the order of
// the list, with ranges expanded in place. Whitespace around CPU numbers is
// ignored, so “1, 3 - 5” is fine, but empty list elements are not. CPU
// numbers above [MaxCPU] are rejected with [ErrCPUTooLarge].
func ExpandIsolated(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, errors.New("empty CPU list")
	}
	l, err := NewList([]byte(compact(list)))
	if err != nil {
		return nil, fmt.Errorf("invalid CPU list %q: %w", list, err)
	}
	for _, r := range l {
		if r[1] > MaxCPU {
			return nil, fmt.Errorf("invalid CPU list %q: %w", list, ErrCPUTooLarge)
		}
	}
	return l.Expand(), nil
}

// compact removes the whitespace around the CPU numbers of a textual CPU list,
// leaving whitespace inside numbers, such as in “1 2”, for the list parser to
// reject.
func compact(list string) string {
	elems := strings.Split(list, ",")
	for idx, elem := range elems {
		if from, to, ok := strings.Cut(elem, "-"); ok {
			elems[idx] = strings.TrimSpace(from) + "-" + strings.TrimSpace(to)
			continue
		}
		elems[idx] = strings.TrimSpace(elem)
	}
	return strings.Join(elems, ",")
}
