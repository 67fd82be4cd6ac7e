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
)

var (
	// ErrUnknownNode signals a NUMA core reference to a node that is absent
	// from the lscpu topology.
	ErrUnknownNode = errors.New("unknown NUMA node")
	// ErrIndexOutOfRange signals a NUMA core reference whose index lies
	// outside the CPUs of its node.
	ErrIndexOutOfRange = errors.New("CPU index out of range")
	// ErrInvalidRange signals a CPU range with its upper limit below its
	// lower limit.
	ErrInvalidRange = errors.New("the upper limit of the range must be greater than the lower limit")
	// ErrCPUTooLarge signals a CPU number beyond MaxCPU.
	ErrCPUTooLarge = errors.New("CPU number too large")
)

// RangeError describes an inverted CPU range, such as “5-3”.
type RangeError struct {
	From, To uint
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %d-%d: %s", e.From, e.To, ErrInvalidRange)
}

// Is reports ErrInvalidRange as matching.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
