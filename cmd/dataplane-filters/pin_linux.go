//go:build linux

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

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/whitestack/dataplane/cpus"
)

func addPinCmd(root *cobra.Command, a *app) {
	var pid int
	cmd := &cobra.Command{
		Use:     "pin <cpu-list>",
		Short:   "Set the CPU affinity of a process",
		Example: "  dataplane-filters pin --pid 4242 2-5,8",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cores, err := cpus.ExpandIsolated(args[0])
			if err != nil {
				return err
			}
			a.log.Infow("pinning process", "pid", pid, "cpus", args[0])
			if err := a.pin(pid, cores); err != nil {
				return fmt.Errorf("cannot pin process %d: %w", pid, err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "process ID")
	_ = cmd.MarkFlagRequired("pid")
	root.AddCommand(cmd)
}

// cpuSetSize is the kernel's CPU_SETSIZE, the number of CPUs a [unix.CPUSet]
// can hold.
const cpuSetSize = 1024

// pinTask sets the CPU affinity of the task with the specified ID.
func pinTask(pid int, cores []int) error {
	var set unix.CPUSet
	set.Zero()
	for _, cpu := range cores {
		if cpu >= cpuSetSize {
			return fmt.Errorf("CPU %d exceeds the affinity mask size", cpu)
		}
		set.Set(cpu)
	}
	return unix.SchedSetaffinity(pid, &set)
}
