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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/whitestack/dataplane/cpus"
	"github.com/whitestack/dataplane/filters"
	"github.com/whitestack/dataplane/netplan"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dataplane-filters",
		Short: "Derive DPDK dataplane settings from system command output",
		Long: `Derive DPDK dataplane settings, such as CPU lists, coremasks, and
interface addresses, from the output of lscpu, netplan documents, and the
kernel command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
	}
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.AddCommand(
		newNUMACoresCmd(a),
		newCoremaskCmd(a),
		newNetplanAddressCmd(a),
		newIsolatedCoresCmd(a),
		newRenderCmd(a),
	)
	addPinCmd(root, a)
	return root
}

func newNUMACoresCmd(a *app) *cobra.Command {
	var (
		lscpuPath string
		mask      bool
	)
	cmd := &cobra.Command{
		Use:   "numa-cores <refs>",
		Short: "Resolve NUMA core references into CPU numbers",
		Long: `Resolve comma-separated NUMA core references "node.index" into CPU
numbers, using the output of "lscpu -p=NODE,CPU". Negative indices count from
the end of a node's CPUs. References without "." are taken as CPU numbers.`,
		Example: "  lscpu -p=NODE,CPU | dataplane-filters numa-cores 0.1,1.-1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lscpu, err := a.readInput(cmd, lscpuPath)
			if err != nil {
				return err
			}
			a.log.Debugw("resolving NUMA cores", "refs", args[0])
			cores, err := cpus.ResolveNUMACores(args[0], lscpu)
			if err != nil {
				return err
			}
			if mask {
				if cores, err = cpus.Coremask(cores); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), cores)
			return nil
		},
	}
	cmd.Flags().StringVar(&lscpuPath, "lscpu", "", `file with "lscpu -p=NODE,CPU" output (default stdin)`)
	cmd.Flags().BoolVar(&mask, "mask", false, "print the coremask of the resolved CPUs instead")
	return cmd
}

func newCoremaskCmd(a *app) *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "coremask <cores>",
		Short: "Convert a comma-separated list of CPU numbers into a coremask",
		Example: `  dataplane-filters coremask 1,2,6,10
  dataplane-filters coremask --decode 0x446`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if decode {
				set, err := cpus.ParseMask(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), set.String())
				return nil
			}
			a.log.Debugw("building coremask", "cores", args[0])
			mask, err := cpus.Coremask(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mask)
			return nil
		},
	}
	cmd.Flags().BoolVar(&decode, "decode", false, "convert a coremask into a CPU list instead")
	return cmd
}

func newNetplanAddressCmd(a *app) *cobra.Command {
	var netplanPath string
	cmd := &cobra.Command{
		Use:     "netplan-address <interface>",
		Short:   "Print the first address of an interface from a netplan document",
		Example: "  dataplane-filters netplan-address br-ex --file /etc/netplan/50-cloud-init.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readInput(cmd, netplanPath)
			if err != nil {
				return err
			}
			a.log.Debugw("looking up netplan address", "interface", args[0])
			addr, err := netplan.Address(doc, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	cmd.Flags().StringVarP(&netplanPath, "file", "f", "", "netplan document (default stdin)")
	return cmd
}

func newIsolatedCoresCmd(a *app) *cobra.Command {
	var (
		cmdlinePath string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "isolated-cores [cpu-list]",
		Short: "Expand an isolated CPU list into individual CPU numbers",
		Long: `Expand an isolated CPU list, such as "1,3-5,8", into its individual CPU
numbers. Without a CPU list argument, the list is taken from the "isolcpus="
parameter of the kernel command line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var list string
			if len(args) == 1 {
				list = args[0]
			} else {
				cmdline, err := a.readInput(cmd, cmdlinePath)
				if err != nil {
					return err
				}
				var ok bool
				if list, ok = cpus.IsolatedFromCmdline(cmdline); !ok {
					return fmt.Errorf("no isolcpus parameter in %s", cmdlinePath)
				}
			}
			a.log.Debugw("expanding isolated cores", "list", list)
			cores, err := cpus.ExpandIsolated(list)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(cores)
			}
			for _, cpu := range cores {
				fmt.Fprintln(cmd.OutOrStdout(), cpu)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cmdlinePath, "cmdline", "/proc/cmdline", "kernel command line file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		dataPath string
		inputs   map[string]string
	)
	cmd := &cobra.Command{
		Use:   "render <template>",
		Short: "Render a template using the dataplane filters",
		Long: `Render a Go text template with the dataplane filters and the sprig
functions available. Template data comes from a YAML document, and from files
whose contents are assigned to data keys.`,
		Example: `  lscpu -p=NODE,CPU > /tmp/lscpu
  dataplane-filters render dpdk.conf.tmpl --input lscpu=/tmp/lscpu --data vars.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args[0])
			if err != nil {
				return err
			}
			data := map[string]any{}
			if dataPath != "" {
				raw, err := a.readInput(cmd, dataPath)
				if err != nil {
					return err
				}
				if err := yaml.Unmarshal([]byte(raw), &data); err != nil {
					return fmt.Errorf("cannot parse template data %s: %w", dataPath, err)
				}
			}
			for key, path := range inputs {
				content, err := a.readInput(cmd, path)
				if err != nil {
					return err
				}
				data[key] = content
			}
			a.log.Debugw("rendering template", "template", args[0], "keys", len(data))
			return filters.Render(cmd.OutOrStdout(), args[0], text, data)
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "", "YAML document with template data")
	cmd.Flags().StringToStringVar(&inputs, "input", nil, "assign the contents of a file to a data key (key=path)")
	return cmd
}
