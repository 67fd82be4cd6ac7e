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

// Package filters makes the dataplane helpers available as named template
// filters.
//
// In Go templates the piped value becomes the last argument of a function, so
// filters taking two arguments expect the piped command output last:
//
//	{{ .lscpu | get_cores_from_numa_cores "0.1,1.-1" | get_coremask_from_cores }}
//	{{ .netplan | get_address_from_netplan_file_content "br-ex" }}
//
// A filter failing aborts the template execution with the filter's error.
package filters

import (
	"fmt"
	"io"
	"maps"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/whitestack/dataplane/cpus"
	"github.com/whitestack/dataplane/netplan"
)

// Filter names.
const (
	NUMACores      = "get_cores_from_numa_cores"
	Coremask       = "get_coremask_from_cores"
	NetplanAddress = "get_address_from_netplan_file_content"
	IsolatedCores  = "get_isolated_core_list_from_cmdline_output"
)

// Names lists the names of all filters.
var Names = []string{NUMACores, Coremask, NetplanAddress, IsolatedCores}

// Filters returns the dataplane filters only.
func Filters() template.FuncMap {
	return template.FuncMap{
		NUMACores: cpus.ResolveNUMACores,
		Coremask:  cpus.Coremask,
		NetplanAddress: func(iface string, doc string) (string, error) {
			return netplan.Address(doc, iface)
		},
		IsolatedCores: cpus.ExpandIsolated,
	}
}

// FuncMap returns the sprig template functions together with the dataplane
// filters. Filters take precedence over sprig functions of the same name.
func FuncMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	maps.Copy(funcs, Filters())
	return funcs
}

// Render parses the named template text and executes it with the specified
// data, writing the output to w. Referencing missing map keys is an error.
func Render(w io.Writer, name string, text string, data any) error {
	tmpl, err := template.New(name).
		Funcs(FuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return fmt.Errorf("cannot parse template %q: %w", name, err)
	}
	return tmpl.Execute(w, data)
}
