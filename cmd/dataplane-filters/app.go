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
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the commands share: the filesystem input files are read
// from, the logger, and how to pin tasks to CPUs.
type app struct {
	fs    afero.Fs
	log   *zap.SugaredLogger
	debug bool
	pin   func(pid int, cpus []int) error
}

// setupLogging creates the logger, unless there already is one.
func (a *app) setupLogging() error {
	if a.log != nil {
		return nil
	}
	cfg := zap.NewProductionConfig()
	if a.debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = logger.Sugar()
	return nil
}

// readInput returns the contents of the specified file, or of stdin when the
// path is empty or “-”.
func (a *app) readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	a.log.Debugw("read input", "path", path, "size", len(b))
	return string(b), nil
}
