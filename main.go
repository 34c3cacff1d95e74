// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags have been parsed.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	mode   TerminalMode
	config *Config
	log    zerolog.Logger
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		bootLog, _ := newLogger(cmd.ErrOrStderr(), "")
		bootLog.Warn().Err(err).Msg("Failed to load configuration. Using default settings.")
	}

	level := config.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	log, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	a.config = config
	a.log = log
	a.mode = detectTerminalMode()
	InitializeColors(a.colorEnabled(), a.mode)
	return nil
}

func (a *app) colorEnabled() bool {
	return a.config.Display.Color && !a.noColor
}

func (a *app) renderer() *treeRenderer {
	return newTreeRenderer(a.colorEnabled(), a.mode)
}

func (a *app) interpreter() *Interpreter {
	return NewInterpreter(NewWorkspace(a.config.Workspace), a.log)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Build the sample tree, print it with max/min/sum, then delete keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := demoOptions{Keys: a.config.Tree.Keys, Delete: a.config.Tree.Delete}
			var err error
			if cmd.Flags().Changed("keys") {
				if opts.Keys, err = parseKeys(mustStringSlice(cmd, "keys")); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("delete") {
				if opts.Delete, err = parseKeys(mustStringSlice(cmd, "delete")); err != nil {
					return err
				}
			}
			opts.Check, _ = cmd.Flags().GetBool("check")
			return runDemo(cmd.OutOrStdout(), a.renderer(), opts, a.log)
		},
	}
	cmdDemo.Flags().StringSlice("keys", nil, "keys to insert, in order (default from config)")
	cmdDemo.Flags().StringSlice("delete", nil, "keys to delete afterwards, in order (default from config)")
	cmdDemo.Flags().Bool("check", false, "validate tree invariants after every step")

	var cmdBuild = &cobra.Command{
		Use:   "build [KEY...]",
		Short: "Build a tree from keys given as arguments and/or in a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			if path, _ := cmd.Flags().GetString("file"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				fromFile, err := readKeys(f)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				keys = append(keys, fromFile...)
			}
			if len(keys) == 0 {
				return fmt.Errorf("no keys given")
			}
			check, _ := cmd.Flags().GetBool("check")
			a.log.Debug().Int("keys", len(keys)).Msg("building tree")
			return runBuild(cmd.OutOrStdout(), a.renderer(), keys, check)
		},
	}
	cmdBuild.Flags().String("file", "", "file with keys separated by whitespace or commas")
	cmdBuild.Flags().Bool("check", false, "validate tree invariants after every insert")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell over named trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), a.interpreter())
			}
			return runBubbleTeaApp(a.interpreter(), a.renderer())
		},
	}
	cmdShell.Flags().Bool("plain", false, "read commands line by line instead of starting the UI")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Random inserts and deletes with invariant checks after every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := StressOptions{
				Operations: a.config.Stress.Operations,
				KeyRange:   a.config.Stress.KeyRange,
				Seed:       a.config.Stress.Seed,
			}
			if cmd.Flags().Changed("ops") {
				opts.Operations, _ = cmd.Flags().GetInt("ops")
			}
			if cmd.Flags().Changed("range") {
				opts.KeyRange, _ = cmd.Flags().GetInt("range")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				opts.Progress = cmd.ErrOrStderr()
			}

			report, err := runStress(opts, a.log)
			if err != nil {
				return err
			}
			printStressReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmdStress.Flags().Int("ops", 0, "number of operations (default from config)")
	cmdStress.Flags().Int("range", 0, "keys are drawn from [0, range) (default from config)")
	cmdStress.Flags().Int64("seed", 0, "random seed (default from config)")
	cmdStress.Flags().Bool("quiet", false, "no progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), a.configPath)
		},
	}

	var rootCmd = &cobra.Command{
		Use:               "avlkit",
		Version:           version,
		Short:             "Build, inspect and stress AVL trees",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive shell when no subcommand is provided
			return runBubbleTeaApp(a.interpreter(), a.renderer())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")
	rootCmd.AddCommand(cmdDemo, cmdBuild, cmdShell, cmdStress, cmdUsage, cmdVersion, cmdSettings)
	return rootCmd
}

func mustStringSlice(cmd *cobra.Command, name string) []string {
	v, _ := cmd.Flags().GetStringSlice(name)
	return v
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
