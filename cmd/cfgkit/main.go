// Copyright 2026 The cfgkit Authors.
// SPDX-License-Identifier: BSD-3-Clause

// cfgkit is a command-line tool for querying and editing INI
// configuration files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cfgkit/cfgkit/ini"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var path string
	root := &cobra.Command{
		Use:          "cfgkit",
		Short:        "Query and edit INI configuration files",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&path, "file", "f", os.Getenv("CFGKIT_FILE"),
		"INI file to operate on (defaults to $CFGKIT_FILE)")
	root.AddCommand(
		newGetCommand(&path),
		newSetCommand(&path),
		newUnsetCommand(&path),
		newRemoveSectionCommand(&path),
		newSectionsCommand(&path),
		newKeysCommand(&path),
		newFmtCommand(&path),
	)
	return root
}

// load parses the file selected by --file. Mutating commands write the
// file back with File.WriteFile, so edits are atomic on disk.
func load(path string) (*ini.File, error) {
	if path == "" {
		return nil, errors.New("no file given (use --file or set CFGKIT_FILE)")
	}
	f := ini.New()
	if err := f.ReadFile(path); err != nil {
		return nil, err
	}
	return f, nil
}

// loadOrCreate is load for commands that may target a file that does
// not exist yet.
func loadOrCreate(path string) (*ini.File, error) {
	f, err := load(path)
	if errors.Is(err, os.ErrNotExist) {
		return ini.New(), nil
	}
	return f, err
}

func newGetCommand(path *string) *cobra.Command {
	var section, def string
	c := &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load(*path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.Get(section, args[0], def))
			return nil
		},
	}
	c.Flags().StringVarP(&section, "section", "s", "", "section to read (empty for the global section)")
	c.Flags().StringVarP(&def, "default", "d", "", "value to print when the key is absent")
	return c
}

func newSetCommand(path *string) *cobra.Command {
	var section string
	c := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a key and write the file back",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadOrCreate(*path)
			if err != nil {
				return err
			}
			if err := f.Set(section, args[0], args[1]); err != nil {
				return err
			}
			return f.WriteFile(*path)
		},
	}
	c.Flags().StringVarP(&section, "section", "s", "", "section to write (empty for the global section)")
	return c
}

func newUnsetCommand(path *string) *cobra.Command {
	var section string
	c := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key and write the file back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load(*path)
			if err != nil {
				return err
			}
			if err := f.RemoveKey(section, args[0]); err != nil {
				return err
			}
			return f.WriteFile(*path)
		},
	}
	c.Flags().StringVarP(&section, "section", "s", "", "section to edit (empty for the global section)")
	return c
}

func newRemoveSectionCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rmsection <name>",
		Short: "Remove a whole section and write the file back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load(*path)
			if err != nil {
				return err
			}
			if err := f.RemoveSection(args[0]); err != nil {
				return err
			}
			return f.WriteFile(*path)
		},
	}
}

func newSectionsCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List named sections in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load(*path)
			if err != nil {
				return err
			}
			for _, name := range f.Sections() {
				if name == "" {
					// The global section always exists; listing it
					// is noise.
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newKeysCommand(path *string) *cobra.Command {
	var section string
	c := &cobra.Command{
		Use:   "keys",
		Short: "List the keys of a section in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load(*path)
			if err != nil {
				return err
			}
			for _, key := range f.Keys(section) {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&section, "section", "s", "", "section to list (empty for the global section)")
	return c
}

func newFmtCommand(path *string) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the file in canonical form",
		Long: `Rewrite the file in canonical form.

Comments, blank lines, and surrounding whitespace are dropped;
sections and keys keep their order. Repeated section headers are
merged and repeated keys collapse to their last value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load(*path)
			if err != nil {
				return err
			}
			return f.WriteFile(*path)
		},
	}
}
