//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/markkurossi/esyn/session"
	"github.com/markkurossi/esyn/synth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLoadSpecCmd(a *app) *cobra.Command {
	var binary bool
	cmd := &cobra.Command{
		Use:     "load_spec TRUTH_TABLE",
		Aliases: []string{"load"},
		Short:   "Create new specification",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := a.sess.LoadSpec(args[0], binary)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", sp.Describe())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&binary, "binary", "b", false,
		"read truth table as binary string")
	return cmd
}

func newSynthesizeCmd(a *app) *cobra.Command {
	var fanin int
	var truthTable string
	var binary bool
	cmd := &cobra.Command{
		Use:   "synthesize",
		Short: "Synthesize network from specification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(truthTable) > 0 {
				if _, err := a.sess.LoadSpec(truthTable, binary); err != nil {
					return err
				}
			}
			_, err := a.sess.Synthesize(cmd.Context(), fanin)
			return err
		},
	}
	cmd.Flags().IntVarP(&fanin, "fanin", "k", 0,
		"fanin size of network operators")
	cmd.Flags().StringVarP(&truthTable, "tt", "t", "",
		"load truth table before synthesis")
	cmd.Flags().BoolVarP(&binary, "binary", "b", false,
		"read truth table as binary string")
	return cmd
}

func newIWLS2018Cmd(a *app) *cobra.Command {
	var truthTable string
	var fanin, gates int
	var dir string
	cmd := &cobra.Command{
		Use:   "iwls2018",
		Short: "Synthesize IWLS 2018 contest spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(truthTable) == 0 {
				return errors.New("truth table not specified")
			}
			name, count, err := a.sess.IWLS2018(cmd.Context(), truthTable,
				fanin, gates, dir)
			if errors.Is(err, session.ErrTimeout) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d solutions\n%s\n",
					name, count, synth.Timeout)
				return err
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d solutions\n", name, count)
			return nil
		},
	}
	cmd.Flags().StringVarP(&truthTable, "truth-table", "t", "",
		"function truth table")
	cmd.Flags().IntVarP(&fanin, "fanin", "f", 2, "number of operator fanins")
	cmd.Flags().IntVarP(&gates, "gates", "g", 1, "number of gates")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	return cmd
}

func newFIWLS2018Cmd(a *app) *cobra.Command {
	var filename string
	var dir string
	cmd := &cobra.Command{
		Use:   "fiwls2018",
		Short: "Read IWLS 2018 contest file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(filename) == 0 {
				return errors.New("benchmark file not specified")
			}
			return a.sess.FIWLS2018(cmd.Context(), filename, dir)
		},
	}
	cmd.Flags().StringVarP(&filename, "filename", "f", "",
		"benchmarks.txt file")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	return cmd
}

func newStoreCmd(a *app) *cobra.Command {
	var specs, networks bool
	cmd := &cobra.Command{
		Use:   "store",
		Short: "List store contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !specs && !networks {
				specs = true
				networks = true
			}
			if specs {
				a.sess.PrintSpecs(cmd.OutOrStdout())
			}
			if networks {
				a.sess.PrintNetworks(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&specs, "spec", "s", false, "list specifications")
	cmd.Flags().BoolVarP(&networks, "network", "n", false, "list networks")
	return cmd
}

func newPrintCmd(a *app) *cobra.Command {
	var specs bool
	var format string
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print current store element",
		RunE: func(cmd *cobra.Command, args []string) error {
			if specs {
				return a.sess.PrintSpec(cmd.OutOrStdout())
			}
			return a.sess.PrintNetwork(cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().BoolVarP(&specs, "spec", "s", false,
		"print the current specification")
	cmd.Flags().StringVar(&format, "format", "native",
		"network format: native, iwls, or dot")
	return cmd
}
