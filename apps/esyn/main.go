//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"io"
	"os"

	"github.com/markkurossi/esyn/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	params *session.Params
	log    *logrus.Logger
	sess   *session.Session
	debug  bool
}

func newApp(out io.Writer) *app {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	params := session.NewParams()
	return &app{
		params: params,
		log:    log,
		sess:   session.New(params, out, log),
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "esyn",
		Short: "Exact synthesis of Boolean chains",
		Long: `Exact synthesis of minimum bounded-fanin Boolean chains from truth
tables, with output in the native listing and the IWLS 2018 contest
format.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.debug {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", a.debug, "enable debug logging")
	flags.DurationVar(&a.params.Timeout, "timeout", a.params.Timeout,
		"synthesis time limit, 0 for no limit")
	flags.IntVar(&a.params.MaxSteps, "max-steps", a.params.MaxSteps,
		"maximum number of steps for synthesize")
	flags.BoolVar(&a.params.Profile, "profile", a.params.Profile,
		"print synthesis profiling report")

	cmd.AddCommand(newLoadSpecCmd(a))
	cmd.AddCommand(newSynthesizeCmd(a))
	cmd.AddCommand(newIWLS2018Cmd(a))
	cmd.AddCommand(newFIWLS2018Cmd(a))
	cmd.AddCommand(newStoreCmd(a))
	cmd.AddCommand(newPrintCmd(a))
	cmd.AddCommand(newShellCmd(a))

	return cmd
}

func main() {
	a := newApp(os.Stdout)
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
