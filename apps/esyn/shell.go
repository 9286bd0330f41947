//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively in one session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "esyn> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				line := strings.Fields(scanner.Text())
				if len(line) == 0 {
					continue
				}
				switch line[0] {
				case "quit", "exit":
					return nil
				case "shell":
					fmt.Fprintln(cmd.ErrOrStderr(), "Error: already in shell")
					continue
				}
				sub := newRootCmd(a)
				sub.SilenceErrors = true
				sub.SetArgs(line)
				sub.SetOut(out)
				sub.SetErr(cmd.ErrOrStderr())
				if err := sub.ExecuteContext(cmd.Context()); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
			}
		},
	}
}
