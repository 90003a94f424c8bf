package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the battlegear CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "battlegear-cli",
		Short:         "BattleGear API administration CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(NewUsersCmd())

	return cmd
}
