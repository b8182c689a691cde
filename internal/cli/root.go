// Package cli defines the bookingd command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRoot returns the root command with all subcommands attached.
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookingd",
		Short: "Booking service with a conversational assistant",
	}
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewChatCmd())
	return cmd
}
