package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/shadowmaster/internal/advisor"
	"github.com/abhisek/shadowmaster/internal/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the Oracle a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if !d.advisor.Available() {
			return fmt.Errorf("oracle offline: %w", d.providerErr)
		}

		ctx := llm.WithPurpose(cmd.Context(), llm.PurposeCLI)
		reply := d.advisor.Ask(ctx, strings.Join(args, " "), advisor.MentorPersona)
		fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	},
}
