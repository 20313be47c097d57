package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/shadowmaster/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	if d.providerErr != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", d.providerErr)
		fmt.Fprintln(os.Stderr, "The Oracle and contract generation will run offline.")
	}

	return app.Run(cmd.Context(), app.Options{
		Config:  d.cfg,
		Catalog: d.catalog,
		Advisor: d.advisor,
		Logger:  d.log,
	})
}
