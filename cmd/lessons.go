package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Browse the training catalog",
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List training modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("steps")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s  %-20s  %-28s  %5s  %s\n", "ID", "Module", "Title", "Steps", "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 76))
		for _, l := range catalog.Lessons() {
			questions := 0
			for _, s := range l.Steps {
				if s.IsQuestion() {
					questions++
				}
			}
			fmt.Fprintf(out, "%-4d  %-20s  %-28s  %5d  %d\n",
				l.ID, truncate(l.Module, 20), truncate(l.Title, 28), len(l.Steps), questions)

			if !verbose {
				continue
			}
			for i, s := range l.Steps {
				text := s.Content
				if s.IsQuestion() {
					text = s.Prompt
				}
				fmt.Fprintf(out, "      %d. [%s] %s\n", i+1, s.Kind, truncate(firstLine(text), 60))
			}
		}
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func init() {
	lessonsListCmd.Flags().Bool("steps", false, "Show each lesson's steps")
	lessonsCmd.AddCommand(lessonsListCmd)
}

