package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/shadowmaster/internal/llm"
	"github.com/abhisek/shadowmaster/internal/store"
)

var advisorCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Inspect the advisory request log",
	Long: `Inspect recorded LLM calls made by the Oracle, contract generation and 'ask'.

The log lives in the database named by --db or SHADOW_DB. Without one,
requests are only kept for the lifetime of a single process.`,
}

// openStore opens the request log without building a provider.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

var advisorLogCmd = &cobra.Command{
	Use:   "log",
	Short: "List recent advisory requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.Requests().Query(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No advisory requests found.")
			return nil
		}
		printRequestLog(out, recs)
		return nil
	},
}

func printRequestLog(out io.Writer, recs []store.RequestRecord) {
	fmt.Fprintf(out, "%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
		"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(out, strings.Repeat("─", 100))

	for _, r := range recs {
		ok := "✓"
		if !r.Success {
			ok = "✗"
		}
		fmt.Fprintf(out, "%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
			r.ID,
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			truncate(r.Purpose, 12),
			truncate(r.Model, 28),
			r.InputTokens,
			r.OutputTokens,
			r.LatencyMs,
			ok,
		)
	}
}

var advisorViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response for one advisory call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.Requests().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		if r == nil {
			return fmt.Errorf("request %d not found", id)
		}

		printRequest(cmd.OutOrStdout(), r)
		return nil
	},
}

func printRequest(out io.Writer, r *store.RequestRecord) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(out, "ID:        %d\n", r.ID)
	fmt.Fprintf(out, "Time:      %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Provider:  %s\n", r.Provider)
	fmt.Fprintf(out, "Model:     %s\n", r.Model)
	fmt.Fprintf(out, "Purpose:   %s\n", r.Purpose)
	fmt.Fprintf(out, "Tokens:    %d in / %d out\n", r.InputTokens, r.OutputTokens)
	fmt.Fprintf(out, "Latency:   %dms\n", r.LatencyMs)
	fmt.Fprintf(out, "Success:   %v\n", r.Success)
	if r.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:     %s\n", r.ErrorMessage)
	}

	for _, part := range []struct{ label, body string }{
		{"REQUEST", r.RequestBody},
		{"RESPONSE", r.ResponseBody},
	} {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, part.label)
		fmt.Fprintln(out, sep)
		if part.body == "" {
			fmt.Fprintln(out, "(not captured)")
			continue
		}
		fmt.Fprintln(out, part.body)
	}
}

var advisorStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.Requests().UsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No advisory usage recorded yet.")
			return nil
		}

		byModel, err := s.Requests().UsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		printUsage(out, byPurpose, byModel)
		return nil
	},
}

func printUsage(out io.Writer, byPurpose []store.PurposeUsage, byModel []store.ModelUsage) {
	rule := strings.Repeat("─", 80)

	fmt.Fprintln(out, "Usage by Purpose")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "%-14s  %6s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Failed", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(out, rule)

	var calls, failed, in, outTok int
	for _, u := range byPurpose {
		fmt.Fprintf(out, "%-14s  %6d  %6d  %10d  %10d  %10d  %8.0f\n",
			truncate(u.Purpose, 14), u.Calls, u.Failures, u.InputTokens, u.OutputTokens,
			u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		failed += u.Failures
		in += u.InputTokens
		outTok += u.OutputTokens
	}
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "%-14s  %6d  %6d  %10d  %10d  %10d\n",
		"TOTAL", calls, failed, in, outTok, in+outTok)

	if len(byModel) == 0 {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Estimated Cost (USD)")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(out, rule)

	var total float64
	var unknown []string
	for _, m := range byModel {
		cost := llm.LookupCost(m.Model)
		if cost == nil {
			unknown = append(unknown, m.Model)
			fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
				truncate(m.Model, 32), m.Calls, m.InputTokens, m.OutputTokens, "?")
			continue
		}
		c := cost.Cost(m.InputTokens, m.OutputTokens)
		total += c
		fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(m.Model, 32), m.Calls, m.InputTokens, m.OutputTokens, formatCost(c))
	}

	fmt.Fprintln(out, rule)
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))

	if len(unknown) > 0 {
		fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	advisorLogCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	advisorLogCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (mentor, mission-gen, cli)")

	advisorCmd.AddCommand(advisorLogCmd)
	advisorCmd.AddCommand(advisorViewCmd)
	advisorCmd.AddCommand(advisorStatsCmd)
}
