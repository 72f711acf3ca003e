package ui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/betterrest/internal/bedtime"
)

// ErrCalculationFailed is returned by calc after the failure message has
// already been printed.
var ErrCalculationFailed = errors.New(bedtime.FailureMessage)

// calcResult is the --json output of calc.
type calcResult struct {
	OK      bool   `json:"ok"`
	Title   string `json:"title"`
	Bedtime string `json:"bedtime,omitempty"` // RFC 3339
	Text    string `json:"text"`
}

func (a *App) calcCmd() *cobra.Command {
	var (
		wake    string
		sleep   float64
		coffee  int
		asJSON  bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a bedtime without opening the form",
		Long: `Calculate a recommended bedtime and print it.

Example:
  betterrest calc --wake=07:00 --sleep=8 --coffee=1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor || !isTerminal(cmd.OutOrStdout()) {
				DisableColor()
			}

			p, err := a.getPredictor()
			if err != nil {
				return err
			}

			now := time.Now()
			wakeTime := now
			if wake != "" {
				wakeTime = bedtime.ParseWake(wake, now)
			}

			out := bedtime.NewCalculator(p).Calculate(context.Background(), bedtime.Input{
				Wake:       wakeTime,
				SleepHours: sleep,
				CoffeeCups: coffee,
			})

			if asJSON {
				err = writeCalcJSON(cmd.OutOrStdout(), out, a.config.Uses24HourClock())
			} else {
				err = writeCalcText(cmd.OutOrStdout(), out, a.config.Uses24HourClock())
			}
			if err != nil {
				return err
			}

			if !out.OK {
				return ErrCalculationFailed
			}
			return nil
		},
	}

	d := a.config.Defaults
	cmd.Flags().StringVar(&wake, "wake", d.Wake, "Wake time (HH:MM, default: now)")
	cmd.Flags().Float64Var(&sleep, "sleep", d.SleepHours, "Desired amount of sleep in hours")
	cmd.Flags().IntVar(&coffee, "coffee", d.CoffeeCups, "Daily coffee intake in cups")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func writeCalcText(w io.Writer, out bedtime.Outcome, clock24 bool) error {
	var err error
	if out.OK {
		_, err = fmt.Fprintf(w, "%s %s\n", formatHeader(out.Title()), formatBedtime(out.Text(clock24)))
	} else {
		_, err = fmt.Fprintf(w, "%s: %s\n", formatError(out.Title()), out.Text(clock24))
	}
	return err
}

func writeCalcJSON(w io.Writer, out bedtime.Outcome, clock24 bool) error {
	res := calcResult{
		OK:    out.OK,
		Title: out.Title(),
		Text:  out.Text(clock24),
	}
	if out.OK {
		res.Bedtime = out.Bedtime.Format(time.RFC3339)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
