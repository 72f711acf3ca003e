package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/betterrest/internal/bedtime"
)

func TestCalculateReturnsCalculatedMsg(t *testing.T) {
	calc := bedtime.NewCalculator(bedtime.PredictorFunc(func(context.Context, bedtime.Features) (bedtime.Prediction, error) {
		return bedtime.Prediction{ActualSleep: 7*time.Hour + 50*time.Minute}, nil
	}))
	wake := time.Date(2025, 1, 6, 7, 0, 0, 0, time.Local)

	msg := Calculate(calc, bedtime.Input{Wake: wake, SleepHours: 8, CoffeeCups: 1}, "calc-1")()

	done, ok := msg.(CalculatedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want CalculatedMsg", msg)
	}
	if done.ID != "calc-1" {
		t.Fatalf("ID = %q, want %q", done.ID, "calc-1")
	}
	if !done.Outcome.OK {
		t.Fatalf("expected success outcome, got %+v", done.Outcome)
	}
	if got := done.Outcome.Text(true); got != "23:10" {
		t.Fatalf("bedtime = %q, want %q", got, "23:10")
	}
}

func TestCalculatePassesDeadline(t *testing.T) {
	var hasDeadline bool
	calc := bedtime.NewCalculator(bedtime.PredictorFunc(func(ctx context.Context, _ bedtime.Features) (bedtime.Prediction, error) {
		_, hasDeadline = ctx.Deadline()
		return bedtime.Prediction{}, errors.New("offline")
	}))

	msg := Calculate(calc, bedtime.Input{Wake: time.Now()}, "calc-2")()

	done := msg.(CalculatedMsg)
	if !hasDeadline {
		t.Fatal("expected predictor context to carry a deadline")
	}
	if done.Outcome.OK || done.Outcome.Message != bedtime.FailureMessage {
		t.Fatalf("expected generic failure, got %+v", done.Outcome)
	}
}

func TestStatus(t *testing.T) {
	msg := Status("Copied")()
	status, ok := msg.(StatusMsgCmd)
	if !ok || status.Msg != "Copied" {
		t.Fatalf("msg = %#v, want StatusMsgCmd{Msg: %q}", msg, "Copied")
	}
}
