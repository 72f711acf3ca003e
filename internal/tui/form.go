package tui

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/javiermolinar/betterrest/internal/bedtime"
	"github.com/javiermolinar/betterrest/internal/config"
)

// Field identifies a focusable form control.
type Field int

const (
	FieldWakeHour Field = iota
	FieldWakeMinute
	FieldSleep
	FieldCoffee
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldWakeHour:
		return "wake_hour"
	case FieldWakeMinute:
		return "wake_minute"
	case FieldSleep:
		return "sleep"
	case FieldCoffee:
		return "coffee"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Form holds the draft values shown in the form. It is only read when a
// calculation is triggered.
type Form struct {
	Hour       int
	Minute     int
	SleepHours float64
	CoffeeCups int
}

// newForm seeds a form from config defaults. An empty wake default means the
// current time.
func newForm(d config.DefaultsConfig, now time.Time) Form {
	wake := now
	if d.Wake != "" {
		wake = bedtime.ParseWake(d.Wake, now)
	}

	f := Form{
		Hour:       wake.Hour(),
		Minute:     wake.Minute(),
		SleepHours: d.SleepHours,
		CoffeeCups: d.CoffeeCups,
	}
	f.SleepHours = clampFloat(f.SleepHours, config.SleepHoursMin, config.SleepHoursMax)
	f.CoffeeCups = clampInt(f.CoffeeCups, config.CoffeeCupsMin, config.CoffeeCupsMax)
	return f
}

// Step moves the value of field by delta steps. The time picker wraps around;
// steppers stop at their bounds.
func (f Form) Step(field Field, delta int) Form {
	switch field {
	case FieldWakeHour:
		f.Hour = wrap(f.Hour+delta, 24)
	case FieldWakeMinute:
		f.Minute = wrap(f.Minute+delta, 60)
	case FieldSleep:
		next := f.SleepHours + float64(delta)*config.SleepHoursStep
		f.SleepHours = clampFloat(next, config.SleepHoursMin, config.SleepHoursMax)
	case FieldCoffee:
		f.CoffeeCups = clampInt(f.CoffeeCups+delta, config.CoffeeCupsMin, config.CoffeeCupsMax)
	}
	return f
}

// Input builds a calculator input with the wake time placed on day.
func (f Form) Input(day time.Time) bedtime.Input {
	y, m, d := day.Date()
	return bedtime.Input{
		Wake:       time.Date(y, m, d, f.Hour, f.Minute, 0, 0, day.Location()),
		SleepHours: f.SleepHours,
		CoffeeCups: f.CoffeeCups,
	}
}

// SleepLabel renders the sleep stepper value, e.g. "8 hours" or "8.25 hours".
func (f Form) SleepLabel() string {
	return strconv.FormatFloat(f.SleepHours, 'f', -1, 64) + " hours"
}

// CoffeeLabel renders the coffee stepper value, e.g. "1 cup(s)".
func (f Form) CoffeeLabel() string {
	return fmt.Sprintf("%d cup(s)", f.CoffeeCups)
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	// Keep the value on the stepper grid so repeated steps never drift.
	v = math.Round(v/config.SleepHoursStep) * config.SleepHoursStep
	return math.Min(math.Max(v, lo), hi)
}
