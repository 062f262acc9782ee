// Package cron composes five-field cron expressions and renders them as
// human-readable descriptions. Validation is presence-only: field values are
// templated into text, not checked against calendar ranges.
package cron

import (
	"fmt"
	"strings"

	"github.com/aleister1102/devkit/internal/common"
)

// Expression is a five-field cron schedule
type Expression struct {
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string
}

var weekdayNames = map[string]string{
	"0": "Sunday",
	"1": "Monday",
	"2": "Tuesday",
	"3": "Wednesday",
	"4": "Thursday",
	"5": "Friday",
	"6": "Saturday",
	"7": "Sunday",
}

var monthNames = map[string]string{
	"1": "January", "2": "February", "3": "March", "4": "April",
	"5": "May", "6": "June", "7": "July", "8": "August",
	"9": "September", "10": "October", "11": "November", "12": "December",
}

// Build assembles an expression from individual fields, treating empty
// fields as the wildcard
func Build(minute, hour, dayOfMonth, month, dayOfWeek string) *Expression {
	return &Expression{
		Minute:     defaultField(minute),
		Hour:       defaultField(hour),
		DayOfMonth: defaultField(dayOfMonth),
		Month:      defaultField(month),
		DayOfWeek:  defaultField(dayOfWeek),
	}
}

// Parse splits a cron expression into its five fields
func Parse(expr string) (*Expression, error) {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return nil, common.NewValidationError("expression", expr, "cron expression must have exactly 5 fields")
	}
	return &Expression{
		Minute:     fields[0],
		Hour:       fields[1],
		DayOfMonth: fields[2],
		Month:      fields[3],
		DayOfWeek:  fields[4],
	}, nil
}

// String renders the expression in crontab form
func (e *Expression) String() string {
	return strings.Join([]string{e.Minute, e.Hour, e.DayOfMonth, e.Month, e.DayOfWeek}, " ")
}

// Describe renders the schedule as text, walking the fields in fixed
// priority order (minute, hour, day, month, weekday) and skipping
// wildcards everywhere but the minute.
func (e *Expression) Describe() string {
	parts := []string{"At " + describeField(e.Minute, "minute", renderPlain)}

	if e.Hour != "*" {
		parts = append(parts, "past "+describeField(e.Hour, "hour", renderPlain))
	}
	if e.DayOfMonth != "*" {
		parts = append(parts, "on "+describeField(e.DayOfMonth, "day-of-month", renderPlain))
	}
	if e.Month != "*" {
		parts = append(parts, "in "+describeField(e.Month, "month", renderMonth))
	}
	if e.DayOfWeek != "*" {
		parts = append(parts, "on "+describeField(e.DayOfWeek, "day-of-week", renderWeekday))
	}

	return strings.Join(parts, ", ")
}

// renderPlain, renderMonth and renderWeekday turn a single field value into
// display text.
func renderPlain(value string) string { return value }

func renderMonth(value string) string { return lookupName(monthNames, value) }

func renderWeekday(value string) string { return lookupName(weekdayNames, value) }

func lookupName(names map[string]string, value string) string {
	if name, ok := names[value]; ok {
		return name
	}
	return value
}

// describeField templates one field, special-casing the wildcard, step
// values, ranges, lists and the literal L.
func describeField(value, unit string, render func(string) string) string {
	switch {
	case value == "*":
		return "every " + unit

	case strings.HasPrefix(value, "*/"):
		step := value[2:]
		return fmt.Sprintf("every %s%s %s", step, ordinalSuffix(step), unit)

	case value == "L":
		return "the last " + unit

	case strings.Contains(value, ","):
		items := strings.Split(value, ",")
		rendered := make([]string, len(items))
		for i, item := range items {
			rendered[i] = render(item)
		}
		if len(rendered) == 1 {
			return unit + " " + rendered[0]
		}
		head := strings.Join(rendered[:len(rendered)-1], ", ")
		return fmt.Sprintf("%s %s and %s", unit, head, rendered[len(rendered)-1])

	case strings.Contains(value, "-"):
		bounds := strings.SplitN(value, "-", 2)
		return fmt.Sprintf("every %s from %s through %s", unit, render(bounds[0]), render(bounds[1]))

	default:
		return unit + " " + render(value)
	}
}

// ordinalSuffix returns the English suffix for a numeric step value;
// non-numeric steps get the generic "th".
func ordinalSuffix(value string) string {
	if value == "" {
		return "th"
	}
	if len(value) >= 2 && value[len(value)-2] == '1' {
		return "th"
	}
	switch value[len(value)-1] {
	case '1':
		return "st"
	case '2':
		return "nd"
	case '3':
		return "rd"
	default:
		return "th"
	}
}

func defaultField(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "*"
	}
	return trimmed
}
