// Package eta computes estimated and actual order durations and the
// variance between them.
package eta

import (
	"fmt"
	"math"
	"time"
)

// DefaultServiceMinutes is assumed when no service duration is known.
const DefaultServiceMinutes = 30

const (
	StatusOnTime  = "on_time"
	StatusEarly   = "early"
	StatusOverrun = "overrun"
	StatusUnknown = "unknown"
)

// EstimatedDuration sums per-service estimates, falling back to the
// default when nothing usable was selected.
func EstimatedDuration(serviceMinutes []int) int {
	total := 0
	for _, m := range serviceMinutes {
		if m > 0 {
			total += m
		}
	}
	if total <= 0 {
		return DefaultServiceMinutes
	}
	return total
}

// ActualDuration returns elapsed whole minutes between creation and
// completion, or nil when completion is unknown.
func ActualDuration(createdAt time.Time, completedAt *time.Time) *int {
	if createdAt.IsZero() || completedAt == nil || completedAt.IsZero() {
		return nil
	}

	minutes := int(completedAt.Sub(createdAt).Minutes())
	if minutes < 0 {
		return nil
	}
	return &minutes
}

type Variance struct {
	DifferenceMin int     `json:"difference_min"`
	Percentage    float64 `json:"percentage"`
	IsOverrun     bool    `json:"is_overrun"`
	Status        string  `json:"status"`
}

// CalcVariance compares actual against estimated minutes. Positive
// difference means overrun.
func CalcVariance(estimatedMin, actualMin int) Variance {
	if estimatedMin <= 0 || actualMin <= 0 {
		return Variance{Status: StatusUnknown}
	}

	diff := actualMin - estimatedMin
	pct := math.Round(float64(diff)/float64(estimatedMin)*100*100) / 100

	status := StatusOnTime
	switch {
	case diff > 0:
		status = StatusOverrun
	case diff < 0:
		status = StatusEarly
	}

	return Variance{
		DifferenceMin: diff,
		Percentage:    pct,
		IsOverrun:     diff > 0,
		Status:        status,
	}
}

// FormatDuration renders minutes as "2h 30m", "2h" or "45m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "—"
	}

	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours > 0 && mins > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

type Metrics struct {
	EstimatedDurationMin int        `json:"estimated_duration_min"`
	EstimatedFormatted   string     `json:"estimated_formatted"`
	ActualDurationMin    *int       `json:"actual_duration_min"`
	ActualFormatted      string     `json:"actual_formatted"`
	EstimatedCompletion  *time.Time `json:"estimated_completion"`
	ETAMet               bool       `json:"eta_met"`
	Variance             *Variance  `json:"variance,omitempty"`
}

// OrderMetrics builds the full time picture for an order from its
// timestamps and estimate.
func OrderMetrics(createdAt time.Time, completedAt *time.Time, estimatedMin int) Metrics {
	if estimatedMin <= 0 {
		estimatedMin = DefaultServiceMinutes
	}

	m := Metrics{
		EstimatedDurationMin: estimatedMin,
		EstimatedFormatted:   FormatDuration(estimatedMin),
		ActualFormatted:      "—",
		ETAMet:               true,
	}

	if !createdAt.IsZero() {
		done := createdAt.Add(time.Duration(estimatedMin) * time.Minute)
		m.EstimatedCompletion = &done
	}

	if actual := ActualDuration(createdAt, completedAt); actual != nil {
		m.ActualDurationMin = actual
		m.ActualFormatted = FormatDuration(*actual)
		v := CalcVariance(estimatedMin, *actual)
		m.Variance = &v
	}

	if completedAt != nil && m.EstimatedCompletion != nil {
		m.ETAMet = !completedAt.After(*m.EstimatedCompletion)
	}

	return m
}
