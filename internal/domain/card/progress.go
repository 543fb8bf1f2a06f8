package card

import (
	"math"
	"time"
)

// PunchRecord is one immutable ledger row: a quantity credited to a
// customer against a card. Punches are append-only and ordered by time.
type PunchRecord struct {
	Quantity  int32
	CreatedAt time.Time
}

// Progress is the aggregated view of a customer's punches on one card.
type Progress struct {
	Total       int32
	Goal        int32
	Percent     int
	Completed   bool
	CompletedAt *time.Time
}

// ComputeProgress folds an ordered punch sequence into a progress view.
// CompletedAt is the timestamp of the row whose running sum first reached
// the goal, not the latest row overall. A goal below 1 is clamped to 1 to
// keep the percentage well-defined for legacy rows.
func ComputeProgress(goal int32, punches []PunchRecord) Progress {
	if goal < 1 {
		goal = 1
	}

	var total int32
	var completedAt *time.Time
	for idx := range punches {
		prev := total
		total += punches[idx].Quantity
		if prev < goal && total >= goal {
			t := punches[idx].CreatedAt
			completedAt = &t
		}
	}

	progress := total
	if progress > goal {
		progress = goal
	}
	pct := int(math.Round(float64(progress) / float64(goal) * 100))

	return Progress{
		Total:       total,
		Goal:        goal,
		Percent:     pct,
		Completed:   total >= goal,
		CompletedAt: completedAt,
	}
}
