//go:build unit

package card_test

import (
	"testing"
	"time"

	"engage-api/internal/domain/card"

	"github.com/google/go-cmp/cmp"
)

func TestComputeProgress(t *testing.T) {
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }
	timePtr := func(t time.Time) *time.Time { return &t }

	punch := func(quantity int32, minutes int) card.PunchRecord {
		return card.PunchRecord{Quantity: quantity, CreatedAt: at(minutes)}
	}

	cases := []struct {
		name    string
		goal    int32
		punches []card.PunchRecord
		want    card.Progress
	}{
		{
			name:    "no punches",
			goal:    10,
			punches: nil,
			want:    card.Progress{Total: 0, Goal: 10, Percent: 0, Completed: false},
		},
		{
			name:    "partial progress rounds the percentage",
			goal:    3,
			punches: []card.PunchRecord{punch(1, 0)},
			want:    card.Progress{Total: 1, Goal: 3, Percent: 33, Completed: false},
		},
		{
			name: "completed at the row that first reaches the goal",
			goal: 5,
			punches: []card.PunchRecord{
				punch(2, 0),
				punch(3, 10),
				punch(1, 20),
			},
			want: card.Progress{
				Total: 6, Goal: 5, Percent: 100,
				Completed: true, CompletedAt: timePtr(at(10)),
			},
		},
		{
			name: "later zero-quantity row does not move the completion time",
			goal: 5,
			punches: []card.PunchRecord{
				punch(5, 0),
				punch(0, 15),
			},
			want: card.Progress{
				Total: 5, Goal: 5, Percent: 100,
				Completed: true, CompletedAt: timePtr(at(0)),
			},
		},
		{
			name: "single punch overshooting the goal completes immediately",
			goal: 3,
			punches: []card.PunchRecord{
				punch(7, 5),
			},
			want: card.Progress{
				Total: 7, Goal: 3, Percent: 100,
				Completed: true, CompletedAt: timePtr(at(5)),
			},
		},
		{
			name: "goal below one is clamped",
			goal: 0,
			punches: []card.PunchRecord{
				punch(1, 0),
			},
			want: card.Progress{
				Total: 1, Goal: 1, Percent: 100,
				Completed: true, CompletedAt: timePtr(at(0)),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := card.ComputeProgress(tc.goal, tc.punches)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("progress mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
