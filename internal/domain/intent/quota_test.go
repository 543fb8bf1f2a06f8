//go:build unit

package intent_test

import (
	"testing"

	"engage-api/internal/domain/intent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 { return &v }

func TestAllowance(t *testing.T) {
	cases := []struct {
		name       string
		cap        *int32
		used       int32
		remaining  *int32
		reachedCap bool
	}{
		{name: "nil cap is unlimited", cap: nil, used: 100, remaining: nil, reachedCap: false},
		{name: "zero cap blocks everything", cap: int32Ptr(0), used: 0, remaining: int32Ptr(0), reachedCap: true},
		{name: "under cap", cap: int32Ptr(5), used: 3, remaining: int32Ptr(2), reachedCap: false},
		{name: "at cap", cap: int32Ptr(5), used: 5, remaining: int32Ptr(0), reachedCap: true},
		{name: "over cap clamps remaining", cap: int32Ptr(5), used: 9, remaining: int32Ptr(0), reachedCap: true},
		{name: "negative used counts as zero", cap: int32Ptr(2), used: -4, remaining: int32Ptr(2), reachedCap: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := intent.NewAllowance(tc.cap, tc.used)

			got := a.Remaining()
			if tc.remaining == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.remaining, *got)
			}
			assert.Equal(t, tc.reachedCap, a.ReachedCap())
		})
	}
}
