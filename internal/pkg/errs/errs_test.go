//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"engage-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsSeesMarks(t *testing.T) {
	sentinel := errs.New("sentinel")
	inner := errs.New("inner failure")
	marked := errs.Mark(inner, sentinel)

	assert.True(t, errs.Is(marked, sentinel))
	assert.True(t, errs.Is(marked, inner))
	// A mark is not part of the wrap chain, so the standard library
	// cannot match it.
	assert.False(t, errors.Is(marked, sentinel))
}

func TestIsFollowsWrapChain(t *testing.T) {
	sentinel := errs.New("sentinel")
	wrapped := errs.Wrap(sentinel, "context")

	assert.True(t, errs.Is(wrapped, sentinel))
	assert.False(t, errs.Is(wrapped, errs.New("other")))
	assert.False(t, errs.Is(nil, sentinel))
}

func TestMarkNilUsesMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
