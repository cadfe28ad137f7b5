package optimization

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  NewError(KindInvalidRange, "bad bounds"),
			want: "bad bounds",
		},
		{
			name: "component and operation",
			err:  NewError(KindInvalidTolerance, "bad eps").WithComponent("piyavsky").WithOperation("New"),
			want: "piyavsky: New: bad eps",
		},
		{
			name: "component only",
			err:  NewError(KindUnknown, "boom").WithComponent("lipschitz"),
			want: "lipschitz: boom",
		},
		{
			name: "wrapped cause",
			err:  WrapError(errors.New("cause"), KindUnknown, "outer"),
			want: "outer: cause",
		},
		{
			name: "formatted message",
			err:  NewErrorf(KindInvalidSampleCount, "got %d samples", 1),
			want: "got 1 samples",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid range", KindInvalidRange.String())
	assert.Equal(t, "invalid tolerance", KindInvalidTolerance.String())
	assert.Equal(t, "invalid sample count", KindInvalidSampleCount.String())
	assert.Equal(t, "invalid iteration bound", KindInvalidIterationBound.String())
	assert.Equal(t, "degenerate interval", KindDegenerateInterval.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := NewError(KindInvalidRange, "bad bounds")
	wrapped := fmt.Errorf("starting run: %w", base)

	assert.True(t, IsKind(wrapped, KindInvalidRange))
	assert.False(t, IsKind(wrapped, KindInvalidTolerance))
	assert.False(t, IsKind(errors.New("plain"), KindInvalidRange))
	assert.False(t, IsKind(nil, KindInvalidRange))
}

func TestErrorsIsMatchesOnKind(t *testing.T) {
	err := NewError(KindDegenerateInterval, "zero width").WithComponent("lipschitz")

	assert.True(t, errors.Is(err, NewError(KindDegenerateInterval, "")))
	assert.False(t, errors.Is(err, NewError(KindInvalidRange, "")))
}

func TestAsError(t *testing.T) {
	base := NewError(KindInvalidIterationBound, "negative cap")

	e, ok := AsError(fmt.Errorf("wrap: %w", base))
	require.True(t, ok)
	assert.Equal(t, KindInvalidIterationBound, e.Kind)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	wrapped := WrapError(cause, KindUnknown, "outer")

	assert.Same(t, cause, errors.Unwrap(wrapped))
	assert.Nil(t, WrapError(nil, KindUnknown, "ignored"))
}
