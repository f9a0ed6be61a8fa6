package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRange_DefaultBounds(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		ok    bool
	}{
		{"zero", 0, true},
		{"max int32 boundary", math.MaxInt32, true},
		{"min int32 boundary", math.MinInt32, true},
		{"above max int32", math.MaxInt32 + 1, false},
		{"below min int32", math.MinInt32 - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := CheckRange(tt.value, nil, nil)
			assert.Equal(t, tt.ok, outcome.OK)
			if !tt.ok {
				assert.NotEmpty(t, outcome.Message)
			}
		})
	}
}

func TestCheckRange_Underflow(t *testing.T) {
	outcome := CheckRange(0, Int64Ptr(1), nil)

	require.False(t, outcome.OK)
	assert.Contains(t, outcome.Message, "underflow")
	assert.Contains(t, outcome.Message, "below minimum")
}

func TestCheckRange_Overflow(t *testing.T) {
	outcome := CheckRange(101, Int64Ptr(1), Int64Ptr(100))

	require.False(t, outcome.OK)
	assert.Contains(t, outcome.Message, "overflow")
	assert.Contains(t, outcome.Message, "exceeds maximum")
}

func TestCheckRange_InclusiveBounds(t *testing.T) {
	assert.True(t, CheckRange(1, Int64Ptr(1), Int64Ptr(100)).OK)
	assert.True(t, CheckRange(100, Int64Ptr(1), Int64Ptr(100)).OK)
}
