package validate

import (
	"fmt"
	"math"
)

// Default bounds applied by [CheckRange] when the caller supplies no bounds.
// Pinned to the signed 32-bit range so behavior does not depend on the
// platform's native integer width.
const (
	MinIntValue = math.MinInt32
	MaxIntValue = math.MaxInt32
)

// CheckRange verifies that value lies within [minValue, maxValue], both
// bounds inclusive. Nil bounds fall back to the signed 32-bit defaults.
func CheckRange(value int64, minValue, maxValue *int64) Outcome {
	minVal := int64(MinIntValue)
	if minValue != nil {
		minVal = *minValue
	}
	maxVal := int64(MaxIntValue)
	if maxValue != nil {
		maxVal = *maxValue
	}

	if value < minVal {
		return Reject(fmt.Sprintf("integer value %d is below minimum %d (underflow)", value, minVal))
	}
	if value > maxVal {
		return Reject(fmt.Sprintf("integer value %d exceeds maximum %d (overflow)", value, maxVal))
	}

	return Accept()
}

// Int64Ptr returns a pointer to v. Convenience for CheckRange call sites.
func Int64Ptr(v int64) *int64 {
	return &v
}
