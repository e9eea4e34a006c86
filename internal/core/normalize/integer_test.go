package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerFromInt64(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		high     int32
		low      int32
		lowBits  int64
		toNumber int64
	}{
		{"zero", 0, 0, 0, 0, 0},
		{"small", 21000, 0, 21000, 21000, 21000},
		{"max int32", math.MaxInt32, 0, math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{"2^31 wraps negative", 1 << 31, 0, math.MinInt32, math.MinInt32, 1 << 31},
		{"2^32 loses everything", 1 << 32, 1, 0, 0, 1 << 32},
		{"gwei price", 30_000_000_000, 6, -64771072, -64771072, 30_000_000_000},
		{"negative one", -1, -1, -1, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := IntegerFromInt64(tt.value)
			assert.Equal(t, tt.high, i.High)
			assert.Equal(t, tt.low, i.Low)
			assert.Equal(t, tt.lowBits, i.LowBits())
			assert.Equal(t, tt.toNumber, i.ToNumber())
		})
	}
}

func TestInteger_RoundTripsFullRange(t *testing.T) {
	for _, v := range []int64{math.MaxInt64, math.MinInt64, 1<<53 + 1, -(1 << 40)} {
		assert.Equal(t, v, IntegerFromInt64(v).ToNumber())
	}
}
