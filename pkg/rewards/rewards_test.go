package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"zero", 0, 0},
		{"one hundredth", 0.01, 10},
		{"one tenth", 0.1, 100},
		{"one sol", 1.0, 1000},
		{"two and a half", 2.5, 2500},
		{"smallest whole point", 0.001, 1},
		{"below one point rounds down", 0.0005, 0},
		{"fraction rounds down", 1.2345, 1234},
		{"odd fraction", 0.29, 290},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Points(tt.amount))
		})
	}
}

func TestPoints_NegativeAmount(t *testing.T) {
	// Negative amounts are rejected by request validation upstream, but the
	// policy itself never awards negative points.
	assert.Equal(t, int64(0), Points(-1))
}

func TestWelcomeBonus(t *testing.T) {
	assert.Equal(t, int64(50), int64(WelcomeBonus))
}
