package validate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositive(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 1.5, false},
		{"tiny", 1e-300, false},
		{"zero", 0, true},
		{"negative", -2, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Positive("x", tt.value)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "x", verr.Field)
		})
	}
}

func TestNonNegative(t *testing.T) {
	assert.NoError(t, NonNegative("rho_g", 0))
	assert.NoError(t, NonNegative("rho_g", 1.2))
	assert.Error(t, NonNegative("rho_g", -0.1))
	assert.Error(t, NonNegative("rho_g", math.Inf(-1)))
}

func TestErrorMessages(t *testing.T) {
	err := Positive("viscosity", 0)
	assert.EqualError(t, err, "invalid viscosity=0: must be positive")

	err = Errorf("sum is %.1f, expected 100", 40.0)
	assert.EqualError(t, err, "invalid input: sum is 40.0, expected 100")
}

func TestFirst(t *testing.T) {
	assert.NoError(t, First(nil, nil))

	err := First(nil, Positive("a", -1), Positive("b", -1))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "a", verr.Field)
}
