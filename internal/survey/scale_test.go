package survey

import "testing"

func TestApplySGS(t *testing.T) {
	tests := []struct {
		name   string
		raw    float64
		factor float64
		want   float64
	}{
		{"zero factor is identity", 10, 0, 10},
		{"negative factor divides", 10, -2, 5},
		{"positive factor multiplies", 10, 2, 20},
		{"negative fractional divisor", 150, -100, 1.5},
		{"zero raw", 0, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplySGS(tt.raw, tt.factor); got != tt.want {
				t.Errorf("ApplySGS(%v, %v) = %v, want %v", tt.raw, tt.factor, got, tt.want)
			}
		})
	}
}

func TestEffectiveSGS(t *testing.T) {
	if got := (&HeaderTable{SGS: 0}).EffectiveSGS(); got != 1.0 {
		t.Errorf("EffectiveSGS() with zero scalar = %v, want 1.0", got)
	}
	if got := (&HeaderTable{SGS: -100}).EffectiveSGS(); got != -100 {
		t.Errorf("EffectiveSGS() = %v, want -100", got)
	}
}
