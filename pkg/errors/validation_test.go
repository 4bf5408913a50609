package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"typical voltage", 48, false},
		{"small", 0.001, false},
		{"zero", 0, true},
		{"negative", -3.7, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("voltage", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("series", 1); err != nil {
		t.Errorf("ValidateCount(1) error = %v", err)
	}
	if err := ValidateCount("series", 0); err == nil {
		t.Error("ValidateCount(0) should fail")
	}
	if err := ValidateCount("parallel", -2); err == nil {
		t.Error("ValidateCount(-2) should fail")
	}
}

func TestValidateCellID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"catalog id", "high_capacity", false},
		{"with digits", "molicel_p42a", false},
		{"single letter", "a", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"upper case", "Balanced", true},
		{"leading underscore", "_balanced", true},
		{"trailing underscore", "balanced_", true},
		{"leading digit", "18650", true},
		{"dash", "high-power", true},
		{"path", "../etc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCellID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCellID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
