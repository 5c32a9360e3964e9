package valueobjects

import (
	"testing"
)

func TestNewPriority_Valid(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		expected Priority
	}{
		{"low", "LOW", PriorityLow},
		{"medium", "MEDIUM", PriorityMedium},
		{"high", "HIGH", PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, err := NewPriority(tt.priority)
			if err != nil {
				t.Errorf("NewPriority(%q) error = %v, want nil", tt.priority, err)
				return
			}
			if priority != tt.expected {
				t.Errorf("NewPriority(%q) = %v, want %v", tt.priority, priority, tt.expected)
			}
		})
	}
}

func TestNewPriority_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		priority string
	}{
		{"empty", ""},
		{"lowercase", "low"},
		{"unknown value", "URGENT"},
		{"mixed case", "High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPriority(tt.priority)
			if err == nil {
				t.Errorf("NewPriority(%q) error = nil, want error", tt.priority)
			}
		})
	}
}

func TestPriority_Predicates(t *testing.T) {
	if !PriorityLow.IsLow() || PriorityLow.IsHigh() {
		t.Error("PriorityLow predicates mismatch")
	}
	if !PriorityMedium.IsMedium() {
		t.Error("PriorityMedium.IsMedium() = false, want true")
	}
	if !PriorityHigh.IsHigh() || PriorityHigh.IsLow() {
		t.Error("PriorityHigh predicates mismatch")
	}
}
