package datetime

import (
	"testing"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		dateStr  string
		expected string
	}{
		{
			name:     "Valid date",
			layout:   DateTimeLayout,
			dateStr:  "2025-01",
			expected: "2025-01",
		},
		{
			name:     "Another valid date",
			layout:   DateTimeLayout,
			dateStr:  "2030-12",
			expected: "2030-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(tt.layout, tt.dateStr)
			if result.Format(tt.layout) != tt.expected {
				t.Errorf("MustParseTime() = %s, expected %s", result.Format(tt.layout), tt.expected)
			}
		})
	}
}

func TestMustParseTimePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseTime to panic with invalid date")
		}
	}()

	MustParseTime(DateTimeLayout, "invalid-date")
}

func TestOffsetDateAdvanced(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		layout   string
		months   int
		expected string
		wantErr  bool
	}{
		{
			name:     "Add multiple years",
			date:     "2025-01",
			layout:   DateTimeLayout,
			months:   24,
			expected: "2027-01",
			wantErr:  false,
		},
		{
			name:     "Subtract multiple years",
			date:     "2025-01",
			layout:   DateTimeLayout,
			months:   -24,
			expected: "2023-01",
			wantErr:  false,
		},
		{
			name:     "Cross year boundary forward",
			date:     "2025-06",
			layout:   DateTimeLayout,
			months:   8,
			expected: "2026-02",
			wantErr:  false,
		},
		{
			name:     "Cross year boundary backward",
			date:     "2025-06",
			layout:   DateTimeLayout,
			months:   -8,
			expected: "2024-10",
			wantErr:  false,
		},
		{
			name:     "Zero months",
			date:     "2025-06",
			layout:   DateTimeLayout,
			months:   0,
			expected: "2025-06",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := OffsetDate(tt.date, tt.layout, tt.months)
			if tt.wantErr {
				if err == nil {
					t.Errorf("OffsetDate() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("OffsetDate() error = %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("OffsetDate() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestValidateMonth(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "Valid month", date: "2025-01", wantErr: false},
		{name: "December", date: "2030-12", wantErr: false},
		{name: "Month out of range", date: "2025-13", wantErr: true},
		{name: "Full date", date: "2025-01-15", wantErr: true},
		{name: "Empty", date: "", wantErr: true},
		{name: "Garbage", date: "next-month", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMonth(tt.date)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateMonth(%q) expected error but got none", tt.date)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateMonth(%q) error = %v", tt.date, err)
			}
		})
	}
}

func TestMonthSequence(t *testing.T) {
	labels, err := MonthSequence("2025-11", 4)
	if err != nil {
		t.Fatalf("MonthSequence() error = %v", err)
	}

	expected := []string{"2025-11", "2025-12", "2026-01", "2026-02"}
	if len(labels) != len(expected) {
		t.Fatalf("MonthSequence() returned %d labels, expected %d", len(labels), len(expected))
	}
	for i := range expected {
		if labels[i] != expected[i] {
			t.Errorf("label %d = %s, expected %s", i, labels[i], expected[i])
		}
	}
}

func TestMonthSequenceEdgeCases(t *testing.T) {
	labels, err := MonthSequence("2025-01", 0)
	if err != nil {
		t.Fatalf("MonthSequence() error = %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("expected no labels for zero count, got %v", labels)
	}

	if _, err := MonthSequence("January", 3); err == nil {
		t.Errorf("expected error for invalid start month")
	}
}

func TestDateTimeLayoutConstant(t *testing.T) {
	// Test that our constant matches the format expected
	testDate := "2025-06"
	parsedTime := MustParseTime(DateTimeLayout, testDate)

	if parsedTime.Format(DateTimeLayout) != testDate {
		t.Errorf("DateTimeLayout constant doesn't work correctly for parsing/formatting")
	}
}

func TestTimeOperations(t *testing.T) {
	// Test various time operations work correctly with our layout
	baseDate := "2025-01"

	// Test forward operations
	future, err := OffsetDate(baseDate, DateTimeLayout, 6)
	if err != nil {
		t.Fatalf("OffsetDate forward failed: %v", err)
	}

	// Test backward operations
	past, err := OffsetDate(future, DateTimeLayout, -6)
	if err != nil {
		t.Fatalf("OffsetDate backward failed: %v", err)
	}

	if past != baseDate {
		t.Errorf("Round trip date operation failed: started with %s, ended with %s", baseDate, past)
	}
}
