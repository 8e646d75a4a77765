package core

import (
	"math"
	"testing"
)

func TestCellEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want bool
	}{
		{"missing equals missing", Missing(), Missing(), true},
		{"missing vs empty text", Missing(), Text(""), false},
		{"missing vs zero", Missing(), Number(0), false},
		{"equal numbers", Number(30), Number(30), true},
		{"different numbers", Number(30), Number(25), false},
		{"equal text", Text("Alice"), Text("Alice"), true},
		{"case sensitive text", Text("Alice"), Text("alice"), false},
		{"number vs same-looking text", Number(30), Text("30"), false},
		{"NaN equals NaN", Number(math.NaN()), Number(math.NaN()), true},
		{"NaN vs number", Number(math.NaN()), Number(30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"missing renders empty", Missing(), ""},
		{"integer-valued number has no fraction", Number(30), "30"},
		{"trailing zeros dropped", Number(2.50), "2.5"},
		{"negative", Number(-1.25), "-1.25"},
		{"large number has no exponent", Number(75000), "75000"},
		{"text passes through", Text("New York"), "New York"},
		{"empty text stays empty", Text(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCellCompare(t *testing.T) {
	if got := Number(25).Compare(Number(30)); got >= 0 {
		t.Errorf("Compare(25, 30) = %d, want < 0", got)
	}
	if got := Text("b").Compare(Text("a")); got <= 0 {
		t.Errorf("Compare(b, a) = %d, want > 0", got)
	}
	if got := Number(30).Compare(Number(30)); got != 0 {
		t.Errorf("Compare(30, 30) = %d, want 0", got)
	}
}
