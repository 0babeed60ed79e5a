package labels

import "testing"

func TestFixedWidth(t *testing.T) {
	m := NewFixed()
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"0", 7},
		{"YYYY", 28},
		{"99:99:99", 56},
	}
	for _, tt := range tests {
		if got := m.Width(tt.text); got != tt.want {
			t.Errorf("Width(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
	if h := m.Height(); h != 13 {
		t.Errorf("Height() = %v, want 13", h)
	}
}

func TestShapedWidth(t *testing.T) {
	m, err := NewShaped(DefaultSize)
	if err != nil {
		t.Fatalf("NewShaped() error = %v", err)
	}
	if got := m.Width(""); got != 0 {
		t.Errorf("Width(\"\") = %v, want 0", got)
	}

	one := m.Width("0")
	many := m.Width("0000")
	if one <= 0 {
		t.Fatalf("Width(\"0\") = %v, want > 0", one)
	}
	if many <= one {
		t.Errorf("Width(\"0000\") = %v, want > %v", many, one)
	}

	big, err := NewShaped(2 * DefaultSize)
	if err != nil {
		t.Fatalf("NewShaped() error = %v", err)
	}
	if w := big.Width("0000"); w <= many {
		t.Errorf("doubling the size: width %v, want > %v", w, many)
	}
}

func TestShapedDefaultSize(t *testing.T) {
	m, err := NewShaped(0)
	if err != nil {
		t.Fatalf("NewShaped() error = %v", err)
	}
	if m.Size() != DefaultSize {
		t.Errorf("Size() = %v, want %v", m.Size(), DefaultSize)
	}
}

func TestShapedInvalidFont(t *testing.T) {
	if _, err := NewShapedFromTTF([]byte("not a font"), 10); err == nil {
		t.Error("NewShapedFromTTF() error = nil, want parse error")
	}
}

func TestMeasurerInterface(t *testing.T) {
	var _ Measurer = NewFixed()
	var _ Measurer = (*Shaped)(nil)
	var _ Measurer = (*Cached)(nil)
}

type countingMeasurer struct {
	calls int
}

func (m *countingMeasurer) Width(s string) float64 {
	m.calls++
	return float64(len(s))
}

func TestCachedWidth(t *testing.T) {
	inner := &countingMeasurer{}
	c := NewCached(inner, 2)
	for _, s := range []string{"2024", "2024", "Mar", "2024", "12:00", "Mar"} {
		if got := c.Width(s); got != float64(len(s)) {
			t.Errorf("Width(%q) = %g, want %d", s, got, len(s))
		}
	}
	// "Mar" was evicted by "12:00" and measured again.
	if inner.calls != 4 {
		t.Errorf("inner measurer called %d times, want 4", inner.calls)
	}
	if s := c.Stats(); s.Hits != 2 || s.Evictions != 2 {
		t.Errorf("Stats() = %+v, want 2 hits and 2 evictions", s)
	}
}
