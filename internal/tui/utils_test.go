package tui

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		max    int
		expect string
	}{
		{
			name:   "no truncation needed",
			s:      "hello",
			max:    10,
			expect: "hello",
		},
		{
			name:   "exact length",
			s:      "hello",
			max:    5,
			expect: "hello",
		},
		{
			name:   "truncation with ellipsis",
			s:      "hello world",
			max:    8,
			expect: "hello w…",
		},
		{
			name:   "zero width",
			s:      "hello",
			max:    0,
			expect: "",
		},
		{
			name:   "empty string",
			s:      "",
			max:    10,
			expect: "",
		},
		{
			name:   "wide runes count double",
			s:      "日本語",
			max:    5,
			expect: "日本…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.s, tt.max)
			if got != tt.expect {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.expect)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left corner", 0, 4, true},
		{"bottom right corner", 9, 6, true},
		{"right of box", 10, 5, false},
		{"above box", 3, 3, false},
		{"below box", 3, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inBounds(tt.x, tt.y, 0, 4, 10, 3); got != tt.want {
				t.Errorf("inBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
