package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestStockGauge(t *testing.T) {
	withoutColor(t)

	tests := []struct {
		uses, low int
		expected  string
	}{
		{0, 2, "░░░░░░░░░░"},
		{2, 2, "███░░░░░░░"},
		{6, 2, "██████████"},
		{60, 2, "██████████"},
		{1, 0, "██████████"},
		{0, 0, "░░░░░░░░░░"},
		{-5, 2, "░░░░░░░░░░"},
		{-20, 0, "░░░░░░░░░░"},
	}

	for _, tt := range tests {
		if got := stockGauge(tt.uses, tt.low); got != tt.expected {
			t.Errorf("stockGauge(%d, %d) = %q, want %q", tt.uses, tt.low, got, tt.expected)
		}
	}
}

func TestRenderStationsNegativeStock(t *testing.T) {
	s := newTestSession(t)
	run(t, s, "add Cold")
	run(t, s, "stock Cold Beef -20 1")

	out := run(t, s, "stations Cold")
	if !strings.Contains(out, "░░░░░░░░░░ -20 left LOW") {
		t.Errorf("stations output = %q", out)
	}
}

func TestRenderStations(t *testing.T) {
	s := newTestSession(t)
	run(t, s, "add Pass")

	var buf bytes.Buffer
	renderStations(&buf, s.manager.Stations())
	out := buf.String()

	for _, want := range []string{
		"Grill\n  Dishes: Grilled Steak\n  Stock:\n",
		"███░░░░░░░ 2 left LOW",
		"██████████ 10 left\n",
		"Pastry\n  Dishes: Tiramisu\n",
		"Pass\n  Dishes: (none)\n  Stock: (none)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderStations() output missing %q:\n%s", want, out)
		}
	}
}
