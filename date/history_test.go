package date

import "testing"

func TestHistory_AppendKeepsChronologicalOrder(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("15/03/2025"), 3)
	h.Append(MustParse("01/01/2025"), 1)
	h.Append(MustParse("20/01/2025"), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() order = %v, want %v", got, want)
		}
	}
}

func TestHistory_AppendOverwritesSameDay(t *testing.T) {
	var h History[string]
	day := MustParse("01/01/2025")
	h.Append(day, "first").Append(day, "second")

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(day); !ok || v != "second" {
		t.Errorf("Get() = %q, %v; want %q", v, ok, "second")
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(MustParse("10/01/2025"), 100)
	h.Append(MustParse("10/02/2025"), 200)

	testCases := []struct {
		name   string
		day    string
		want   float64
		wantOk bool
	}{
		{name: "before first point", day: "01/01/2025", wantOk: false},
		{name: "exact match", day: "10/01/2025", want: 100, wantOk: true},
		{name: "between points", day: "20/01/2025", want: 100, wantOk: true},
		{name: "after last point", day: "01/03/2025", want: 200, wantOk: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(MustParse(tc.day))
			if ok != tc.wantOk {
				t.Fatalf("ValueAsOf(%s) ok = %v, want %v", tc.day, ok, tc.wantOk)
			}
			if ok && got != tc.want {
				t.Errorf("ValueAsOf(%s) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestHistory_Latest(t *testing.T) {
	var h History[float64]
	if day, _ := h.Latest(); !day.IsZero() {
		t.Errorf("Latest() on empty history should return zero date, got %v", day)
	}
	h.Append(MustParse("10/01/2025"), 1)
	h.Append(MustParse("05/01/2025"), 2)
	day, v := h.Latest()
	if day != MustParse("10/01/2025") || v != 1 {
		t.Errorf("Latest() = %v, %v", day, v)
	}
}
