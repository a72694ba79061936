package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "canonical", in: "15/01/2025", want: New(2025, time.January, 15)},
		{name: "single digit day and month", in: "5/1/2025", want: New(2025, time.January, 5)},
		{name: "iso form rejected", in: "2025-01-15", wantErr: true},
		{name: "garbage", in: "not a date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected an error, got %v", tc.in, got)
				}
				if !got.IsZero() {
					t.Errorf("Parse(%q) on error must return the zero sentinel, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	d := New(2025, time.July, 3)
	if got := d.String(); got != "03/07/2025" {
		t.Fatalf("String() = %q, want %q", got, "03/07/2025")
	}
	back, err := Parse(d.String())
	if err != nil {
		t.Fatalf("Parse(String()) error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestStartOfEndOf(t *testing.T) {
	d := New(2025, time.February, 14)

	if got := d.StartOf(Monthly); got != New(2025, time.February, 1) {
		t.Errorf("StartOf(Monthly) = %v", got)
	}
	if got := d.EndOf(Monthly); got != New(2025, time.February, 28) {
		t.Errorf("EndOf(Monthly) = %v", got)
	}
	if got := d.StartOf(Yearly); got != New(2025, time.January, 1) {
		t.Errorf("StartOf(Yearly) = %v", got)
	}
	if got := d.EndOf(Yearly); got != New(2025, time.December, 31) {
		t.Errorf("EndOf(Yearly) = %v", got)
	}
	if got := d.StartOf(Daily); got != d {
		t.Errorf("StartOf(Daily) = %v", got)
	}

	// Leap year February.
	if got := New(2024, time.February, 10).EndOf(Monthly); got != New(2024, time.February, 29) {
		t.Errorf("EndOf(Monthly) leap year = %v", got)
	}
}

func TestSameMonth(t *testing.T) {
	a := New(2025, time.March, 1)
	b := New(2025, time.March, 31)
	c := New(2025, time.April, 1)
	if !a.SameMonth(b) {
		t.Errorf("%v and %v should be the same month", a, b)
	}
	if b.SameMonth(c) {
		t.Errorf("%v and %v should not be the same month", b, c)
	}
}
