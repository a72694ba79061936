package date

import "testing"

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{in: "day", want: Daily},
		{in: "daily", want: Daily},
		{in: "month", want: Monthly},
		{in: "Monthly", want: Monthly},
		{in: "year", want: Yearly},
		{in: "YEARLY", want: Yearly},
		{in: "week", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParsePeriod(%q) expected an error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePeriod(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRangeIdentifier(t *testing.T) {
	d := MustParse("14/02/2025")

	if got := NewRange(d, Monthly).Identifier(); got != "02/2025" {
		t.Errorf("Monthly identifier = %q", got)
	}
	if got := NewRange(d, Yearly).Identifier(); got != "2025" {
		t.Errorf("Yearly identifier = %q", got)
	}
	if got := NewRange(d, Daily).Identifier(); got != "14/02/2025" {
		t.Errorf("Daily identifier = %q", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("14/02/2025"), Monthly)
	if !r.Contains(MustParse("01/02/2025")) || !r.Contains(MustParse("28/02/2025")) {
		t.Errorf("range %v should contain its boundaries", r)
	}
	if r.Contains(MustParse("31/01/2025")) || r.Contains(MustParse("01/03/2025")) {
		t.Errorf("range %v should not contain neighbors", r)
	}
}
