package clockmin_test

import (
	"testing"

	"pawpal-planner/pkg/clockmin"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{
			name:  "Clock string morning",
			value: "08:30",
			want:  510,
		},
		{
			name:  "Clock string midnight",
			value: "00:00",
			want:  0,
		},
		{
			name:  "Clock string end of day",
			value: "24:00",
			want:  1440,
		},
		{
			name:  "Plain minutes",
			value: "510",
			want:  510,
		},
		{
			name:  "Plain minutes with whitespace",
			value: " 1320 ",
			want:  1320,
		},
		{
			name:    "Minutes past end of day",
			value:   "1441",
			wantErr: true,
		},
		{
			name:    "Negative minutes",
			value:   "-5",
			wantErr: true,
		},
		{
			name:    "Clock past end of day",
			value:   "24:01",
			wantErr: true,
		},
		{
			name:    "Minutes component out of range",
			value:   "10:75",
			wantErr: true,
		},
		{
			name:    "Garbage",
			value:   "soon",
			wantErr: true,
		},
		{
			name:    "Empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clockmin.Parse(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %d", tt.value, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{510, "08:30"},
		{1320, "22:00"},
		{59, "00:59"},
	}

	for _, tt := range tests {
		if got := clockmin.Format(tt.minutes); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
