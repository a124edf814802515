package extract

import "testing"

func TestResolveAcres(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *float64
	}{
		{
			name: "simple count",
			text: "approximately 640 acres of farmland",
			want: floatPtr(640),
		},
		{
			name: "decimal with separator",
			text: "a parcel of 1,280.5 acres",
			want: floatPtr(1280.5),
		},
		{
			name: "acres keyword first",
			text: "total acres: 320",
			want: floatPtr(320),
		},
		{
			name: "more or less boilerplate",
			text: "640 acres more or less as described herein",
			want: floatPtr(640),
		},
		{
			name: "singular acre",
			text: "one parcel of 1 acre",
			want: floatPtr(1),
		},
		{
			name: "no acreage language",
			text: "the premises described in exhibit a",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveAcres(Normalize(tt.text))
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("resolveAcres() = %v, want %v", fderef(got), fderef(tt.want))
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }

func fderef(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
