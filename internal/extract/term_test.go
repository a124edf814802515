package extract

import (
	"reflect"
	"sort"
	"testing"
)

func TestTermCandidates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{
			name: "digit form",
			text: "the lease shall run for 25 years",
			want: []int{25},
		},
		{
			name: "word with parenthetical echo",
			text: "a term of twenty (20) years",
			want: []int{20},
		},
		{
			name: "multiple clauses all collected",
			text: "for 10 years with an initial term of 20 years",
			want: []int{10, 10, 20, 20},
		},
		{
			name: "zero ignored",
			text: "for 0 years",
			want: nil,
		},
		{
			name: "no term language",
			text: "the covenants run with the land",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := termCandidates(Normalize(tt.text))
			sort.Ints(got)
			sort.Ints(tt.want)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("termCandidates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTermYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{
			name: "in-range accepted",
			text: "for 25 years",
			want: intPtr(25),
		},
		{
			name: "maximum of in-range candidates",
			text: "for 20 years initially and thereafter for 30 years",
			want: intPtr(30),
		},
		{
			name: "renewal total preferred",
			text: "for 10 years with 2 renewal terms of 10 years",
			want: intPtr(30),
		},
		{
			name: "renewal with no other candidates",
			text: "subject to 3 renewal terms of 5 years",
			want: intPtr(20),
		},
		{
			name: "below range falls back to minimum",
			text: "for 5 years",
			want: intPtr(5),
		},
		{
			name: "fallback capped at fifty",
			text: "for 99 years",
			want: nil,
		},
		{
			name: "out-of-range picks smallest raw",
			text: "for 40 years but never beyond 45 years of term",
			want: intPtr(40),
		},
		{
			name: "nothing matched",
			text: "no duration is stated",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveTermYears(Normalize(tt.text))
			if !intPtrEq(got, tt.want) {
				t.Errorf("resolveTermYears() = %v, want %v", deref(got), deref(tt.want))
			}
		})
	}
}
