package doctext

import "testing"

func TestHeuristicConfidence(t *testing.T) {
	long := "this solar ground lease agreement is made between the lessor and the lessee " +
		"covering approximately 640 acres with annual rent of $50,000 per year for a term " +
		"of twenty-five years commencing on the effective date of this agreement"

	tests := []struct {
		name string
		text string
		min  float32
		max  float32
	}{
		{"empty text stays at base", "", 0.2, 0.2},
		{"plain prose", "nothing about land here", 0.2, 0.2},
		{"dollar amount only", "$50,000", 0.4, 0.4},
		{"tenure word only", "the lease commences", 0.4, 0.4},
		{"acreage only", "approximately 640 acres", 0.35, 0.35},
		{"all artifacts plus length", long, 0.85, 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heuristicConfidence(tt.text)
			if got < tt.min-0.001 || got > tt.max+0.001 {
				t.Errorf("heuristicConfidence = %v, want in [%v, %v]", got, tt.min, tt.max)
			}
		})
	}
}
