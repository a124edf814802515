package extract

import "testing"

func TestResolveRent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{
			name: "annual rental payment heading",
			text: "annual rental payment: $50,000 due each year",
			want: intPtr(50000),
		},
		{
			name: "rent per year",
			text: "the rent shall be $12,500 payable per year",
			want: intPtr(12500),
		},
		{
			name: "sum of",
			text: "lessee agrees to the sum of $8,000 annually",
			want: intPtr(8000),
		},
		{
			name: "trailing dollars word",
			text: "pay 30,000 dollars as the annual fee",
			want: intPtr(30000),
		},
		{
			name: "below range rejected",
			text: "annual rental payment: $500",
			want: nil,
		},
		{
			name: "above range rejected",
			text: "annual rental payment: $99,000,000",
			want: nil,
		},
		{
			name: "no rent language",
			text: "the parties agree to the covenants herein",
			want: nil,
		},
		{
			name: "out of range then later pattern in range",
			text: "annual rent totals $200 but payment shall not exceed $45,000",
			want: intPtr(45000),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveRent(Normalize(tt.text))
			if !intPtrEq(got, tt.want) {
				t.Errorf("resolveRent() = %v, want %v", deref(got), deref(tt.want))
			}
		})
	}
}

func TestApplyPerAcreOverride(t *testing.T) {
	acres := 640.0
	smallAcres := 10.0
	tests := []struct {
		name  string
		text  string
		rent  *int
		acres *float64
		want  *int
	}{
		{
			name:  "fills missing rent",
			text:  "$15 per acre",
			rent:  nil,
			acres: &acres,
			want:  intPtr(9600),
		},
		{
			name:  "highest of multiple rates wins",
			text:  "$10 per acre in year one and $15 per utilized acre thereafter",
			rent:  nil,
			acres: &acres,
			want:  intPtr(9600),
		},
		{
			name:  "overrides rent too high",
			text:  "$15 per acre",
			rent:  intPtr(50000),
			acres: &acres,
			want:  intPtr(9600),
		},
		{
			name:  "overrides rent too low",
			text:  "$15 per acre",
			rent:  intPtr(2000),
			acres: &acres,
			want:  intPtr(9600),
		},
		{
			name:  "keeps rent within factor of three",
			text:  "$15 per acre",
			rent:  intPtr(12000),
			acres: &acres,
			want:  intPtr(12000),
		},
		{
			name:  "no acres means no override",
			text:  "$15 per acre",
			rent:  intPtr(50000),
			acres: nil,
			want:  intPtr(50000),
		},
		{
			name:  "no rate language keeps rent",
			text:  "640 acres more or less",
			rent:  intPtr(50000),
			acres: &acres,
			want:  intPtr(50000),
		},
		{
			name:  "fractional rate truncates",
			text:  "$12.50 per acre",
			rent:  nil,
			acres: &smallAcres,
			want:  intPtr(125),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyPerAcreOverride(Normalize(tt.text), tt.rent, tt.acres)
			if !intPtrEq(got, tt.want) {
				t.Errorf("applyPerAcreOverride() = %v, want %v", deref(got), deref(tt.want))
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
