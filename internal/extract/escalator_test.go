package extract

import "testing"

func TestResolveEscalator(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "escalator keyword before percentage",
			text: "rent shall escalate by 2% each year",
			want: 0.02,
		},
		{
			name: "percentage before escalator keyword",
			text: "a 1.5% annual escalation applies",
			want: 0.015,
		},
		{
			name: "increase with per year",
			text: "rent will increase by 3% per year",
			want: 0.03,
		},
		{
			name: "percent word form",
			text: "2.5 percent per year rent increase",
			want: 0.025,
		},
		{
			name: "below range ignored",
			text: "escalating 0.1% annually",
			want: 0.0,
		},
		{
			name: "above range ignored",
			text: "escalating 12% annually",
			want: 0.0,
		},
		{
			name: "no escalator language",
			text: "rent is fixed for the entire term",
			want: 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEscalator(Normalize(tt.text)); got != tt.want {
				t.Errorf("resolveEscalator() = %v, want %v", got, tt.want)
			}
		})
	}
}
