package subscription

import "testing"

func TestPlanDurationMonths(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{name: "Basic", want: 3},
		{name: "Basic (3 months)", want: 3},
		{name: "Starter 6 months", want: 6},
		{name: "Premium", want: 12},
		{name: "Professional 1 year", want: 12},
		{name: "PREMIUM", want: 12},
		// The explicit term wins over the tier name.
		{name: "Premium 6 months", want: 6},
		{name: "", want: 3},
		{name: "Unknown plan", want: 3},
	}

	for _, tt := range tests {
		if got := PlanDurationMonths(tt.name); got != tt.want {
			t.Fatalf("PlanDurationMonths(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
