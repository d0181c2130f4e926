package models

import "testing"

func TestIsValidDistributionTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{from: DistributionStatusPending, to: DistributionStatusProcessing, want: true},
		{from: DistributionStatusProcessing, to: DistributionStatusTranscoding, want: true},
		{from: DistributionStatusTranscoding, to: DistributionStatusSubmitted, want: true},
		{from: DistributionStatusSubmitted, to: DistributionStatusActive, want: true},
		// No skipping ahead.
		{from: DistributionStatusPending, to: DistributionStatusTranscoding, want: false},
		{from: DistributionStatusPending, to: DistributionStatusActive, want: false},
		// No moving backwards.
		{from: DistributionStatusActive, to: DistributionStatusSubmitted, want: false},
		{from: DistributionStatusProcessing, to: DistributionStatusPending, want: false},
		// Rejection is allowed anywhere before active.
		{from: DistributionStatusPending, to: DistributionStatusRejected, want: true},
		{from: DistributionStatusSubmitted, to: DistributionStatusRejected, want: true},
		{from: DistributionStatusActive, to: DistributionStatusRejected, want: false},
		{from: DistributionStatusRejected, to: DistributionStatusRejected, want: false},
		// Terminal and unknown states go nowhere.
		{from: DistributionStatusRejected, to: DistributionStatusActive, want: false},
		{from: "bogus", to: DistributionStatusProcessing, want: false},
		{from: DistributionStatusPending, to: "bogus", want: false},
	}

	for _, tt := range tests {
		if got := IsValidDistributionTransition(tt.from, tt.to); got != tt.want {
			t.Fatalf("IsValidDistributionTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
