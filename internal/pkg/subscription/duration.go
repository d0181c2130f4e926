package subscription

import "strings"

// PlanDurationMonths maps a plan's display name to its distribution term.
// Plans mentioning "6 months" run six months, "1 year" or the Premium tier
// run twelve, and everything else gets the three-month base term.
func PlanDurationMonths(planName string) int {
	name := strings.ToLower(planName)
	switch {
	case strings.Contains(name, "6 months"):
		return 6
	case strings.Contains(name, "1 year"), strings.Contains(name, "premium"):
		return 12
	default:
		return 3
	}
}
