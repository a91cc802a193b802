package constant

import "strings"

type Urgency string

const (
	UrgencyCritical Urgency = "CRITICAL"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyLow      Urgency = "LOW"
)

func ParseUrgency(s string) (Urgency, bool) {
	switch Urgency(strings.ToUpper(strings.TrimSpace(s))) {
	case UrgencyCritical:
		return UrgencyCritical, true
	case UrgencyHigh:
		return UrgencyHigh, true
	case UrgencyMedium:
		return UrgencyMedium, true
	case UrgencyLow:
		return UrgencyLow, true
	}
	return "", false
}
