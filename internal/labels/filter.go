// Package labels decides which output labels an issue is emitted under.
package labels

import "slices"

const (
	// Unlabeled matches issues without labels. It never reaches a snapshot:
	// OutputLabel turns it into an empty string.
	Unlabeled = "unlabeled"

	// All, as the only include token, fans an issue out to every label it carries.
	All = "all"
)

// Rule is the caller's include/exclude selection. A nil Exclude means absent.
type Rule struct {
	Include []string
	Exclude []string
}

// Resolve returns the labels an issue with labelNames is emitted under.
// excluded is true when any exclude token is attached to the issue; exclusion
// suppresses the whole issue regardless of what Include says.
func Resolve(labelNames []string, rule Rule) (matched []string, excluded bool) {
	for _, token := range rule.Exclude {
		if slices.Contains(labelNames, token) {
			return nil, true
		}
	}

	if len(rule.Include) == 1 && rule.Include[0] == All {
		if len(labelNames) == 0 {
			return []string{Unlabeled}, false
		}
		return slices.Clone(labelNames), false
	}

	for _, token := range rule.Include {
		if slices.Contains(labelNames, token) {
			matched = append(matched, token)
		}
	}

	if len(labelNames) == 0 && slices.Contains(rule.Include, Unlabeled) {
		matched = append(matched, Unlabeled)
	}

	return matched, false
}

// OutputLabel maps a resolved label to the value written in a snapshot row.
func OutputLabel(label string) string {
	if label == Unlabeled {
		return ""
	}
	return label
}
