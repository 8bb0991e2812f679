// Package email holds the address shape rules shared by validators.
package email

import "strings"

// IsValid reports whether the address matches local@domain.tld: a non-empty
// local part, a single @, and a domain of at least two non-empty labels. This
// is a shape check, not a deliverability check.
func IsValid(address string) bool {
	at := strings.Index(address, "@")
	if at <= 0 || at != strings.LastIndex(address, "@") {
		return false
	}

	labels := strings.Split(address[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	return true
}
