package customer

import "strings"

// ContactKey is the identity used to deduplicate customers: the trimmed phone,
// or the trimmed lower-cased email when there is no phone. Empty means no identity.
func ContactKey(phone, email string) string {
	if p := strings.TrimSpace(phone); p != "" {
		return p
	}
	return strings.ToLower(strings.TrimSpace(email))
}
