package webapi

import (
	"net/url"
	"strings"
)

const redacted = "xxxxx"

// sensitiveParams are query parameters never printed in clear text.
var sensitiveParams = map[string]bool{
	"password":  true,
	"csrftoken": true,
	"token":     true,
}

// RedactURL renders u with sensitive query values masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	changed := false
	for key := range q {
		if sensitiveParams[strings.ToLower(key)] {
			q.Set(key, redacted)
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
