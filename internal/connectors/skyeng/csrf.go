package skyeng

import (
	"io"

	"golang.org/x/net/html"
)

// csrfFieldName is the hidden login form field carrying the anti-forgery token.
const csrfFieldName = "csrfToken"

// extractCSRFToken finds <input type="hidden" name="csrfToken" value="...">
// in the login page. It returns false when no such input has a value.
func extractCSRFToken(r io.Reader) (string, bool) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return "", false
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "input" {
				continue
			}
			var typ, name, value string
			for _, attr := range tok.Attr {
				switch attr.Key {
				case "type":
					typ = attr.Val
				case "name":
					name = attr.Val
				case "value":
					value = attr.Val
				}
			}
			if typ == "hidden" && name == csrfFieldName && value != "" {
				return value, true
			}
		}
	}
}
