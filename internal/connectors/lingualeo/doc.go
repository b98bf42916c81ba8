// Package lingualeo implements driven.Dictionary for the Lingualeo platform.
//
// The platform keeps the login in session cookies; the client holds them in
// its own cookie jar. Login sends credentials as query parameters because the
// endpoint only accepts GET. Those parameters are redacted from every error
// and log line, and the default endpoint uses https.
package lingualeo
