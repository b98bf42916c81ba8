// Package webapi holds the request plumbing shared by the platform connectors:
// a single-attempt HTTP call that enforces a 200 status, validates the body
// against a compiled JSON schema and decodes it into a typed record.
//
// Failures surface as domain.TransportError and domain.ValidationError.
// Sensitive query parameters are redacted from every URL that reaches an
// error or a log line.
package webapi
