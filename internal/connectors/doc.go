// Package connectors groups the platform clients. Each subpackage talks to one
// vocabulary platform over HTTP and implements a driven port:
//
//   - skyeng: driven.VocabularySource (login handshake, word sets, meanings)
//   - lingualeo: driven.Dictionary (login, existence check, add word)
//   - webapi: shared request, schema validation and URL redaction helpers
package connectors
