// Package skyeng implements driven.VocabularySource for the Skyeng platform.
//
// Authentication is a three step handshake: the login page is scraped for
// its anti-forgery token, the credentials are submitted as a form, and the
// resulting session is exchanged for a bearer token used by every later call.
// The learner's numeric id, resolved from the profile, scopes the paginated
// word set and word listings.
package skyeng
