package skyeng

import (
	"fmt"

	"github.com/custodia-labs/vocabsync/internal/connectors/webapi"
)

// pageSchema wraps an item schema in the {meta:{lastPage}, data:[...]} envelope.
func pageSchema(item string) string {
	return fmt.Sprintf(`{
		"type": "object",
		"required": ["meta", "data"],
		"properties": {
			"meta": {
				"type": "object",
				"required": ["lastPage"],
				"properties": {
					"total": {"type": "integer"},
					"lastPage": {"type": "integer"},
					"pageSize": {"type": "integer"}
				}
			},
			"data": {"type": "array", "items": %s}
		}
	}`, item)
}

var (
	loginSubmitSchema = webapi.MustCompileSchema("skyeng-login-submit", `{
		"type": "object",
		"required": ["success"],
		"properties": {"success": {"type": "boolean"}}
	}`)

	tokenSchema = webapi.MustCompileSchema("skyeng-auth-token", `{
		"type": "object",
		"required": ["token"],
		"properties": {"token": {"type": "string", "minLength": 1}}
	}`)

	userInfoSchema = webapi.MustCompileSchema("skyeng-user-info", `{
		"type": "object",
		"required": ["profile"],
		"properties": {
			"profile": {
				"type": "object",
				"required": ["userId"],
				"properties": {"userId": {"type": "integer"}}
			}
		}
	}`)

	wordSetsSchema = webapi.MustCompileSchema("skyeng-word-sets", pageSchema(`{
		"type": "object",
		"required": ["id", "title"],
		"properties": {
			"id": {"type": "integer"},
			"title": {"type": "string"}
		}
	}`))

	wordsSchema = webapi.MustCompileSchema("skyeng-words", pageSchema(`{
		"type": "object",
		"required": ["id", "meaningId"],
		"properties": {
			"id": {"type": "integer"},
			"meaningId": {"type": "integer"}
		}
	}`))

	meaningsSchema = webapi.MustCompileSchema("skyeng-meanings", `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["id", "text", "translation"],
			"properties": {
				"id": {"type": ["integer", "string"]},
				"text": {"type": "string"},
				"translation": {
					"type": "object",
					"required": ["text"],
					"properties": {"text": {"type": "string"}}
				}
			}
		}
	}`)
)
