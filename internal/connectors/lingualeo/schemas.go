package lingualeo

import "github.com/custodia-labs/vocabsync/internal/connectors/webapi"

var (
	// loginSchema only requires an object body. A rejected login sends a
	// null user or an unusable user_id; Authenticate reports those as auth errors.
	loginSchema = webapi.MustCompileSchema("lingualeo-login", `{
		"type": "object",
		"properties": {
			"error_msg": {"type": ["string", "null"]},
			"user": {"type": ["object", "null"]}
		}
	}`)

	// translatesSchema requires the flags only when status is "ok";
	// other statuses are reported as platform errors.
	translatesSchema = webapi.MustCompileSchema("lingualeo-translates", `{
		"type": "object",
		"required": ["status"],
		"properties": {
			"status": {"type": "string"},
			"is_user": {"type": "integer"},
			"translate": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {"is_user": {"type": ["integer", "null"]}}
				}
			}
		},
		"if": {"properties": {"status": {"const": "ok"}}},
		"then": {"required": ["is_user", "translate"]}
	}`)

	addWordSchema = webapi.MustCompileSchema("lingualeo-add-word", `{
		"type": "object",
		"properties": {"error_msg": {"type": "string"}}
	}`)
)
