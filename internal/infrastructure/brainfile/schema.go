package brainfile

import (
	"github.com/invopop/jsonschema"
)

// Schema возвращает JSON Schema файла правил
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(File))
	schema.Title = "evolol Brain rule table"
	schema.Description = "Ordered (state, env) -> (action, next) transitions shared by all agents"
	return schema
}
