package chat

import (
	"github.com/eino-contrib/jsonschema"

	"contract-consult/types"
)

// ReplySchema 由 types.ReplyContent 反射出的输出约束
func ReplySchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
	s := r.Reflect(&types.ReplyContent{})
	s.Version = ""
	return s
}
