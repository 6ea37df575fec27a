package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity. Account management
// itself lives outside this service; the gateway only reads users to resolve
// API keys and to attribute tunnels to their owners.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Uint32("id"),
		field.String("email").Unique(),
		field.String("name").Optional().Default(""),
		field.String("api_key").Unique().Sensitive(),
		field.Bool("is_active").Default(true),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tunnels", Tunnel.Type),
	}
}

// Mixin for the User schema.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Mixin{},
	}
}
