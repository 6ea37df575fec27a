package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tunnel holds the schema definition for the Tunnel entity.
type Tunnel struct {
	ent.Schema
}

// Fields of the Tunnel.
func (Tunnel) Fields() []ent.Field {
	return []ent.Field{
		field.String("subdomain").
			NotEmpty(),
		field.String("region").
			NotEmpty(),
		field.String("service_type").
			Default("custom"),
		field.Enum("protocol").
			Values("http", "tcp", "udp").
			Default("http"),
		// Advisory: the client decides what it actually dials.
		field.Int("local_port").
			Positive(),
		// Null exactly when protocol = http.
		field.Int("remote_port").
			Optional().
			Nillable(),
		field.String("connection_token").
			NotEmpty().
			Unique().
			Sensitive(),
		field.Enum("status").
			Values("inactive", "active").
			Default("inactive"),
		field.Bool("client_connected").
			Default(false),
		field.Time("last_connected").
			Optional().
			Nillable(),
		field.Uint32("user_id"),
	}
}

// Edges of the Tunnel.
func (Tunnel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("tunnels").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Tunnel.
func (Tunnel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subdomain", "region").
			Unique(),
		// Postgres treats NULLs as distinct, so http tunnels never collide here.
		index.Fields("region", "remote_port").
			Unique(),
	}
}

// Mixin of the Tunnel.
func (Tunnel) Mixin() []ent.Mixin {
	return []ent.Mixin{
		Mixin{},
	}
}
