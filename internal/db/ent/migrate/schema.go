// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// TunnelsColumns holds the columns for the "tunnels" table.
	TunnelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "subdomain", Type: field.TypeString},
		{Name: "region", Type: field.TypeString},
		{Name: "service_type", Type: field.TypeString, Default: "custom"},
		{Name: "protocol", Type: field.TypeEnum, Enums: []string{"http", "tcp", "udp"}, Default: "http"},
		{Name: "local_port", Type: field.TypeInt},
		{Name: "remote_port", Type: field.TypeInt, Nullable: true},
		{Name: "connection_token", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"inactive", "active"}, Default: "inactive"},
		{Name: "client_connected", Type: field.TypeBool, Default: false},
		{Name: "last_connected", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUint32},
	}
	// TunnelsTable holds the schema information for the "tunnels" table.
	TunnelsTable = &schema.Table{
		Name:       "tunnels",
		Columns:    TunnelsColumns,
		PrimaryKey: []*schema.Column{TunnelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tunnels_users_tunnels",
				Columns:    []*schema.Column{TunnelsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tunnel_subdomain_region",
				Unique:  true,
				Columns: []*schema.Column{TunnelsColumns[3], TunnelsColumns[4]},
			},
			{
				Name:    "tunnel_region_remote_port",
				Unique:  true,
				Columns: []*schema.Column{TunnelsColumns[4], TunnelsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint32, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "api_key", Type: field.TypeString, Unique: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		TunnelsTable,
		UsersTable,
	}
)

func init() {
	TunnelsTable.ForeignKeys[0].RefTable = UsersTable
}
