// Code generated by ent, DO NOT EDIT.

package tunnel

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tunnel type in the database.
	Label = "tunnel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSubdomain holds the string denoting the subdomain field in the database.
	FieldSubdomain = "subdomain"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldServiceType holds the string denoting the service_type field in the database.
	FieldServiceType = "service_type"
	// FieldProtocol holds the string denoting the protocol field in the database.
	FieldProtocol = "protocol"
	// FieldLocalPort holds the string denoting the local_port field in the database.
	FieldLocalPort = "local_port"
	// FieldRemotePort holds the string denoting the remote_port field in the database.
	FieldRemotePort = "remote_port"
	// FieldConnectionToken holds the string denoting the connection_token field in the database.
	FieldConnectionToken = "connection_token"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldClientConnected holds the string denoting the client_connected field in the database.
	FieldClientConnected = "client_connected"
	// FieldLastConnected holds the string denoting the last_connected field in the database.
	FieldLastConnected = "last_connected"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// Table holds the table name of the tunnel in the database.
	Table = "tunnels"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "tunnels"
	// OwnerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	OwnerInverseTable = "users"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "user_id"
)

// Columns holds all SQL columns for tunnel fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSubdomain,
	FieldRegion,
	FieldServiceType,
	FieldProtocol,
	FieldLocalPort,
	FieldRemotePort,
	FieldConnectionToken,
	FieldStatus,
	FieldClientConnected,
	FieldLastConnected,
	FieldUserID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SubdomainValidator is a validator for the "subdomain" field. It is called by the builders before save.
	SubdomainValidator func(string) error
	// RegionValidator is a validator for the "region" field. It is called by the builders before save.
	RegionValidator func(string) error
	// DefaultServiceType holds the default value on creation for the "service_type" field.
	DefaultServiceType string
	// LocalPortValidator is a validator for the "local_port" field. It is called by the builders before save.
	LocalPortValidator func(int) error
	// ConnectionTokenValidator is a validator for the "connection_token" field. It is called by the builders before save.
	ConnectionTokenValidator func(string) error
	// DefaultClientConnected holds the default value on creation for the "client_connected" field.
	DefaultClientConnected bool
)

// Protocol defines the type for the "protocol" enum field.
type Protocol string

// ProtocolHTTP is the default value of the Protocol enum.
const DefaultProtocol = ProtocolHTTP

// Protocol values.
const (
	ProtocolHTTP Protocol = "http"
	ProtocolTCP  Protocol = "tcp"
	ProtocolUDP  Protocol = "udp"
)

func (pr Protocol) String() string {
	return string(pr)
}

// ProtocolValidator is a validator for the "protocol" field enum values. It is called by the builders before save.
func ProtocolValidator(pr Protocol) error {
	switch pr {
	case ProtocolHTTP, ProtocolTCP, ProtocolUDP:
		return nil
	default:
		return fmt.Errorf("tunnel: invalid enum value for protocol field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusInactive is the default value of the Status enum.
const DefaultStatus = StatusInactive

// Status values.
const (
	StatusInactive Status = "inactive"
	StatusActive   Status = "active"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInactive, StatusActive:
		return nil
	default:
		return fmt.Errorf("tunnel: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Tunnel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubdomain orders the results by the subdomain field.
func BySubdomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubdomain, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByServiceType orders the results by the service_type field.
func ByServiceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceType, opts...).ToFunc()
}

// ByProtocol orders the results by the protocol field.
func ByProtocol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtocol, opts...).ToFunc()
}

// ByLocalPort orders the results by the local_port field.
func ByLocalPort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalPort, opts...).ToFunc()
}

// ByRemotePort orders the results by the remote_port field.
func ByRemotePort(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemotePort, opts...).ToFunc()
}

// ByConnectionToken orders the results by the connection_token field.
func ByConnectionToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConnectionToken, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByClientConnected orders the results by the client_connected field.
func ByClientConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientConnected, opts...).ToFunc()
}

// ByLastConnected orders the results by the last_connected field.
func ByLastConnected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastConnected, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
