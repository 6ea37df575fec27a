// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/db/ent/user"
)

// Tunnel is the model entity for the Tunnel schema.
type Tunnel struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Subdomain holds the value of the "subdomain" field.
	Subdomain string `json:"subdomain,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// ServiceType holds the value of the "service_type" field.
	ServiceType string `json:"service_type,omitempty"`
	// Protocol holds the value of the "protocol" field.
	Protocol tunnel.Protocol `json:"protocol,omitempty"`
	// LocalPort holds the value of the "local_port" field.
	LocalPort int `json:"local_port,omitempty"`
	// RemotePort holds the value of the "remote_port" field.
	RemotePort *int `json:"remote_port,omitempty"`
	// ConnectionToken holds the value of the "connection_token" field.
	ConnectionToken string `json:"-"`
	// Status holds the value of the "status" field.
	Status tunnel.Status `json:"status,omitempty"`
	// ClientConnected holds the value of the "client_connected" field.
	ClientConnected bool `json:"client_connected,omitempty"`
	// LastConnected holds the value of the "last_connected" field.
	LastConnected *time.Time `json:"last_connected,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uint32 `json:"user_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TunnelQuery when eager-loading is set.
	Edges        TunnelEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TunnelEdges holds the relations/edges for other nodes in the graph.
type TunnelEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TunnelEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tunnel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tunnel.FieldClientConnected:
			values[i] = new(sql.NullBool)
		case tunnel.FieldID, tunnel.FieldLocalPort, tunnel.FieldRemotePort, tunnel.FieldUserID:
			values[i] = new(sql.NullInt64)
		case tunnel.FieldSubdomain, tunnel.FieldRegion, tunnel.FieldServiceType, tunnel.FieldProtocol, tunnel.FieldConnectionToken, tunnel.FieldStatus:
			values[i] = new(sql.NullString)
		case tunnel.FieldCreatedAt, tunnel.FieldUpdatedAt, tunnel.FieldLastConnected:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tunnel fields.
func (t *Tunnel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tunnel.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			t.ID = int(value.Int64)
		case tunnel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				t.CreatedAt = value.Time
			}
		case tunnel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				t.UpdatedAt = value.Time
			}
		case tunnel.FieldSubdomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subdomain", values[i])
			} else if value.Valid {
				t.Subdomain = value.String
			}
		case tunnel.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				t.Region = value.String
			}
		case tunnel.FieldServiceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_type", values[i])
			} else if value.Valid {
				t.ServiceType = value.String
			}
		case tunnel.FieldProtocol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field protocol", values[i])
			} else if value.Valid {
				t.Protocol = tunnel.Protocol(value.String)
			}
		case tunnel.FieldLocalPort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field local_port", values[i])
			} else if value.Valid {
				t.LocalPort = int(value.Int64)
			}
		case tunnel.FieldRemotePort:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remote_port", values[i])
			} else if value.Valid {
				t.RemotePort = new(int)
				*t.RemotePort = int(value.Int64)
			}
		case tunnel.FieldConnectionToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connection_token", values[i])
			} else if value.Valid {
				t.ConnectionToken = value.String
			}
		case tunnel.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				t.Status = tunnel.Status(value.String)
			}
		case tunnel.FieldClientConnected:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field client_connected", values[i])
			} else if value.Valid {
				t.ClientConnected = value.Bool
			}
		case tunnel.FieldLastConnected:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_connected", values[i])
			} else if value.Valid {
				t.LastConnected = new(time.Time)
				*t.LastConnected = value.Time
			}
		case tunnel.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				t.UserID = uint32(value.Int64)
			}
		default:
			t.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tunnel.
// This includes values selected through modifiers, order, etc.
func (t *Tunnel) Value(name string) (ent.Value, error) {
	return t.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Tunnel entity.
func (t *Tunnel) QueryOwner() *UserQuery {
	return NewTunnelClient(t.config).QueryOwner(t)
}

// Update returns a builder for updating this Tunnel.
// Note that you need to call Tunnel.Unwrap() before calling this method if this Tunnel
// was returned from a transaction, and the transaction was committed or rolled back.
func (t *Tunnel) Update() *TunnelUpdateOne {
	return NewTunnelClient(t.config).UpdateOne(t)
}

// Unwrap unwraps the Tunnel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (t *Tunnel) Unwrap() *Tunnel {
	_tx, ok := t.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tunnel is not a transactional entity")
	}
	t.config.driver = _tx.drv
	return t
}

// String implements the fmt.Stringer.
func (t *Tunnel) String() string {
	var builder strings.Builder
	builder.WriteString("Tunnel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", t.ID))
	builder.WriteString("created_at=")
	builder.WriteString(t.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(t.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subdomain=")
	builder.WriteString(t.Subdomain)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(t.Region)
	builder.WriteString(", ")
	builder.WriteString("service_type=")
	builder.WriteString(t.ServiceType)
	builder.WriteString(", ")
	builder.WriteString("protocol=")
	builder.WriteString(fmt.Sprintf("%v", t.Protocol))
	builder.WriteString(", ")
	builder.WriteString("local_port=")
	builder.WriteString(fmt.Sprintf("%v", t.LocalPort))
	builder.WriteString(", ")
	if v := t.RemotePort; v != nil {
		builder.WriteString("remote_port=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("connection_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", t.Status))
	builder.WriteString(", ")
	builder.WriteString("client_connected=")
	builder.WriteString(fmt.Sprintf("%v", t.ClientConnected))
	builder.WriteString(", ")
	if v := t.LastConnected; v != nil {
		builder.WriteString("last_connected=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", t.UserID))
	builder.WriteByte(')')
	return builder.String()
}

// Tunnels is a parsable slice of Tunnel.
type Tunnels []*Tunnel
