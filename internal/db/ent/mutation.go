// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tunlify/tunlify/internal/db/ent/predicate"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/db/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeTunnel = "Tunnel"
	TypeUser   = "User"
)

// TunnelMutation represents an operation that mutates the Tunnel nodes in the graph.
type TunnelMutation struct {
	config
	op               Op
	typ              string
	id               *int
	created_at       *time.Time
	updated_at       *time.Time
	subdomain        *string
	region           *string
	service_type     *string
	protocol         *tunnel.Protocol
	local_port       *int
	addlocal_port    *int
	remote_port      *int
	addremote_port   *int
	connection_token *string
	status           *tunnel.Status
	client_connected *bool
	last_connected   *time.Time
	clearedFields    map[string]struct{}
	owner            *uint32
	clearedowner     bool
	done             bool
	oldValue         func(context.Context) (*Tunnel, error)
	predicates       []predicate.Tunnel
}

var _ ent.Mutation = (*TunnelMutation)(nil)

// tunnelOption allows management of the mutation configuration using functional options.
type tunnelOption func(*TunnelMutation)

// newTunnelMutation creates new mutation for the Tunnel entity.
func newTunnelMutation(c config, op Op, opts ...tunnelOption) *TunnelMutation {
	m := &TunnelMutation{
		config:        c,
		op:            op,
		typ:           TypeTunnel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTunnelID sets the ID field of the mutation.
func withTunnelID(id int) tunnelOption {
	return func(m *TunnelMutation) {
		var (
			err   error
			once  sync.Once
			value *Tunnel
		)
		m.oldValue = func(ctx context.Context) (*Tunnel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tunnel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTunnel sets the old Tunnel of the mutation.
func withTunnel(node *Tunnel) tunnelOption {
	return func(m *TunnelMutation) {
		m.oldValue = func(context.Context) (*Tunnel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TunnelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TunnelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TunnelMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TunnelMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tunnel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TunnelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TunnelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TunnelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TunnelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TunnelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TunnelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSubdomain sets the "subdomain" field.
func (m *TunnelMutation) SetSubdomain(s string) {
	m.subdomain = &s
}

// Subdomain returns the value of the "subdomain" field in the mutation.
func (m *TunnelMutation) Subdomain() (r string, exists bool) {
	v := m.subdomain
	if v == nil {
		return
	}
	return *v, true
}

// OldSubdomain returns the old "subdomain" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldSubdomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubdomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubdomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubdomain: %w", err)
	}
	return oldValue.Subdomain, nil
}

// ResetSubdomain resets all changes to the "subdomain" field.
func (m *TunnelMutation) ResetSubdomain() {
	m.subdomain = nil
}

// SetRegion sets the "region" field.
func (m *TunnelMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *TunnelMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *TunnelMutation) ResetRegion() {
	m.region = nil
}

// SetServiceType sets the "service_type" field.
func (m *TunnelMutation) SetServiceType(s string) {
	m.service_type = &s
}

// ServiceType returns the value of the "service_type" field in the mutation.
func (m *TunnelMutation) ServiceType() (r string, exists bool) {
	v := m.service_type
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceType returns the old "service_type" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldServiceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceType: %w", err)
	}
	return oldValue.ServiceType, nil
}

// ResetServiceType resets all changes to the "service_type" field.
func (m *TunnelMutation) ResetServiceType() {
	m.service_type = nil
}

// SetProtocol sets the "protocol" field.
func (m *TunnelMutation) SetProtocol(t tunnel.Protocol) {
	m.protocol = &t
}

// Protocol returns the value of the "protocol" field in the mutation.
func (m *TunnelMutation) Protocol() (r tunnel.Protocol, exists bool) {
	v := m.protocol
	if v == nil {
		return
	}
	return *v, true
}

// OldProtocol returns the old "protocol" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldProtocol(ctx context.Context) (v tunnel.Protocol, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtocol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtocol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtocol: %w", err)
	}
	return oldValue.Protocol, nil
}

// ResetProtocol resets all changes to the "protocol" field.
func (m *TunnelMutation) ResetProtocol() {
	m.protocol = nil
}

// SetLocalPort sets the "local_port" field.
func (m *TunnelMutation) SetLocalPort(i int) {
	m.local_port = &i
	m.addlocal_port = nil
}

// LocalPort returns the value of the "local_port" field in the mutation.
func (m *TunnelMutation) LocalPort() (r int, exists bool) {
	v := m.local_port
	if v == nil {
		return
	}
	return *v, true
}

// OldLocalPort returns the old "local_port" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldLocalPort(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocalPort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocalPort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocalPort: %w", err)
	}
	return oldValue.LocalPort, nil
}

// AddLocalPort adds i to the "local_port" field.
func (m *TunnelMutation) AddLocalPort(i int) {
	if m.addlocal_port != nil {
		*m.addlocal_port += i
	} else {
		m.addlocal_port = &i
	}
}

// AddedLocalPort returns the value that was added to the "local_port" field in this mutation.
func (m *TunnelMutation) AddedLocalPort() (r int, exists bool) {
	v := m.addlocal_port
	if v == nil {
		return
	}
	return *v, true
}

// ResetLocalPort resets all changes to the "local_port" field.
func (m *TunnelMutation) ResetLocalPort() {
	m.local_port = nil
	m.addlocal_port = nil
}

// SetRemotePort sets the "remote_port" field.
func (m *TunnelMutation) SetRemotePort(i int) {
	m.remote_port = &i
	m.addremote_port = nil
}

// RemotePort returns the value of the "remote_port" field in the mutation.
func (m *TunnelMutation) RemotePort() (r int, exists bool) {
	v := m.remote_port
	if v == nil {
		return
	}
	return *v, true
}

// OldRemotePort returns the old "remote_port" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldRemotePort(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemotePort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemotePort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemotePort: %w", err)
	}
	return oldValue.RemotePort, nil
}

// AddRemotePort adds i to the "remote_port" field.
func (m *TunnelMutation) AddRemotePort(i int) {
	if m.addremote_port != nil {
		*m.addremote_port += i
	} else {
		m.addremote_port = &i
	}
}

// AddedRemotePort returns the value that was added to the "remote_port" field in this mutation.
func (m *TunnelMutation) AddedRemotePort() (r int, exists bool) {
	v := m.addremote_port
	if v == nil {
		return
	}
	return *v, true
}

// ClearRemotePort clears the value of the "remote_port" field.
func (m *TunnelMutation) ClearRemotePort() {
	m.remote_port = nil
	m.addremote_port = nil
	m.clearedFields[tunnel.FieldRemotePort] = struct{}{}
}

// RemotePortCleared returns if the "remote_port" field was cleared in this mutation.
func (m *TunnelMutation) RemotePortCleared() bool {
	_, ok := m.clearedFields[tunnel.FieldRemotePort]
	return ok
}

// ResetRemotePort resets all changes to the "remote_port" field.
func (m *TunnelMutation) ResetRemotePort() {
	m.remote_port = nil
	m.addremote_port = nil
	delete(m.clearedFields, tunnel.FieldRemotePort)
}

// SetConnectionToken sets the "connection_token" field.
func (m *TunnelMutation) SetConnectionToken(s string) {
	m.connection_token = &s
}

// ConnectionToken returns the value of the "connection_token" field in the mutation.
func (m *TunnelMutation) ConnectionToken() (r string, exists bool) {
	v := m.connection_token
	if v == nil {
		return
	}
	return *v, true
}

// OldConnectionToken returns the old "connection_token" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldConnectionToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConnectionToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConnectionToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConnectionToken: %w", err)
	}
	return oldValue.ConnectionToken, nil
}

// ResetConnectionToken resets all changes to the "connection_token" field.
func (m *TunnelMutation) ResetConnectionToken() {
	m.connection_token = nil
}

// SetStatus sets the "status" field.
func (m *TunnelMutation) SetStatus(t tunnel.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TunnelMutation) Status() (r tunnel.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldStatus(ctx context.Context) (v tunnel.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TunnelMutation) ResetStatus() {
	m.status = nil
}

// SetClientConnected sets the "client_connected" field.
func (m *TunnelMutation) SetClientConnected(b bool) {
	m.client_connected = &b
}

// ClientConnected returns the value of the "client_connected" field in the mutation.
func (m *TunnelMutation) ClientConnected() (r bool, exists bool) {
	v := m.client_connected
	if v == nil {
		return
	}
	return *v, true
}

// OldClientConnected returns the old "client_connected" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldClientConnected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientConnected: %w", err)
	}
	return oldValue.ClientConnected, nil
}

// ResetClientConnected resets all changes to the "client_connected" field.
func (m *TunnelMutation) ResetClientConnected() {
	m.client_connected = nil
}

// SetLastConnected sets the "last_connected" field.
func (m *TunnelMutation) SetLastConnected(t time.Time) {
	m.last_connected = &t
}

// LastConnected returns the value of the "last_connected" field in the mutation.
func (m *TunnelMutation) LastConnected() (r time.Time, exists bool) {
	v := m.last_connected
	if v == nil {
		return
	}
	return *v, true
}

// OldLastConnected returns the old "last_connected" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldLastConnected(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastConnected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastConnected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastConnected: %w", err)
	}
	return oldValue.LastConnected, nil
}

// ClearLastConnected clears the value of the "last_connected" field.
func (m *TunnelMutation) ClearLastConnected() {
	m.last_connected = nil
	m.clearedFields[tunnel.FieldLastConnected] = struct{}{}
}

// LastConnectedCleared returns if the "last_connected" field was cleared in this mutation.
func (m *TunnelMutation) LastConnectedCleared() bool {
	_, ok := m.clearedFields[tunnel.FieldLastConnected]
	return ok
}

// ResetLastConnected resets all changes to the "last_connected" field.
func (m *TunnelMutation) ResetLastConnected() {
	m.last_connected = nil
	delete(m.clearedFields, tunnel.FieldLastConnected)
}

// SetUserID sets the "user_id" field.
func (m *TunnelMutation) SetUserID(u uint32) {
	m.owner = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TunnelMutation) UserID() (r uint32, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Tunnel entity.
// If the Tunnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TunnelMutation) OldUserID(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TunnelMutation) ResetUserID() {
	m.owner = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *TunnelMutation) SetOwnerID(id uint32) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *TunnelMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[tunnel.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *TunnelMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *TunnelMutation) OwnerID() (id uint32, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *TunnelMutation) OwnerIDs() (ids []uint32) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *TunnelMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the TunnelMutation builder.
func (m *TunnelMutation) Where(ps ...predicate.Tunnel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TunnelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TunnelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tunnel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TunnelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TunnelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tunnel).
func (m *TunnelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TunnelMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, tunnel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tunnel.FieldUpdatedAt)
	}
	if m.subdomain != nil {
		fields = append(fields, tunnel.FieldSubdomain)
	}
	if m.region != nil {
		fields = append(fields, tunnel.FieldRegion)
	}
	if m.service_type != nil {
		fields = append(fields, tunnel.FieldServiceType)
	}
	if m.protocol != nil {
		fields = append(fields, tunnel.FieldProtocol)
	}
	if m.local_port != nil {
		fields = append(fields, tunnel.FieldLocalPort)
	}
	if m.remote_port != nil {
		fields = append(fields, tunnel.FieldRemotePort)
	}
	if m.connection_token != nil {
		fields = append(fields, tunnel.FieldConnectionToken)
	}
	if m.status != nil {
		fields = append(fields, tunnel.FieldStatus)
	}
	if m.client_connected != nil {
		fields = append(fields, tunnel.FieldClientConnected)
	}
	if m.last_connected != nil {
		fields = append(fields, tunnel.FieldLastConnected)
	}
	if m.owner != nil {
		fields = append(fields, tunnel.FieldUserID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TunnelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tunnel.FieldCreatedAt:
		return m.CreatedAt()
	case tunnel.FieldUpdatedAt:
		return m.UpdatedAt()
	case tunnel.FieldSubdomain:
		return m.Subdomain()
	case tunnel.FieldRegion:
		return m.Region()
	case tunnel.FieldServiceType:
		return m.ServiceType()
	case tunnel.FieldProtocol:
		return m.Protocol()
	case tunnel.FieldLocalPort:
		return m.LocalPort()
	case tunnel.FieldRemotePort:
		return m.RemotePort()
	case tunnel.FieldConnectionToken:
		return m.ConnectionToken()
	case tunnel.FieldStatus:
		return m.Status()
	case tunnel.FieldClientConnected:
		return m.ClientConnected()
	case tunnel.FieldLastConnected:
		return m.LastConnected()
	case tunnel.FieldUserID:
		return m.UserID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TunnelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tunnel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tunnel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tunnel.FieldSubdomain:
		return m.OldSubdomain(ctx)
	case tunnel.FieldRegion:
		return m.OldRegion(ctx)
	case tunnel.FieldServiceType:
		return m.OldServiceType(ctx)
	case tunnel.FieldProtocol:
		return m.OldProtocol(ctx)
	case tunnel.FieldLocalPort:
		return m.OldLocalPort(ctx)
	case tunnel.FieldRemotePort:
		return m.OldRemotePort(ctx)
	case tunnel.FieldConnectionToken:
		return m.OldConnectionToken(ctx)
	case tunnel.FieldStatus:
		return m.OldStatus(ctx)
	case tunnel.FieldClientConnected:
		return m.OldClientConnected(ctx)
	case tunnel.FieldLastConnected:
		return m.OldLastConnected(ctx)
	case tunnel.FieldUserID:
		return m.OldUserID(ctx)
	}
	return nil, fmt.Errorf("unknown Tunnel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TunnelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tunnel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tunnel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tunnel.FieldSubdomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubdomain(v)
		return nil
	case tunnel.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case tunnel.FieldServiceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceType(v)
		return nil
	case tunnel.FieldProtocol:
		v, ok := value.(tunnel.Protocol)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtocol(v)
		return nil
	case tunnel.FieldLocalPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocalPort(v)
		return nil
	case tunnel.FieldRemotePort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemotePort(v)
		return nil
	case tunnel.FieldConnectionToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConnectionToken(v)
		return nil
	case tunnel.FieldStatus:
		v, ok := value.(tunnel.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tunnel.FieldClientConnected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientConnected(v)
		return nil
	case tunnel.FieldLastConnected:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastConnected(v)
		return nil
	case tunnel.FieldUserID:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	}
	return fmt.Errorf("unknown Tunnel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TunnelMutation) AddedFields() []string {
	var fields []string
	if m.addlocal_port != nil {
		fields = append(fields, tunnel.FieldLocalPort)
	}
	if m.addremote_port != nil {
		fields = append(fields, tunnel.FieldRemotePort)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TunnelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tunnel.FieldLocalPort:
		return m.AddedLocalPort()
	case tunnel.FieldRemotePort:
		return m.AddedRemotePort()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TunnelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tunnel.FieldLocalPort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLocalPort(v)
		return nil
	case tunnel.FieldRemotePort:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemotePort(v)
		return nil
	}
	return fmt.Errorf("unknown Tunnel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TunnelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tunnel.FieldRemotePort) {
		fields = append(fields, tunnel.FieldRemotePort)
	}
	if m.FieldCleared(tunnel.FieldLastConnected) {
		fields = append(fields, tunnel.FieldLastConnected)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TunnelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TunnelMutation) ClearField(name string) error {
	switch name {
	case tunnel.FieldRemotePort:
		m.ClearRemotePort()
		return nil
	case tunnel.FieldLastConnected:
		m.ClearLastConnected()
		return nil
	}
	return fmt.Errorf("unknown Tunnel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TunnelMutation) ResetField(name string) error {
	switch name {
	case tunnel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tunnel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tunnel.FieldSubdomain:
		m.ResetSubdomain()
		return nil
	case tunnel.FieldRegion:
		m.ResetRegion()
		return nil
	case tunnel.FieldServiceType:
		m.ResetServiceType()
		return nil
	case tunnel.FieldProtocol:
		m.ResetProtocol()
		return nil
	case tunnel.FieldLocalPort:
		m.ResetLocalPort()
		return nil
	case tunnel.FieldRemotePort:
		m.ResetRemotePort()
		return nil
	case tunnel.FieldConnectionToken:
		m.ResetConnectionToken()
		return nil
	case tunnel.FieldStatus:
		m.ResetStatus()
		return nil
	case tunnel.FieldClientConnected:
		m.ResetClientConnected()
		return nil
	case tunnel.FieldLastConnected:
		m.ResetLastConnected()
		return nil
	case tunnel.FieldUserID:
		m.ResetUserID()
		return nil
	}
	return fmt.Errorf("unknown Tunnel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TunnelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, tunnel.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TunnelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tunnel.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TunnelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TunnelMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TunnelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, tunnel.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TunnelMutation) EdgeCleared(name string) bool {
	switch name {
	case tunnel.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TunnelMutation) ClearEdge(name string) error {
	switch name {
	case tunnel.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown Tunnel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TunnelMutation) ResetEdge(name string) error {
	switch name {
	case tunnel.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown Tunnel edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op             Op
	typ            string
	id             *uint32
	created_at     *time.Time
	updated_at     *time.Time
	email          *string
	name           *string
	api_key        *string
	is_active      *bool
	clearedFields  map[string]struct{}
	tunnels        map[int]struct{}
	removedtunnels map[int]struct{}
	clearedtunnels bool
	done           bool
	oldValue       func(context.Context) (*User, error)
	predicates     []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uint32) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uint32) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uint32, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uint32, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint32{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *UserMutation) ClearName() {
	m.name = nil
	m.clearedFields[user.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *UserMutation) NameCleared() bool {
	_, ok := m.clearedFields[user.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, user.FieldName)
}

// SetAPIKey sets the "api_key" field.
func (m *UserMutation) SetAPIKey(s string) {
	m.api_key = &s
}

// APIKey returns the value of the "api_key" field in the mutation.
func (m *UserMutation) APIKey() (r string, exists bool) {
	v := m.api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKey returns the old "api_key" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKey: %w", err)
	}
	return oldValue.APIKey, nil
}

// ResetAPIKey resets all changes to the "api_key" field.
func (m *UserMutation) ResetAPIKey() {
	m.api_key = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// AddTunnelIDs adds the "tunnels" edge to the Tunnel entity by ids.
func (m *UserMutation) AddTunnelIDs(ids ...int) {
	if m.tunnels == nil {
		m.tunnels = make(map[int]struct{})
	}
	for i := range ids {
		m.tunnels[ids[i]] = struct{}{}
	}
}

// ClearTunnels clears the "tunnels" edge to the Tunnel entity.
func (m *UserMutation) ClearTunnels() {
	m.clearedtunnels = true
}

// TunnelsCleared reports if the "tunnels" edge to the Tunnel entity was cleared.
func (m *UserMutation) TunnelsCleared() bool {
	return m.clearedtunnels
}

// RemoveTunnelIDs removes the "tunnels" edge to the Tunnel entity by IDs.
func (m *UserMutation) RemoveTunnelIDs(ids ...int) {
	if m.removedtunnels == nil {
		m.removedtunnels = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tunnels, ids[i])
		m.removedtunnels[ids[i]] = struct{}{}
	}
}

// RemovedTunnels returns the removed IDs of the "tunnels" edge to the Tunnel entity.
func (m *UserMutation) RemovedTunnelsIDs() (ids []int) {
	for id := range m.removedtunnels {
		ids = append(ids, id)
	}
	return
}

// TunnelsIDs returns the "tunnels" edge IDs in the mutation.
func (m *UserMutation) TunnelsIDs() (ids []int) {
	for id := range m.tunnels {
		ids = append(ids, id)
	}
	return
}

// ResetTunnels resets all changes to the "tunnels" edge.
func (m *UserMutation) ResetTunnels() {
	m.tunnels = nil
	m.clearedtunnels = false
	m.removedtunnels = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.api_key != nil {
		fields = append(fields, user.FieldAPIKey)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldAPIKey:
		return m.APIKey()
	case user.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldAPIKey:
		return m.OldAPIKey(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKey(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldName) {
		fields = append(fields, user.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldAPIKey:
		m.ResetAPIKey()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.tunnels != nil {
		edges = append(edges, user.EdgeTunnels)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTunnels:
		ids := make([]ent.Value, 0, len(m.tunnels))
		for id := range m.tunnels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtunnels != nil {
		edges = append(edges, user.EdgeTunnels)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeTunnels:
		ids := make([]ent.Value, 0, len(m.removedtunnels))
		for id := range m.removedtunnels {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtunnels {
		edges = append(edges, user.EdgeTunnels)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeTunnels:
		return m.clearedtunnels
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeTunnels:
		m.ResetTunnels()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
