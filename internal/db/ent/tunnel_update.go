// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tunlify/tunlify/internal/db/ent/predicate"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/db/ent/user"
)

// TunnelUpdate is the builder for updating Tunnel entities.
type TunnelUpdate struct {
	config
	hooks    []Hook
	mutation *TunnelMutation
}

// Where appends a list predicates to the TunnelUpdate builder.
func (tu *TunnelUpdate) Where(ps ...predicate.Tunnel) *TunnelUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TunnelUpdate) SetUpdatedAt(t time.Time) *TunnelUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// SetSubdomain sets the "subdomain" field.
func (tu *TunnelUpdate) SetSubdomain(s string) *TunnelUpdate {
	tu.mutation.SetSubdomain(s)
	return tu
}

// SetNillableSubdomain sets the "subdomain" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableSubdomain(s *string) *TunnelUpdate {
	if s != nil {
		tu.SetSubdomain(*s)
	}
	return tu
}

// SetRegion sets the "region" field.
func (tu *TunnelUpdate) SetRegion(s string) *TunnelUpdate {
	tu.mutation.SetRegion(s)
	return tu
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableRegion(s *string) *TunnelUpdate {
	if s != nil {
		tu.SetRegion(*s)
	}
	return tu
}

// SetServiceType sets the "service_type" field.
func (tu *TunnelUpdate) SetServiceType(s string) *TunnelUpdate {
	tu.mutation.SetServiceType(s)
	return tu
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableServiceType(s *string) *TunnelUpdate {
	if s != nil {
		tu.SetServiceType(*s)
	}
	return tu
}

// SetProtocol sets the "protocol" field.
func (tu *TunnelUpdate) SetProtocol(t tunnel.Protocol) *TunnelUpdate {
	tu.mutation.SetProtocol(t)
	return tu
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableProtocol(t *tunnel.Protocol) *TunnelUpdate {
	if t != nil {
		tu.SetProtocol(*t)
	}
	return tu
}

// SetLocalPort sets the "local_port" field.
func (tu *TunnelUpdate) SetLocalPort(i int) *TunnelUpdate {
	tu.mutation.ResetLocalPort()
	tu.mutation.SetLocalPort(i)
	return tu
}

// SetNillableLocalPort sets the "local_port" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableLocalPort(i *int) *TunnelUpdate {
	if i != nil {
		tu.SetLocalPort(*i)
	}
	return tu
}

// AddLocalPort adds i to the "local_port" field.
func (tu *TunnelUpdate) AddLocalPort(i int) *TunnelUpdate {
	tu.mutation.AddLocalPort(i)
	return tu
}

// SetRemotePort sets the "remote_port" field.
func (tu *TunnelUpdate) SetRemotePort(i int) *TunnelUpdate {
	tu.mutation.ResetRemotePort()
	tu.mutation.SetRemotePort(i)
	return tu
}

// SetNillableRemotePort sets the "remote_port" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableRemotePort(i *int) *TunnelUpdate {
	if i != nil {
		tu.SetRemotePort(*i)
	}
	return tu
}

// AddRemotePort adds i to the "remote_port" field.
func (tu *TunnelUpdate) AddRemotePort(i int) *TunnelUpdate {
	tu.mutation.AddRemotePort(i)
	return tu
}

// ClearRemotePort clears the value of the "remote_port" field.
func (tu *TunnelUpdate) ClearRemotePort() *TunnelUpdate {
	tu.mutation.ClearRemotePort()
	return tu
}

// SetConnectionToken sets the "connection_token" field.
func (tu *TunnelUpdate) SetConnectionToken(s string) *TunnelUpdate {
	tu.mutation.SetConnectionToken(s)
	return tu
}

// SetNillableConnectionToken sets the "connection_token" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableConnectionToken(s *string) *TunnelUpdate {
	if s != nil {
		tu.SetConnectionToken(*s)
	}
	return tu
}

// SetStatus sets the "status" field.
func (tu *TunnelUpdate) SetStatus(t tunnel.Status) *TunnelUpdate {
	tu.mutation.SetStatus(t)
	return tu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableStatus(t *tunnel.Status) *TunnelUpdate {
	if t != nil {
		tu.SetStatus(*t)
	}
	return tu
}

// SetClientConnected sets the "client_connected" field.
func (tu *TunnelUpdate) SetClientConnected(b bool) *TunnelUpdate {
	tu.mutation.SetClientConnected(b)
	return tu
}

// SetNillableClientConnected sets the "client_connected" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableClientConnected(b *bool) *TunnelUpdate {
	if b != nil {
		tu.SetClientConnected(*b)
	}
	return tu
}

// SetLastConnected sets the "last_connected" field.
func (tu *TunnelUpdate) SetLastConnected(t time.Time) *TunnelUpdate {
	tu.mutation.SetLastConnected(t)
	return tu
}

// SetNillableLastConnected sets the "last_connected" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableLastConnected(t *time.Time) *TunnelUpdate {
	if t != nil {
		tu.SetLastConnected(*t)
	}
	return tu
}

// ClearLastConnected clears the value of the "last_connected" field.
func (tu *TunnelUpdate) ClearLastConnected() *TunnelUpdate {
	tu.mutation.ClearLastConnected()
	return tu
}

// SetUserID sets the "user_id" field.
func (tu *TunnelUpdate) SetUserID(u uint32) *TunnelUpdate {
	tu.mutation.SetUserID(u)
	return tu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (tu *TunnelUpdate) SetNillableUserID(u *uint32) *TunnelUpdate {
	if u != nil {
		tu.SetUserID(*u)
	}
	return tu
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (tu *TunnelUpdate) SetOwnerID(id uint32) *TunnelUpdate {
	tu.mutation.SetOwnerID(id)
	return tu
}

// SetOwner sets the "owner" edge to the User entity.
func (tu *TunnelUpdate) SetOwner(u *User) *TunnelUpdate {
	return tu.SetOwnerID(u.ID)
}

// Mutation returns the TunnelMutation object of the builder.
func (tu *TunnelUpdate) Mutation() *TunnelMutation {
	return tu.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (tu *TunnelUpdate) ClearOwner() *TunnelUpdate {
	tu.mutation.ClearOwner()
	return tu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TunnelUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TunnelUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TunnelUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TunnelUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TunnelUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := tunnel.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TunnelUpdate) check() error {
	if v, ok := tu.mutation.Subdomain(); ok {
		if err := tunnel.SubdomainValidator(v); err != nil {
			return &ValidationError{Name: "subdomain", err: fmt.Errorf(`ent: validator failed for field "Tunnel.subdomain": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Region(); ok {
		if err := tunnel.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Tunnel.region": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Protocol(); ok {
		if err := tunnel.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "Tunnel.protocol": %w`, err)}
		}
	}
	if v, ok := tu.mutation.LocalPort(); ok {
		if err := tunnel.LocalPortValidator(v); err != nil {
			return &ValidationError{Name: "local_port", err: fmt.Errorf(`ent: validator failed for field "Tunnel.local_port": %w`, err)}
		}
	}
	if v, ok := tu.mutation.ConnectionToken(); ok {
		if err := tunnel.ConnectionTokenValidator(v); err != nil {
			return &ValidationError{Name: "connection_token", err: fmt.Errorf(`ent: validator failed for field "Tunnel.connection_token": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Status(); ok {
		if err := tunnel.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tunnel.status": %w`, err)}
		}
	}
	if tu.mutation.OwnerCleared() && len(tu.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tunnel.owner"`)
	}
	return nil
}

func (tu *TunnelUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(tunnel.Table, tunnel.Columns, sqlgraph.NewFieldSpec(tunnel.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(tunnel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tu.mutation.Subdomain(); ok {
		_spec.SetField(tunnel.FieldSubdomain, field.TypeString, value)
	}
	if value, ok := tu.mutation.Region(); ok {
		_spec.SetField(tunnel.FieldRegion, field.TypeString, value)
	}
	if value, ok := tu.mutation.ServiceType(); ok {
		_spec.SetField(tunnel.FieldServiceType, field.TypeString, value)
	}
	if value, ok := tu.mutation.Protocol(); ok {
		_spec.SetField(tunnel.FieldProtocol, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.LocalPort(); ok {
		_spec.SetField(tunnel.FieldLocalPort, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedLocalPort(); ok {
		_spec.AddField(tunnel.FieldLocalPort, field.TypeInt, value)
	}
	if value, ok := tu.mutation.RemotePort(); ok {
		_spec.SetField(tunnel.FieldRemotePort, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedRemotePort(); ok {
		_spec.AddField(tunnel.FieldRemotePort, field.TypeInt, value)
	}
	if tu.mutation.RemotePortCleared() {
		_spec.ClearField(tunnel.FieldRemotePort, field.TypeInt)
	}
	if value, ok := tu.mutation.ConnectionToken(); ok {
		_spec.SetField(tunnel.FieldConnectionToken, field.TypeString, value)
	}
	if value, ok := tu.mutation.Status(); ok {
		_spec.SetField(tunnel.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tu.mutation.ClientConnected(); ok {
		_spec.SetField(tunnel.FieldClientConnected, field.TypeBool, value)
	}
	if value, ok := tu.mutation.LastConnected(); ok {
		_spec.SetField(tunnel.FieldLastConnected, field.TypeTime, value)
	}
	if tu.mutation.LastConnectedCleared() {
		_spec.ClearField(tunnel.FieldLastConnected, field.TypeTime)
	}
	if tu.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tunnel.OwnerTable,
			Columns: []string{tunnel.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint32),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tunnel.OwnerTable,
			Columns: []string{tunnel.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tunnel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TunnelUpdateOne is the builder for updating a single Tunnel entity.
type TunnelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TunnelMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TunnelUpdateOne) SetUpdatedAt(t time.Time) *TunnelUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// SetSubdomain sets the "subdomain" field.
func (tuo *TunnelUpdateOne) SetSubdomain(s string) *TunnelUpdateOne {
	tuo.mutation.SetSubdomain(s)
	return tuo
}

// SetNillableSubdomain sets the "subdomain" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableSubdomain(s *string) *TunnelUpdateOne {
	if s != nil {
		tuo.SetSubdomain(*s)
	}
	return tuo
}

// SetRegion sets the "region" field.
func (tuo *TunnelUpdateOne) SetRegion(s string) *TunnelUpdateOne {
	tuo.mutation.SetRegion(s)
	return tuo
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableRegion(s *string) *TunnelUpdateOne {
	if s != nil {
		tuo.SetRegion(*s)
	}
	return tuo
}

// SetServiceType sets the "service_type" field.
func (tuo *TunnelUpdateOne) SetServiceType(s string) *TunnelUpdateOne {
	tuo.mutation.SetServiceType(s)
	return tuo
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableServiceType(s *string) *TunnelUpdateOne {
	if s != nil {
		tuo.SetServiceType(*s)
	}
	return tuo
}

// SetProtocol sets the "protocol" field.
func (tuo *TunnelUpdateOne) SetProtocol(t tunnel.Protocol) *TunnelUpdateOne {
	tuo.mutation.SetProtocol(t)
	return tuo
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableProtocol(t *tunnel.Protocol) *TunnelUpdateOne {
	if t != nil {
		tuo.SetProtocol(*t)
	}
	return tuo
}

// SetLocalPort sets the "local_port" field.
func (tuo *TunnelUpdateOne) SetLocalPort(i int) *TunnelUpdateOne {
	tuo.mutation.ResetLocalPort()
	tuo.mutation.SetLocalPort(i)
	return tuo
}

// SetNillableLocalPort sets the "local_port" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableLocalPort(i *int) *TunnelUpdateOne {
	if i != nil {
		tuo.SetLocalPort(*i)
	}
	return tuo
}

// AddLocalPort adds i to the "local_port" field.
func (tuo *TunnelUpdateOne) AddLocalPort(i int) *TunnelUpdateOne {
	tuo.mutation.AddLocalPort(i)
	return tuo
}

// SetRemotePort sets the "remote_port" field.
func (tuo *TunnelUpdateOne) SetRemotePort(i int) *TunnelUpdateOne {
	tuo.mutation.ResetRemotePort()
	tuo.mutation.SetRemotePort(i)
	return tuo
}

// SetNillableRemotePort sets the "remote_port" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableRemotePort(i *int) *TunnelUpdateOne {
	if i != nil {
		tuo.SetRemotePort(*i)
	}
	return tuo
}

// AddRemotePort adds i to the "remote_port" field.
func (tuo *TunnelUpdateOne) AddRemotePort(i int) *TunnelUpdateOne {
	tuo.mutation.AddRemotePort(i)
	return tuo
}

// ClearRemotePort clears the value of the "remote_port" field.
func (tuo *TunnelUpdateOne) ClearRemotePort() *TunnelUpdateOne {
	tuo.mutation.ClearRemotePort()
	return tuo
}

// SetConnectionToken sets the "connection_token" field.
func (tuo *TunnelUpdateOne) SetConnectionToken(s string) *TunnelUpdateOne {
	tuo.mutation.SetConnectionToken(s)
	return tuo
}

// SetNillableConnectionToken sets the "connection_token" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableConnectionToken(s *string) *TunnelUpdateOne {
	if s != nil {
		tuo.SetConnectionToken(*s)
	}
	return tuo
}

// SetStatus sets the "status" field.
func (tuo *TunnelUpdateOne) SetStatus(t tunnel.Status) *TunnelUpdateOne {
	tuo.mutation.SetStatus(t)
	return tuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableStatus(t *tunnel.Status) *TunnelUpdateOne {
	if t != nil {
		tuo.SetStatus(*t)
	}
	return tuo
}

// SetClientConnected sets the "client_connected" field.
func (tuo *TunnelUpdateOne) SetClientConnected(b bool) *TunnelUpdateOne {
	tuo.mutation.SetClientConnected(b)
	return tuo
}

// SetNillableClientConnected sets the "client_connected" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableClientConnected(b *bool) *TunnelUpdateOne {
	if b != nil {
		tuo.SetClientConnected(*b)
	}
	return tuo
}

// SetLastConnected sets the "last_connected" field.
func (tuo *TunnelUpdateOne) SetLastConnected(t time.Time) *TunnelUpdateOne {
	tuo.mutation.SetLastConnected(t)
	return tuo
}

// SetNillableLastConnected sets the "last_connected" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableLastConnected(t *time.Time) *TunnelUpdateOne {
	if t != nil {
		tuo.SetLastConnected(*t)
	}
	return tuo
}

// ClearLastConnected clears the value of the "last_connected" field.
func (tuo *TunnelUpdateOne) ClearLastConnected() *TunnelUpdateOne {
	tuo.mutation.ClearLastConnected()
	return tuo
}

// SetUserID sets the "user_id" field.
func (tuo *TunnelUpdateOne) SetUserID(u uint32) *TunnelUpdateOne {
	tuo.mutation.SetUserID(u)
	return tuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (tuo *TunnelUpdateOne) SetNillableUserID(u *uint32) *TunnelUpdateOne {
	if u != nil {
		tuo.SetUserID(*u)
	}
	return tuo
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (tuo *TunnelUpdateOne) SetOwnerID(id uint32) *TunnelUpdateOne {
	tuo.mutation.SetOwnerID(id)
	return tuo
}

// SetOwner sets the "owner" edge to the User entity.
func (tuo *TunnelUpdateOne) SetOwner(u *User) *TunnelUpdateOne {
	return tuo.SetOwnerID(u.ID)
}

// Mutation returns the TunnelMutation object of the builder.
func (tuo *TunnelUpdateOne) Mutation() *TunnelMutation {
	return tuo.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (tuo *TunnelUpdateOne) ClearOwner() *TunnelUpdateOne {
	tuo.mutation.ClearOwner()
	return tuo
}

// Where appends a list predicates to the TunnelUpdate builder.
func (tuo *TunnelUpdateOne) Where(ps ...predicate.Tunnel) *TunnelUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TunnelUpdateOne) Select(field string, fields ...string) *TunnelUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Tunnel entity.
func (tuo *TunnelUpdateOne) Save(ctx context.Context) (*Tunnel, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TunnelUpdateOne) SaveX(ctx context.Context) *Tunnel {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TunnelUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TunnelUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TunnelUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := tunnel.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TunnelUpdateOne) check() error {
	if v, ok := tuo.mutation.Subdomain(); ok {
		if err := tunnel.SubdomainValidator(v); err != nil {
			return &ValidationError{Name: "subdomain", err: fmt.Errorf(`ent: validator failed for field "Tunnel.subdomain": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Region(); ok {
		if err := tunnel.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Tunnel.region": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Protocol(); ok {
		if err := tunnel.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "Tunnel.protocol": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.LocalPort(); ok {
		if err := tunnel.LocalPortValidator(v); err != nil {
			return &ValidationError{Name: "local_port", err: fmt.Errorf(`ent: validator failed for field "Tunnel.local_port": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.ConnectionToken(); ok {
		if err := tunnel.ConnectionTokenValidator(v); err != nil {
			return &ValidationError{Name: "connection_token", err: fmt.Errorf(`ent: validator failed for field "Tunnel.connection_token": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Status(); ok {
		if err := tunnel.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tunnel.status": %w`, err)}
		}
	}
	if tuo.mutation.OwnerCleared() && len(tuo.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tunnel.owner"`)
	}
	return nil
}

func (tuo *TunnelUpdateOne) sqlSave(ctx context.Context) (_node *Tunnel, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tunnel.Table, tunnel.Columns, sqlgraph.NewFieldSpec(tunnel.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tunnel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tunnel.FieldID)
		for _, f := range fields {
			if !tunnel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tunnel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(tunnel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := tuo.mutation.Subdomain(); ok {
		_spec.SetField(tunnel.FieldSubdomain, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Region(); ok {
		_spec.SetField(tunnel.FieldRegion, field.TypeString, value)
	}
	if value, ok := tuo.mutation.ServiceType(); ok {
		_spec.SetField(tunnel.FieldServiceType, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Protocol(); ok {
		_spec.SetField(tunnel.FieldProtocol, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.LocalPort(); ok {
		_spec.SetField(tunnel.FieldLocalPort, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedLocalPort(); ok {
		_spec.AddField(tunnel.FieldLocalPort, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.RemotePort(); ok {
		_spec.SetField(tunnel.FieldRemotePort, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedRemotePort(); ok {
		_spec.AddField(tunnel.FieldRemotePort, field.TypeInt, value)
	}
	if tuo.mutation.RemotePortCleared() {
		_spec.ClearField(tunnel.FieldRemotePort, field.TypeInt)
	}
	if value, ok := tuo.mutation.ConnectionToken(); ok {
		_spec.SetField(tunnel.FieldConnectionToken, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Status(); ok {
		_spec.SetField(tunnel.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := tuo.mutation.ClientConnected(); ok {
		_spec.SetField(tunnel.FieldClientConnected, field.TypeBool, value)
	}
	if value, ok := tuo.mutation.LastConnected(); ok {
		_spec.SetField(tunnel.FieldLastConnected, field.TypeTime, value)
	}
	if tuo.mutation.LastConnectedCleared() {
		_spec.ClearField(tunnel.FieldLastConnected, field.TypeTime)
	}
	if tuo.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tunnel.OwnerTable,
			Columns: []string{tunnel.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint32),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tunnel.OwnerTable,
			Columns: []string{tunnel.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUint32),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tunnel{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tunnel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
