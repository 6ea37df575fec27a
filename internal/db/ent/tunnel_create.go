// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/db/ent/user"
)

// TunnelCreate is the builder for creating a Tunnel entity.
type TunnelCreate struct {
	config
	mutation *TunnelMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (tc *TunnelCreate) SetCreatedAt(t time.Time) *TunnelCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableCreatedAt(t *time.Time) *TunnelCreate {
	if t != nil {
		tc.SetCreatedAt(*t)
	}
	return tc
}

// SetUpdatedAt sets the "updated_at" field.
func (tc *TunnelCreate) SetUpdatedAt(t time.Time) *TunnelCreate {
	tc.mutation.SetUpdatedAt(t)
	return tc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableUpdatedAt(t *time.Time) *TunnelCreate {
	if t != nil {
		tc.SetUpdatedAt(*t)
	}
	return tc
}

// SetSubdomain sets the "subdomain" field.
func (tc *TunnelCreate) SetSubdomain(s string) *TunnelCreate {
	tc.mutation.SetSubdomain(s)
	return tc
}

// SetRegion sets the "region" field.
func (tc *TunnelCreate) SetRegion(s string) *TunnelCreate {
	tc.mutation.SetRegion(s)
	return tc
}

// SetServiceType sets the "service_type" field.
func (tc *TunnelCreate) SetServiceType(s string) *TunnelCreate {
	tc.mutation.SetServiceType(s)
	return tc
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableServiceType(s *string) *TunnelCreate {
	if s != nil {
		tc.SetServiceType(*s)
	}
	return tc
}

// SetProtocol sets the "protocol" field.
func (tc *TunnelCreate) SetProtocol(t tunnel.Protocol) *TunnelCreate {
	tc.mutation.SetProtocol(t)
	return tc
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableProtocol(t *tunnel.Protocol) *TunnelCreate {
	if t != nil {
		tc.SetProtocol(*t)
	}
	return tc
}

// SetLocalPort sets the "local_port" field.
func (tc *TunnelCreate) SetLocalPort(i int) *TunnelCreate {
	tc.mutation.SetLocalPort(i)
	return tc
}

// SetRemotePort sets the "remote_port" field.
func (tc *TunnelCreate) SetRemotePort(i int) *TunnelCreate {
	tc.mutation.SetRemotePort(i)
	return tc
}

// SetNillableRemotePort sets the "remote_port" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableRemotePort(i *int) *TunnelCreate {
	if i != nil {
		tc.SetRemotePort(*i)
	}
	return tc
}

// SetConnectionToken sets the "connection_token" field.
func (tc *TunnelCreate) SetConnectionToken(s string) *TunnelCreate {
	tc.mutation.SetConnectionToken(s)
	return tc
}

// SetStatus sets the "status" field.
func (tc *TunnelCreate) SetStatus(t tunnel.Status) *TunnelCreate {
	tc.mutation.SetStatus(t)
	return tc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableStatus(t *tunnel.Status) *TunnelCreate {
	if t != nil {
		tc.SetStatus(*t)
	}
	return tc
}

// SetClientConnected sets the "client_connected" field.
func (tc *TunnelCreate) SetClientConnected(b bool) *TunnelCreate {
	tc.mutation.SetClientConnected(b)
	return tc
}

// SetNillableClientConnected sets the "client_connected" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableClientConnected(b *bool) *TunnelCreate {
	if b != nil {
		tc.SetClientConnected(*b)
	}
	return tc
}

// SetLastConnected sets the "last_connected" field.
func (tc *TunnelCreate) SetLastConnected(t time.Time) *TunnelCreate {
	tc.mutation.SetLastConnected(t)
	return tc
}

// SetNillableLastConnected sets the "last_connected" field if the given value is not nil.
func (tc *TunnelCreate) SetNillableLastConnected(t *time.Time) *TunnelCreate {
	if t != nil {
		tc.SetLastConnected(*t)
	}
	return tc
}

// SetUserID sets the "user_id" field.
func (tc *TunnelCreate) SetUserID(u uint32) *TunnelCreate {
	tc.mutation.SetUserID(u)
	return tc
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (tc *TunnelCreate) SetOwnerID(id uint32) *TunnelCreate {
	tc.mutation.SetOwnerID(id)
	return tc
}

// SetOwner sets the "owner" edge to the User entity.
func (tc *TunnelCreate) SetOwner(u *User) *TunnelCreate {
	return tc.SetOwnerID(u.ID)
}

// Mutation returns the TunnelMutation object of the builder.
func (tc *TunnelCreate) Mutation() *TunnelMutation {
	return tc.mutation
}

// Save creates the Tunnel in the database.
func (tc *TunnelCreate) Save(ctx context.Context) (*Tunnel, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TunnelCreate) SaveX(ctx context.Context) *Tunnel {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TunnelCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TunnelCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TunnelCreate) defaults() {
	if _, ok := tc.mutation.CreatedAt(); !ok {
		v := tunnel.DefaultCreatedAt()
		tc.mutation.SetCreatedAt(v)
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		v := tunnel.DefaultUpdatedAt()
		tc.mutation.SetUpdatedAt(v)
	}
	if _, ok := tc.mutation.ServiceType(); !ok {
		v := tunnel.DefaultServiceType
		tc.mutation.SetServiceType(v)
	}
	if _, ok := tc.mutation.Protocol(); !ok {
		v := tunnel.DefaultProtocol
		tc.mutation.SetProtocol(v)
	}
	if _, ok := tc.mutation.Status(); !ok {
		v := tunnel.DefaultStatus
		tc.mutation.SetStatus(v)
	}
	if _, ok := tc.mutation.ClientConnected(); !ok {
		v := tunnel.DefaultClientConnected
		tc.mutation.SetClientConnected(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TunnelCreate) check() error {
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tunnel.created_at"`)}
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Tunnel.updated_at"`)}
	}
	if _, ok := tc.mutation.Subdomain(); !ok {
		return &ValidationError{Name: "subdomain", err: errors.New(`ent: missing required field "Tunnel.subdomain"`)}
	}
	if v, ok := tc.mutation.Subdomain(); ok {
		if err := tunnel.SubdomainValidator(v); err != nil {
			return &ValidationError{Name: "subdomain", err: fmt.Errorf(`ent: validator failed for field "Tunnel.subdomain": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "Tunnel.region"`)}
	}
	if v, ok := tc.mutation.Region(); ok {
		if err := tunnel.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "Tunnel.region": %w`, err)}
		}
	}
	if _, ok := tc.mutation.ServiceType(); !ok {
		return &ValidationError{Name: "service_type", err: errors.New(`ent: missing required field "Tunnel.service_type"`)}
	}
	if _, ok := tc.mutation.Protocol(); !ok {
		return &ValidationError{Name: "protocol", err: errors.New(`ent: missing required field "Tunnel.protocol"`)}
	}
	if v, ok := tc.mutation.Protocol(); ok {
		if err := tunnel.ProtocolValidator(v); err != nil {
			return &ValidationError{Name: "protocol", err: fmt.Errorf(`ent: validator failed for field "Tunnel.protocol": %w`, err)}
		}
	}
	if _, ok := tc.mutation.LocalPort(); !ok {
		return &ValidationError{Name: "local_port", err: errors.New(`ent: missing required field "Tunnel.local_port"`)}
	}
	if v, ok := tc.mutation.LocalPort(); ok {
		if err := tunnel.LocalPortValidator(v); err != nil {
			return &ValidationError{Name: "local_port", err: fmt.Errorf(`ent: validator failed for field "Tunnel.local_port": %w`, err)}
		}
	}
	if _, ok := tc.mutation.ConnectionToken(); !ok {
		return &ValidationError{Name: "connection_token", err: errors.New(`ent: missing required field "Tunnel.connection_token"`)}
	}
	if v, ok := tc.mutation.ConnectionToken(); ok {
		if err := tunnel.ConnectionTokenValidator(v); err != nil {
			return &ValidationError{Name: "connection_token", err: fmt.Errorf(`ent: validator failed for field "Tunnel.connection_token": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Tunnel.status"`)}
	}
	if v, ok := tc.mutation.Status(); ok {
		if err := tunnel.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Tunnel.status": %w`, err)}
		}
	}
	if _, ok := tc.mutation.ClientConnected(); !ok {
		return &ValidationError{Name: "client_connected", err: errors.New(`ent: missing required field "Tunnel.client_connected"`)}
	}
	if _, ok := tc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Tunnel.user_id"`)}
	}
	if len(tc.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "Tunnel.owner"`)}
	}
	return nil
}

func (tc *TunnelCreate) sqlSave(ctx context.Context) (*Tunnel, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TunnelCreate) createSpec() (*Tunnel, *sqlgraph.CreateSpec) {
	var (
		_node = &Tunnel{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(tunnel.Table, sqlgraph.NewFieldSpec(tunnel.FieldID, field.TypeInt))
	)
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(tunnel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tc.mutation.UpdatedAt(); ok {
		_spec.SetField(tunnel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := tc.mutation.Subdomain(); ok {
		_spec.SetField(tunnel.FieldSubdomain, field.TypeString, value)
		_node.Subdomain = value
	}
	if value, ok := tc.mutation.Region(); ok {
		_spec.SetField(tunnel.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := tc.mutation.ServiceType(); ok {
		_spec.SetField(tunnel.FieldServiceType, field.TypeString, value)
		_node.ServiceType = value
	}
	if value, ok := tc.mutation.Protocol(); ok {
		_spec.SetField(tunnel.FieldProtocol, field.TypeEnum, value)
		_node.Protocol = value
	}
	if value, ok := tc.mutation.LocalPort(); ok {
		_spec.SetField(tunnel.FieldLocalPort, field.TypeInt, value)
		_node.LocalPort = value
	}
	if value, ok := tc.mutation.RemotePort(); ok {
		_spec.SetField(tunnel.FieldRemotePort, field.TypeInt, value)
		_node.RemotePort = &value
	}
	if value, ok := tc.mutation.ConnectionToken(); ok {
		_spec.SetField(tunnel.FieldConnectionToken, field.TypeString, value)
		_node.ConnectionToken = value
	}
	if value, ok := tc.mutation.Status(); ok {
		_spec.SetField(tunnel.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := tc.mutation.ClientConnected(); ok {
		_spec.SetField(tunnel.FieldClientConnected, field.TypeBool, value)
		_node.ClientConnected = value
	}
	if value, ok := tc.mutation.LastConnected(); ok {
		_spec.SetField(tunnel.FieldLastConnected, field.TypeTime, value)
		_node.LastConnected = &value
	}
	if nodes := tc.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TunnelCreateBulk is the builder for creating many Tunnel entities in bulk.
type TunnelCreateBulk struct {
	config
	err      error
	builders []*TunnelCreate
}

// Save creates the Tunnel entities in the database.
func (tcb *TunnelCreateBulk) Save(ctx context.Context) ([]*Tunnel, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Tunnel, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TunnelMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TunnelCreateBulk) SaveX(ctx context.Context) []*Tunnel {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TunnelCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TunnelCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}
