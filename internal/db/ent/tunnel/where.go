// Code generated by ent, DO NOT EDIT.

package tunnel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tunlify/tunlify/internal/db/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldUpdatedAt, v))
}

// Subdomain applies equality check predicate on the "subdomain" field. It's identical to SubdomainEQ.
func Subdomain(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldSubdomain, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldRegion, v))
}

// ServiceType applies equality check predicate on the "service_type" field. It's identical to ServiceTypeEQ.
func ServiceType(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldServiceType, v))
}

// LocalPort applies equality check predicate on the "local_port" field. It's identical to LocalPortEQ.
func LocalPort(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldLocalPort, v))
}

// RemotePort applies equality check predicate on the "remote_port" field. It's identical to RemotePortEQ.
func RemotePort(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldRemotePort, v))
}

// ConnectionToken applies equality check predicate on the "connection_token" field. It's identical to ConnectionTokenEQ.
func ConnectionToken(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldConnectionToken, v))
}

// ClientConnected applies equality check predicate on the "client_connected" field. It's identical to ClientConnectedEQ.
func ClientConnected(v bool) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldClientConnected, v))
}

// LastConnected applies equality check predicate on the "last_connected" field. It's identical to LastConnectedEQ.
func LastConnected(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldLastConnected, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uint32) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldUpdatedAt, v))
}

// SubdomainEQ applies the EQ predicate on the "subdomain" field.
func SubdomainEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldSubdomain, v))
}

// SubdomainNEQ applies the NEQ predicate on the "subdomain" field.
func SubdomainNEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldSubdomain, v))
}

// SubdomainIn applies the In predicate on the "subdomain" field.
func SubdomainIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldSubdomain, vs...))
}

// SubdomainNotIn applies the NotIn predicate on the "subdomain" field.
func SubdomainNotIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldSubdomain, vs...))
}

// SubdomainGT applies the GT predicate on the "subdomain" field.
func SubdomainGT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldSubdomain, v))
}

// SubdomainGTE applies the GTE predicate on the "subdomain" field.
func SubdomainGTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldSubdomain, v))
}

// SubdomainLT applies the LT predicate on the "subdomain" field.
func SubdomainLT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldSubdomain, v))
}

// SubdomainLTE applies the LTE predicate on the "subdomain" field.
func SubdomainLTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldSubdomain, v))
}

// SubdomainContains applies the Contains predicate on the "subdomain" field.
func SubdomainContains(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContains(FieldSubdomain, v))
}

// SubdomainHasPrefix applies the HasPrefix predicate on the "subdomain" field.
func SubdomainHasPrefix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasPrefix(FieldSubdomain, v))
}

// SubdomainHasSuffix applies the HasSuffix predicate on the "subdomain" field.
func SubdomainHasSuffix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasSuffix(FieldSubdomain, v))
}

// SubdomainEqualFold applies the EqualFold predicate on the "subdomain" field.
func SubdomainEqualFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEqualFold(FieldSubdomain, v))
}

// SubdomainContainsFold applies the ContainsFold predicate on the "subdomain" field.
func SubdomainContainsFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContainsFold(FieldSubdomain, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContainsFold(FieldRegion, v))
}

// ServiceTypeEQ applies the EQ predicate on the "service_type" field.
func ServiceTypeEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldServiceType, v))
}

// ServiceTypeNEQ applies the NEQ predicate on the "service_type" field.
func ServiceTypeNEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldServiceType, v))
}

// ServiceTypeIn applies the In predicate on the "service_type" field.
func ServiceTypeIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldServiceType, vs...))
}

// ServiceTypeNotIn applies the NotIn predicate on the "service_type" field.
func ServiceTypeNotIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldServiceType, vs...))
}

// ServiceTypeGT applies the GT predicate on the "service_type" field.
func ServiceTypeGT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldServiceType, v))
}

// ServiceTypeGTE applies the GTE predicate on the "service_type" field.
func ServiceTypeGTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldServiceType, v))
}

// ServiceTypeLT applies the LT predicate on the "service_type" field.
func ServiceTypeLT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldServiceType, v))
}

// ServiceTypeLTE applies the LTE predicate on the "service_type" field.
func ServiceTypeLTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldServiceType, v))
}

// ServiceTypeContains applies the Contains predicate on the "service_type" field.
func ServiceTypeContains(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContains(FieldServiceType, v))
}

// ServiceTypeHasPrefix applies the HasPrefix predicate on the "service_type" field.
func ServiceTypeHasPrefix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasPrefix(FieldServiceType, v))
}

// ServiceTypeHasSuffix applies the HasSuffix predicate on the "service_type" field.
func ServiceTypeHasSuffix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasSuffix(FieldServiceType, v))
}

// ServiceTypeEqualFold applies the EqualFold predicate on the "service_type" field.
func ServiceTypeEqualFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEqualFold(FieldServiceType, v))
}

// ServiceTypeContainsFold applies the ContainsFold predicate on the "service_type" field.
func ServiceTypeContainsFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContainsFold(FieldServiceType, v))
}

// ProtocolEQ applies the EQ predicate on the "protocol" field.
func ProtocolEQ(v Protocol) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldProtocol, v))
}

// ProtocolNEQ applies the NEQ predicate on the "protocol" field.
func ProtocolNEQ(v Protocol) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldProtocol, v))
}

// ProtocolIn applies the In predicate on the "protocol" field.
func ProtocolIn(vs ...Protocol) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldProtocol, vs...))
}

// ProtocolNotIn applies the NotIn predicate on the "protocol" field.
func ProtocolNotIn(vs ...Protocol) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldProtocol, vs...))
}

// LocalPortEQ applies the EQ predicate on the "local_port" field.
func LocalPortEQ(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldLocalPort, v))
}

// LocalPortNEQ applies the NEQ predicate on the "local_port" field.
func LocalPortNEQ(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldLocalPort, v))
}

// LocalPortIn applies the In predicate on the "local_port" field.
func LocalPortIn(vs ...int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldLocalPort, vs...))
}

// LocalPortNotIn applies the NotIn predicate on the "local_port" field.
func LocalPortNotIn(vs ...int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldLocalPort, vs...))
}

// LocalPortGT applies the GT predicate on the "local_port" field.
func LocalPortGT(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldLocalPort, v))
}

// LocalPortGTE applies the GTE predicate on the "local_port" field.
func LocalPortGTE(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldLocalPort, v))
}

// LocalPortLT applies the LT predicate on the "local_port" field.
func LocalPortLT(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldLocalPort, v))
}

// LocalPortLTE applies the LTE predicate on the "local_port" field.
func LocalPortLTE(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldLocalPort, v))
}

// RemotePortEQ applies the EQ predicate on the "remote_port" field.
func RemotePortEQ(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldRemotePort, v))
}

// RemotePortNEQ applies the NEQ predicate on the "remote_port" field.
func RemotePortNEQ(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldRemotePort, v))
}

// RemotePortIn applies the In predicate on the "remote_port" field.
func RemotePortIn(vs ...int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldRemotePort, vs...))
}

// RemotePortNotIn applies the NotIn predicate on the "remote_port" field.
func RemotePortNotIn(vs ...int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldRemotePort, vs...))
}

// RemotePortGT applies the GT predicate on the "remote_port" field.
func RemotePortGT(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldRemotePort, v))
}

// RemotePortGTE applies the GTE predicate on the "remote_port" field.
func RemotePortGTE(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldRemotePort, v))
}

// RemotePortLT applies the LT predicate on the "remote_port" field.
func RemotePortLT(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldRemotePort, v))
}

// RemotePortLTE applies the LTE predicate on the "remote_port" field.
func RemotePortLTE(v int) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldRemotePort, v))
}

// RemotePortIsNil applies the IsNil predicate on the "remote_port" field.
func RemotePortIsNil() predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIsNull(FieldRemotePort))
}

// RemotePortNotNil applies the NotNil predicate on the "remote_port" field.
func RemotePortNotNil() predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotNull(FieldRemotePort))
}

// ConnectionTokenEQ applies the EQ predicate on the "connection_token" field.
func ConnectionTokenEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldConnectionToken, v))
}

// ConnectionTokenNEQ applies the NEQ predicate on the "connection_token" field.
func ConnectionTokenNEQ(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldConnectionToken, v))
}

// ConnectionTokenIn applies the In predicate on the "connection_token" field.
func ConnectionTokenIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldConnectionToken, vs...))
}

// ConnectionTokenNotIn applies the NotIn predicate on the "connection_token" field.
func ConnectionTokenNotIn(vs ...string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldConnectionToken, vs...))
}

// ConnectionTokenGT applies the GT predicate on the "connection_token" field.
func ConnectionTokenGT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldConnectionToken, v))
}

// ConnectionTokenGTE applies the GTE predicate on the "connection_token" field.
func ConnectionTokenGTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldConnectionToken, v))
}

// ConnectionTokenLT applies the LT predicate on the "connection_token" field.
func ConnectionTokenLT(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldConnectionToken, v))
}

// ConnectionTokenLTE applies the LTE predicate on the "connection_token" field.
func ConnectionTokenLTE(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldConnectionToken, v))
}

// ConnectionTokenContains applies the Contains predicate on the "connection_token" field.
func ConnectionTokenContains(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContains(FieldConnectionToken, v))
}

// ConnectionTokenHasPrefix applies the HasPrefix predicate on the "connection_token" field.
func ConnectionTokenHasPrefix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasPrefix(FieldConnectionToken, v))
}

// ConnectionTokenHasSuffix applies the HasSuffix predicate on the "connection_token" field.
func ConnectionTokenHasSuffix(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldHasSuffix(FieldConnectionToken, v))
}

// ConnectionTokenEqualFold applies the EqualFold predicate on the "connection_token" field.
func ConnectionTokenEqualFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEqualFold(FieldConnectionToken, v))
}

// ConnectionTokenContainsFold applies the ContainsFold predicate on the "connection_token" field.
func ConnectionTokenContainsFold(v string) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldContainsFold(FieldConnectionToken, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldStatus, vs...))
}

// ClientConnectedEQ applies the EQ predicate on the "client_connected" field.
func ClientConnectedEQ(v bool) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldClientConnected, v))
}

// ClientConnectedNEQ applies the NEQ predicate on the "client_connected" field.
func ClientConnectedNEQ(v bool) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldClientConnected, v))
}

// LastConnectedEQ applies the EQ predicate on the "last_connected" field.
func LastConnectedEQ(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldLastConnected, v))
}

// LastConnectedNEQ applies the NEQ predicate on the "last_connected" field.
func LastConnectedNEQ(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldLastConnected, v))
}

// LastConnectedIn applies the In predicate on the "last_connected" field.
func LastConnectedIn(vs ...time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldLastConnected, vs...))
}

// LastConnectedNotIn applies the NotIn predicate on the "last_connected" field.
func LastConnectedNotIn(vs ...time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldLastConnected, vs...))
}

// LastConnectedGT applies the GT predicate on the "last_connected" field.
func LastConnectedGT(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGT(FieldLastConnected, v))
}

// LastConnectedGTE applies the GTE predicate on the "last_connected" field.
func LastConnectedGTE(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldGTE(FieldLastConnected, v))
}

// LastConnectedLT applies the LT predicate on the "last_connected" field.
func LastConnectedLT(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLT(FieldLastConnected, v))
}

// LastConnectedLTE applies the LTE predicate on the "last_connected" field.
func LastConnectedLTE(v time.Time) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldLTE(FieldLastConnected, v))
}

// LastConnectedIsNil applies the IsNil predicate on the "last_connected" field.
func LastConnectedIsNil() predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIsNull(FieldLastConnected))
}

// LastConnectedNotNil applies the NotNil predicate on the "last_connected" field.
func LastConnectedNotNil() predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotNull(FieldLastConnected))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uint32) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uint32) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uint32) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uint32) predicate.Tunnel {
	return predicate.Tunnel(sql.FieldNotIn(FieldUserID, vs...))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Tunnel {
	return predicate.Tunnel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Tunnel {
	return predicate.Tunnel(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tunnel) predicate.Tunnel {
	return predicate.Tunnel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tunnel) predicate.Tunnel {
	return predicate.Tunnel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Tunnel) predicate.Tunnel {
	return predicate.Tunnel(sql.NotPredicates(p))
}
