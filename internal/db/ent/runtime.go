// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tunlify/tunlify/internal/db/ent/schema"
	"github.com/tunlify/tunlify/internal/db/ent/tunnel"
	"github.com/tunlify/tunlify/internal/db/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	tunnelMixin := schema.Tunnel{}.Mixin()
	tunnelMixinFields0 := tunnelMixin[0].Fields()
	_ = tunnelMixinFields0
	tunnelFields := schema.Tunnel{}.Fields()
	_ = tunnelFields
	// tunnelDescCreatedAt is the schema descriptor for created_at field.
	tunnelDescCreatedAt := tunnelMixinFields0[0].Descriptor()
	// tunnel.DefaultCreatedAt holds the default value on creation for the created_at field.
	tunnel.DefaultCreatedAt = tunnelDescCreatedAt.Default.(func() time.Time)
	// tunnelDescUpdatedAt is the schema descriptor for updated_at field.
	tunnelDescUpdatedAt := tunnelMixinFields0[1].Descriptor()
	// tunnel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tunnel.DefaultUpdatedAt = tunnelDescUpdatedAt.Default.(func() time.Time)
	// tunnel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tunnel.UpdateDefaultUpdatedAt = tunnelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tunnelDescSubdomain is the schema descriptor for subdomain field.
	tunnelDescSubdomain := tunnelFields[0].Descriptor()
	// tunnel.SubdomainValidator is a validator for the "subdomain" field. It is called by the builders before save.
	tunnel.SubdomainValidator = tunnelDescSubdomain.Validators[0].(func(string) error)
	// tunnelDescRegion is the schema descriptor for region field.
	tunnelDescRegion := tunnelFields[1].Descriptor()
	// tunnel.RegionValidator is a validator for the "region" field. It is called by the builders before save.
	tunnel.RegionValidator = tunnelDescRegion.Validators[0].(func(string) error)
	// tunnelDescServiceType is the schema descriptor for service_type field.
	tunnelDescServiceType := tunnelFields[2].Descriptor()
	// tunnel.DefaultServiceType holds the default value on creation for the service_type field.
	tunnel.DefaultServiceType = tunnelDescServiceType.Default.(string)
	// tunnelDescLocalPort is the schema descriptor for local_port field.
	tunnelDescLocalPort := tunnelFields[4].Descriptor()
	// tunnel.LocalPortValidator is a validator for the "local_port" field. It is called by the builders before save.
	tunnel.LocalPortValidator = tunnelDescLocalPort.Validators[0].(func(int) error)
	// tunnelDescConnectionToken is the schema descriptor for connection_token field.
	tunnelDescConnectionToken := tunnelFields[6].Descriptor()
	// tunnel.ConnectionTokenValidator is a validator for the "connection_token" field. It is called by the builders before save.
	tunnel.ConnectionTokenValidator = tunnelDescConnectionToken.Validators[0].(func(string) error)
	// tunnelDescClientConnected is the schema descriptor for client_connected field.
	tunnelDescClientConnected := tunnelFields[8].Descriptor()
	// tunnel.DefaultClientConnected holds the default value on creation for the client_connected field.
	tunnel.DefaultClientConnected = tunnelDescClientConnected.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
}
