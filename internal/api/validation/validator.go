// Package validation enforces the server-side rules for tunnel management
// requests. Violations are reported as an array of {path, msg} entries.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tunlify/tunlify/internal/api/dto/common"
	tunneldto "github.com/tunlify/tunlify/internal/api/dto/v1/tunnel"
	"github.com/tunlify/tunlify/internal/service"
	"github.com/tunlify/tunlify/internal/tunnel"
)

// Creation accepts exactly what ingress will later route; a key that passes
// here can never be unroutable.
var (
	subdomainRegex = tunnel.SubdomainPattern
	regionRegex    = tunnel.RegionPattern
)

// Validator wraps the struct validator with tunnel-specific rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the custom tunnel rules registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
		return subdomainRegex.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

// ValidateCreateTunnel applies the catalog rules to a creation request.
func (v *Validator) ValidateCreateTunnel(req *tunneldto.CreateTunnelRequest) []common.ValidationError {
	var errs []common.ValidationError

	if !subdomainRegex.MatchString(req.Subdomain) {
		errs = append(errs, common.ValidationError{
			Path: "subdomain",
			Msg:  "must be 3-50 characters of lowercase letters, digits, or hyphens",
		})
	}

	if !regionRegex.MatchString(req.Location) {
		errs = append(errs, common.ValidationError{
			Path: "location",
			Msg:  "must be 2-10 characters of lowercase letters or digits",
		})
	}

	preset, knownService := service.LookupPreset(req.ServiceType)
	if !knownService {
		errs = append(errs, common.ValidationError{
			Path: "service_type",
			Msg:  fmt.Sprintf("unknown service type %q", req.ServiceType),
		})
	}

	protocol := req.Protocol
	if protocol == "" && knownService {
		protocol = preset.Protocol
	}
	switch protocol {
	case "", "http", "tcp", "udp":
	default:
		errs = append(errs, common.ValidationError{
			Path: "protocol",
			Msg:  "must be one of http, tcp, udp",
		})
	}

	if req.LocalPort != nil && !validPort(*req.LocalPort) {
		errs = append(errs, common.ValidationError{
			Path: "local_port",
			Msg:  "must be between 1 and 65535",
		})
	}

	if req.RemotePort != nil {
		if !validPort(*req.RemotePort) {
			errs = append(errs, common.ValidationError{
				Path: "remote_port",
				Msg:  "must be between 1 and 65535",
			})
		}
		// remote_port is null exactly for http tunnels.
		if protocol == "http" {
			errs = append(errs, common.ValidationError{
				Path: "remote_port",
				Msg:  "http tunnels do not take a remote port",
			})
		}
	}

	return errs
}

// Struct runs the plain struct-tag validation for request bindings.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validPort(p int) bool {
	return p >= 1 && p <= 65535
}
