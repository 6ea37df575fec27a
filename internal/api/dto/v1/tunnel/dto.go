package tunnel

// CreateTunnelRequest is the body of POST /tunnels.
type CreateTunnelRequest struct {
	Subdomain   string `json:"subdomain" binding:"required"`
	Location    string `json:"location" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Protocol    string `json:"protocol,omitempty"`
	LocalPort   *int   `json:"local_port,omitempty"`
	RemotePort  *int   `json:"remote_port,omitempty"`
}

// UpdateStatusRequest is the body of PATCH /tunnels/:id/status.
type UpdateStatusRequest struct {
	Status          string `json:"status" binding:"required,oneof=active inactive"`
	ClientConnected *bool  `json:"client_connected,omitempty"`
}

// AuthRequest is the body of POST /tunnels/auth, used by clients that want
// to validate a connection token without holding a control channel.
type AuthRequest struct {
	ConnectionToken string `json:"connection_token" binding:"required,min=32,max=64"`
}

// TunnelResponse is the API view of a tunnel row.
type TunnelResponse struct {
	ID              int     `json:"id"`
	Subdomain       string  `json:"subdomain"`
	Region          string  `json:"region"`
	ServiceType     string  `json:"service_type"`
	Protocol        string  `json:"protocol"`
	LocalPort       int     `json:"local_port"`
	RemotePort      *int    `json:"remote_port,omitempty"`
	ConnectionToken string  `json:"connection_token,omitempty"`
	Status          string  `json:"status"`
	ClientConnected bool    `json:"client_connected"`
	LastConnected   *string `json:"last_connected,omitempty"`
	CreatedAt       string  `json:"created_at"`

	TunnelURL      string `json:"tunnel_url"`
	ConnectionInfo string `json:"connection_info"`
	ServiceInfo    string `json:"service_info"`
}

// CreateTunnelResponse is the body of a successful POST /tunnels.
type CreateTunnelResponse struct {
	Tunnel            TunnelResponse `json:"tunnel"`
	SetupInstructions []string       `json:"setup_instructions"`
}

// AuthResponse is the body of a successful POST /tunnels/auth.
type AuthResponse struct {
	TunnelID  int    `json:"tunnel_id"`
	Subdomain string `json:"subdomain"`
	Region    string `json:"region"`
	Protocol  string `json:"protocol"`
	LocalPort int    `json:"local_port"`
	TunnelURL string `json:"tunnel_url"`
}
