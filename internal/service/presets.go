package service

// ServicePreset describes one entry of the service-type catalog. The default
// port is advisory: clients use it when the user does not name a local port.
type ServicePreset struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DefaultPort *int   `json:"default_port"`
	Protocol    string `json:"protocol"`
}

func port(p int) *int { return &p }

// servicePresets is the closed catalog of supported service types.
var servicePresets = []ServicePreset{
	{Key: "ssh", Name: "SSH", Description: "Secure Shell remote login", DefaultPort: port(22), Protocol: "tcp"},
	{Key: "rdp", Name: "RDP", Description: "Windows Remote Desktop", DefaultPort: port(3389), Protocol: "tcp"},
	{Key: "ftp", Name: "FTP", Description: "File Transfer Protocol", DefaultPort: port(21), Protocol: "tcp"},
	{Key: "smtp", Name: "SMTP", Description: "Mail submission", DefaultPort: port(25), Protocol: "tcp"},
	{Key: "pop3", Name: "POP3", Description: "Mail retrieval (POP3)", DefaultPort: port(110), Protocol: "tcp"},
	{Key: "imap", Name: "IMAP", Description: "Mail retrieval (IMAP)", DefaultPort: port(143), Protocol: "tcp"},
	{Key: "mysql", Name: "MySQL", Description: "MySQL database server", DefaultPort: port(3306), Protocol: "tcp"},
	{Key: "postgresql", Name: "PostgreSQL", Description: "PostgreSQL database server", DefaultPort: port(5432), Protocol: "tcp"},
	{Key: "mongodb", Name: "MongoDB", Description: "MongoDB database server", DefaultPort: port(27017), Protocol: "tcp"},
	{Key: "redis", Name: "Redis", Description: "Redis key-value store", DefaultPort: port(6379), Protocol: "tcp"},
	{Key: "vnc", Name: "VNC", Description: "VNC remote desktop", DefaultPort: port(5900), Protocol: "tcp"},
	{Key: "teamviewer", Name: "TeamViewer", Description: "TeamViewer remote control", DefaultPort: port(5938), Protocol: "tcp"},
	{Key: "minecraft", Name: "Minecraft", Description: "Minecraft game server", DefaultPort: port(25565), Protocol: "tcp"},
	{Key: "http", Name: "HTTP", Description: "Plain HTTP web server", DefaultPort: port(80), Protocol: "http"},
	{Key: "https", Name: "HTTPS", Description: "HTTPS web server (terminated locally)", DefaultPort: port(443), Protocol: "http"},
	{Key: "custom", Name: "Custom", Description: "Custom TCP service", DefaultPort: nil, Protocol: "tcp"},
}

// ServicePresets returns the service-type catalog.
func ServicePresets() []ServicePreset {
	out := make([]ServicePreset, len(servicePresets))
	copy(out, servicePresets)
	return out
}

// LookupPreset returns the preset for a service-type key.
func LookupPreset(key string) (ServicePreset, bool) {
	for _, p := range servicePresets {
		if p.Key == key {
			return p, true
		}
	}
	return ServicePreset{}, false
}
