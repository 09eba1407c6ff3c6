package config

import (
	"fmt"
	"io"
	"strings"
)

// PortConfig is one rippled port section like [port_rpc_admin_local].
type PortConfig struct {
	Name     string   `toml:"-" mapstructure:"-"`
	Port     int      `toml:"port" mapstructure:"port"`
	IP       string   `toml:"ip" mapstructure:"ip"`
	Protocol string   `toml:"protocol" mapstructure:"protocol"`
	Admin    []string `toml:"admin" mapstructure:"admin"`
}

// HasPeer returns true if the port supports peer protocol
func (p *PortConfig) HasPeer() bool {
	return containsProtocol(p.Protocol, "peer")
}

// IsAdminPort returns true if the port has administrative access configured
func (p *PortConfig) IsAdminPort() bool {
	return len(p.Admin) > 0
}

// GetBindAddress returns the full bind address (IP:Port)
func (p *PortConfig) GetBindAddress() string {
	return fmt.Sprintf("%s:%d", p.IP, p.Port)
}

// Validate performs validation on the port configuration
func (p *PortConfig) Validate() error {
	if p.Port < 1 || p.Port > 65535 {
		return fmt.Errorf("port number must be between 1 and 65535, got %d", p.Port)
	}
	if p.IP == "" {
		return fmt.Errorf("IP address is required")
	}
	if p.Protocol == "" {
		return fmt.Errorf("protocol is required")
	}
	return p.validateProtocols()
}

// WriteTo writes the section in rippled.cfg syntax.
func (p *PortConfig) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", p.Name)
	fmt.Fprintf(&b, "port = %d\n", p.Port)
	fmt.Fprintf(&b, "ip = %s\n", p.IP)
	if p.IsAdminPort() {
		fmt.Fprintf(&b, "admin = %s\n", strings.Join(p.Admin, ","))
	}
	fmt.Fprintf(&b, "protocol = %s\n", p.Protocol)

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// validateProtocols validates that protocol combinations are valid
func (p *PortConfig) validateProtocols() error {
	hasWebSocket := false
	hasNonWebSocket := false
	peerCount := 0

	for _, protocol := range parseProtocols(p.Protocol) {
		switch protocol {
		case "ws", "wss":
			hasWebSocket = true
		case "http", "https", "grpc":
			hasNonWebSocket = true
		case "peer":
			peerCount++
		default:
			return fmt.Errorf("unknown protocol: %s", protocol)
		}
	}

	if hasWebSocket && hasNonWebSocket {
		return fmt.Errorf("websocket and non-websocket protocols cannot be combined on the same port")
	}
	if peerCount > 1 {
		return fmt.Errorf("only one peer protocol can be specified per port")
	}
	return nil
}

// parseProtocols parses a comma-separated protocol string
func parseProtocols(protocolStr string) []string {
	return strings.FieldsFunc(protocolStr, func(r rune) bool {
		return r == ',' || r == ' '
	})
}

func containsProtocol(protocolStr, protocol string) bool {
	for _, p := range parseProtocols(protocolStr) {
		if p == protocol {
			return true
		}
	}
	return false
}
