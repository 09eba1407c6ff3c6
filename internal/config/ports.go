package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPortRange is returned when port bases produce overlapping or
// out-of-range ports.
var ErrPortRange = errors.New("invalid port range")

const maxPort = 65535

// Port section names in a generated rippled.cfg.
const (
	SectionPeer          = "port_peer"
	SectionRPCAdminLocal = "port_rpc_admin_local"
	SectionWSPublic      = "port_ws_public"
	SectionWSAdminLocal  = "port_ws_admin_local"
)

// PortBases are the first ports of each service. Node config i uses
// Peer+i, HTTPAdmin+i, and the pair WSPublic+2i, WSPublic+2i+1.
type PortBases struct {
	Peer      int
	HTTPAdmin int
	WSPublic  int
}

// DefaultPortBases are the bases used by NewPorts.
var DefaultPortBases = PortBases{
	Peer:      51235,
	HTTPAdmin: 5005,
	WSPublic:  6005,
}

// Ports are the four listening ports of one node config. Configs with
// distinct indices get disjoint ports, so they can run side by side.
type Ports struct {
	PeerPort      int
	HTTPAdminPort int
	WSPublicPort  int
	WSAdminPort   int
}

// NewPorts returns the ports of node config cfgIndex using DefaultPortBases.
func NewPorts(cfgIndex int) Ports {
	return DefaultPortBases.Ports(cfgIndex)
}

// Ports returns the ports of node config cfgIndex.
func (b PortBases) Ports(cfgIndex int) Ports {
	return Ports{
		PeerPort:      b.Peer + cfgIndex,
		HTTPAdminPort: b.HTTPAdmin + cfgIndex,
		WSPublicPort:  b.WSPublic + 2*cfgIndex,
		// the admin websocket shares the public base
		WSAdminPort: b.WSPublic + 2*cfgIndex + 1,
	}
}

type portRange struct {
	name   string
	lo, hi int
}

// Validate checks that indices [0, maxConfigs) yield ports inside
// 1..65535 and that no two services can collide.
func (b PortBases) Validate(maxConfigs int) error {
	if maxConfigs < 1 {
		return fmt.Errorf("%w: max configs must be positive, got %d", ErrPortRange, maxConfigs)
	}

	ranges := []portRange{
		{name: "peer", lo: b.Peer, hi: b.Peer + maxConfigs - 1},
		{name: "http admin", lo: b.HTTPAdmin, hi: b.HTTPAdmin + maxConfigs - 1},
		{name: "websocket", lo: b.WSPublic, hi: b.WSPublic + 2*maxConfigs - 1},
	}

	for _, r := range ranges {
		if r.lo < 1 || r.hi > maxPort {
			return fmt.Errorf("%w: %s ports %d-%d outside 1-%d", ErrPortRange, r.name, r.lo, r.hi, maxPort)
		}
	}
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			a, c := ranges[i], ranges[j]
			if a.lo <= c.hi && c.lo <= a.hi {
				return fmt.Errorf("%w: %s ports %d-%d overlap %s ports %d-%d",
					ErrPortRange, a.name, a.lo, a.hi, c.name, c.lo, c.hi)
			}
		}
	}
	return nil
}

// Numbers returns the four ports in peer, http admin, ws public, ws admin
// order.
func (p Ports) Numbers() [4]int {
	return [4]int{p.PeerPort, p.HTTPAdminPort, p.WSPublicPort, p.WSAdminPort}
}

// Sections returns the rippled port sections for p. Admin ports bind to
// and only admit adminIP.
func (p Ports) Sections(adminIP string) []PortConfig {
	return []PortConfig{
		{Name: SectionPeer, Port: p.PeerPort, IP: "0.0.0.0", Protocol: "peer"},
		{Name: SectionRPCAdminLocal, Port: p.HTTPAdminPort, IP: adminIP, Protocol: "http", Admin: []string{adminIP}},
		{Name: SectionWSPublic, Port: p.WSPublicPort, IP: adminIP, Protocol: "ws"},
		{Name: SectionWSAdminLocal, Port: p.WSAdminPort, IP: adminIP, Protocol: "ws", Admin: []string{adminIP}},
	}
}

// WriteStanza writes the [server] section and the port sections of a
// rippled.cfg for p. Nothing is written unless every section is valid.
func (p Ports) WriteStanza(w io.Writer, adminIP string) error {
	sections := p.Sections(adminIP)
	if err := validateSections(sections); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("[server]\n")
	for _, s := range sections {
		b.WriteString(s.Name)
		b.WriteString("\n")
	}
	for i := range sections {
		b.WriteString("\n")
		if _, err := sections[i].WriteTo(&b); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// validateSections checks each section and the rules that span sections:
// one peer port per server and no two sections on the same address.
func validateSections(sections []PortConfig) error {
	peers := 0
	bound := make(map[string]string, len(sections))
	for i := range sections {
		s := &sections[i]
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		if s.HasPeer() {
			peers++
		}
		addr := s.GetBindAddress()
		if other, dup := bound[addr]; dup {
			return fmt.Errorf("%w: %s and %s both bind %s", ErrPortRange, other, s.Name, addr)
		}
		bound[addr] = s.Name
	}
	if peers > 1 {
		return fmt.Errorf("%w: %d peer ports configured, at most one allowed", ErrPortRange, peers)
	}
	return nil
}
