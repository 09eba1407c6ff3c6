package config

import (
	"fmt"

	"github.com/LeJamon/xrpl-testkit/internal/crypto"
)

// Config is the harness configuration.
type Config struct {
	Ports       PortsConfig       `toml:"ports" mapstructure:"ports"`
	Accounts    AccountsConfig    `toml:"accounts" mapstructure:"accounts"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" mapstructure:"diagnostics"`

	configPath string
}

// PortsConfig is the [ports] section: the bases every node's ports are
// offset from and how many node configs may run side by side.
type PortsConfig struct {
	PeerBase      int    `toml:"peer_base" mapstructure:"peer_base"`
	HTTPAdminBase int    `toml:"http_admin_base" mapstructure:"http_admin_base"`
	WSPublicBase  int    `toml:"ws_public_base" mapstructure:"ws_public_base"`
	MaxConfigs    int    `toml:"max_configs" mapstructure:"max_configs"`
	AdminIP       string `toml:"admin_ip" mapstructure:"admin_ip"`
}

// AccountsConfig is the [accounts] section.
type AccountsConfig struct {
	KeyType         string `toml:"key_type" mapstructure:"key_type"`
	WalletCacheSize int    `toml:"wallet_cache_size" mapstructure:"wallet_cache_size"`
}

// DiagnosticsConfig is the [diagnostics] section.
type DiagnosticsConfig struct {
	// Eprint enables the stderr diagnostic printer.
	Eprint bool `toml:"eprint" mapstructure:"eprint"`
	// Debug enables debug-level structured logging.
	Debug bool `toml:"debug" mapstructure:"debug"`
}

// PortBases returns the configured port bases.
func (c *Config) PortBases() PortBases {
	return PortBases{
		Peer:      c.Ports.PeerBase,
		HTTPAdmin: c.Ports.HTTPAdminBase,
		WSPublic:  c.Ports.WSPublicBase,
	}
}

// KeyType returns the parsed default key type for new accounts.
func (c *Config) KeyType() (crypto.KeyType, error) {
	return crypto.ParseKeyType(c.Accounts.KeyType)
}

// GetConfigPath returns the file the config was read from, empty when only
// defaults and environment were used.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Ports.MaxConfigs < 1 {
		return fmt.Errorf("ports.max_configs must be positive, got %d", c.Ports.MaxConfigs)
	}
	if err := c.PortBases().Validate(c.Ports.MaxConfigs); err != nil {
		return fmt.Errorf("ports: %w", err)
	}
	if c.Ports.AdminIP == "" {
		return fmt.Errorf("ports.admin_ip is required")
	}
	if _, err := c.KeyType(); err != nil {
		return fmt.Errorf("accounts.key_type: %w", err)
	}
	if c.Accounts.WalletCacheSize < 1 {
		return fmt.Errorf("accounts.wallet_cache_size must be positive, got %d", c.Accounts.WalletCacheSize)
	}
	return nil
}
