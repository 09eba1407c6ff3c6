package config

import "github.com/spf13/viper"

// Defaults mirror the port layout of the standalone test networks.
const (
	DefaultMaxConfigs      = 10
	DefaultAdminIP         = "127.0.0.1"
	DefaultKeyType         = "ed25519"
	DefaultWalletCacheSize = 256
)

// setDefaults sets every default value
func setDefaults(v *viper.Viper) {
	v.SetDefault("ports.peer_base", DefaultPortBases.Peer)
	v.SetDefault("ports.http_admin_base", DefaultPortBases.HTTPAdmin)
	v.SetDefault("ports.ws_public_base", DefaultPortBases.WSPublic)
	v.SetDefault("ports.max_configs", DefaultMaxConfigs)
	v.SetDefault("ports.admin_ip", DefaultAdminIP)

	v.SetDefault("accounts.key_type", DefaultKeyType)
	v.SetDefault("accounts.wallet_cache_size", DefaultWalletCacheSize)

	v.SetDefault("diagnostics.eprint", true)
	v.SetDefault("diagnostics.debug", false)
}
