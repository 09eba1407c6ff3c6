package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpl-testkit/internal/config"
	"github.com/LeJamon/xrpl-testkit/internal/log"
	"github.com/LeJamon/xrpl-testkit/internal/wallet"
)

var (
	// Global flags
	configFile string
	debug      bool
	quiet      bool

	// Set by loadConfig before any subcommand runs
	cfg     *config.Config
	printer = log.NewStderrPrinter()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testkit",
	Short: "testkit - XRPL test network helpers",
	Long: `testkit derives the fixtures used to stand up local XRPL test networks:
non-colliding node ports, funded account keys, node identities and
cross-chain asset descriptions. It never talks to a running node.`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorw("command failed", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable normally suppressed debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress diagnostic output on stderr")
}

// loadConfig reads the config file and TESTKIT_ environment variables and
// applies the diagnostics and cache settings.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}
	cfg = c

	if debug || cfg.Diagnostics.Debug {
		log.OpenDebug()
	} else {
		log.CloseDebug()
	}

	if quiet || !cfg.Diagnostics.Eprint {
		printer.Disable()
	} else {
		printer.Enable()
	}

	wallet.ResizeCache(cfg.Accounts.WalletCacheSize)

	log.Debugw("configuration loaded",
		"path", cfg.GetConfigPath(),
		"peer_base", cfg.Ports.PeerBase,
		"key_type", cfg.Accounts.KeyType,
	)
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
