package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/xrpl-testkit/internal/account"
	"github.com/LeJamon/xrpl-testkit/internal/crypto"
	"github.com/LeJamon/xrpl-testkit/internal/log"
	"github.com/LeJamon/xrpl-testkit/internal/wallet"
)

var accountKeyType string

// accountView is the JSON form of an account printed by the account commands.
type accountView struct {
	Nickname  string `json:"nickname,omitempty"`
	AccountID string `json:"account_id"`
	Seed      string `json:"seed,omitempty"`
	KeyType   string `json:"key_type,omitempty"`
	PublicKey string `json:"public_key,omitempty"`
}

func newAccountView(a *account.Account) accountView {
	v := accountView{
		Nickname:  a.Nickname(),
		AccountID: a.AccountID(),
		Seed:      a.Seed(),
	}
	if w := a.Wallet(); w != nil {
		v.KeyType = w.KeyType.String()
		v.PublicKey = w.PublicKey
	}
	return v
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Create and inspect test accounts",
}

var accountNewCmd = &cobra.Command{
	Use:   "new <name>...",
	Short: "Create accounts with fresh random seeds",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyType, err := resolveKeyType(accountKeyType)
		if err != nil {
			return err
		}
		gen := wallet.NewGenerator(keyType)

		accounts := make([]*account.Account, len(args))
		var g errgroup.Group
		for i, name := range args {
			g.Go(func() error {
				a, err := account.CreateWith(gen, name)
				if err != nil {
					return err
				}
				accounts[i] = a
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		views := make([]accountView, len(accounts))
		for i, a := range accounts {
			views[i] = newAccountView(a)
			printer.Printf("created %s as %s", a, a.AccountID())
		}
		log.Debugw("accounts created", "count", len(views), "key_type", keyType)
		return writeJSON(cmd, views)
	},
}

var accountFromSeedCmd = &cobra.Command{
	Use:   "from-seed <nickname> <seed>",
	Short: "Derive an account from a family seed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := account.FromSeed(args[0], args[1])
		if err != nil {
			return err
		}
		return writeJSON(cmd, newAccountView(a))
	},
}

var accountHexCmd = &cobra.Command{
	Use:   "hex <address>",
	Short: "Print the hex encoding of an address string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := account.New(args[0], "", "")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.AccountIDHex())
		return nil
	},
}

func init() {
	accountNewCmd.Flags().StringVar(&accountKeyType, "key-type", "", "secp256k1 or ed25519 (default from accounts.key_type)")

	accountCmd.AddCommand(accountNewCmd, accountFromSeedCmd, accountHexCmd)
	rootCmd.AddCommand(accountCmd)
}

// resolveKeyType parses flag, falling back to the configured key type.
func resolveKeyType(flag string) (crypto.KeyType, error) {
	if flag != "" {
		return crypto.ParseKeyType(flag)
	}
	return cfg.KeyType()
}
