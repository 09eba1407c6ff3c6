package cli

import (
	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpl-testkit/internal/account"
)

var nodeKeyType string

// nodeView is the JSON form of a generated node identity.
type nodeView struct {
	account.Keypair
	NodeID string `json:"node_id"`
}

var keypairCmd = &cobra.Command{
	Use:   "keypair",
	Short: "Generate key pairs",
}

var keypairNodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Generate a random node identity",
	Long: `Generate a random node key pair. The public key is printed as a base58
node public key, the secret key as uppercase hex, followed by the node ID.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyType, err := resolveKeyType(nodeKeyType)
		if err != nil {
			return err
		}
		kp, err := account.NewNodeKeypair(keyType)
		if err != nil {
			return err
		}
		nodeID, err := account.NodeID(kp)
		if err != nil {
			return err
		}
		printer.Print("generated node", kp.PublicKey)
		return writeJSON(cmd, nodeView{Keypair: kp, NodeID: nodeID})
	},
}

func init() {
	keypairNodeCmd.Flags().StringVar(&nodeKeyType, "key-type", "", "secp256k1 or ed25519 (default from accounts.key_type)")

	keypairCmd.AddCommand(keypairNodeCmd)
	rootCmd.AddCommand(keypairCmd)
}
