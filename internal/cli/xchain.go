package cli

import (
	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpl-testkit/internal/amount"
	"github.com/LeJamon/xrpl-testkit/internal/xchain"
)

var xchainFlags struct {
	main, side               string
	mainValue, sideValue     string
	mainPenalty, sidePenalty string
	lockingDoor, issuingDoor string
}

// xchainView is the JSON form of a cross-chain asset.
type xchainView struct {
	MainAsset         amount.Amount  `json:"main_asset"`
	SideAsset         amount.Amount  `json:"side_asset"`
	MainRefundPenalty amount.Amount  `json:"main_refund_penalty"`
	SideRefundPenalty amount.Amount  `json:"side_refund_penalty"`
	Bridge            *xchain.Bridge `json:"bridge,omitempty"`
}

var xchainAssetCmd = &cobra.Command{
	Use:   "xchain-asset",
	Short: "Describe an asset moved across a cross-chain bridge",
	Long: `Build the mainchain and sidechain amounts of a bridged asset. Assets are
given as XRP or CUR/issuer. When both door accounts are given the bridge
descriptor is printed too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := xchainFlags
		mainIssue, err := amount.ParseIssue(f.main)
		if err != nil {
			return err
		}
		sideIssue, err := amount.ParseIssue(f.side)
		if err != nil {
			return err
		}

		asset, err := xchain.NewAsset(mainIssue, sideIssue, f.mainValue, f.sideValue, f.mainPenalty, f.sidePenalty)
		if err != nil {
			return err
		}

		view := xchainView{
			MainAsset:         asset.MainAsset,
			SideAsset:         asset.SideAsset,
			MainRefundPenalty: asset.MainRefundPenalty,
			SideRefundPenalty: asset.SideRefundPenalty,
		}
		if f.lockingDoor != "" && f.issuingDoor != "" {
			b := asset.Bridge(f.lockingDoor, f.issuingDoor)
			view.Bridge = &b
		}
		return writeJSON(cmd, view)
	},
}

func init() {
	flags := xchainAssetCmd.Flags()
	flags.StringVar(&xchainFlags.main, "main", "XRP", "mainchain asset")
	flags.StringVar(&xchainFlags.side, "side", "XRP", "sidechain asset")
	flags.StringVar(&xchainFlags.mainValue, "main-value", "0", "mainchain value")
	flags.StringVar(&xchainFlags.sideValue, "side-value", "0", "sidechain value")
	flags.StringVar(&xchainFlags.mainPenalty, "main-penalty", "0", "mainchain refund penalty")
	flags.StringVar(&xchainFlags.sidePenalty, "side-penalty", "0", "sidechain refund penalty")
	flags.StringVar(&xchainFlags.lockingDoor, "locking-door", "", "locking chain door account")
	flags.StringVar(&xchainFlags.issuingDoor, "issuing-door", "", "issuing chain door account")

	rootCmd.AddCommand(xchainAssetCmd)
}
