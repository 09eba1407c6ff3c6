package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpl-testkit/internal/config"
)

var portsStanza bool

var portsCmd = &cobra.Command{
	Use:   "ports [index...]",
	Short: "Show the ports of node configs",
	Long: `Print the peer, admin HTTP, public websocket and admin websocket ports
of each node config index. Without arguments every index below
ports.max_configs is shown. With --stanza the matching rippled.cfg
[server] and port sections are printed instead.`,
	RunE: runPorts,
}

func init() {
	portsCmd.Flags().BoolVar(&portsStanza, "stanza", false, "print rippled.cfg port sections")
	rootCmd.AddCommand(portsCmd)
}

func runPorts(cmd *cobra.Command, args []string) error {
	indices, err := parseIndices(args, cfg.Ports.MaxConfigs)
	if err != nil {
		return err
	}
	bases := cfg.PortBases()
	out := cmd.OutOrStdout()

	if portsStanza {
		for i, index := range indices {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "# node config %d\n", index)
			if err := bases.Ports(index).WriteStanza(out, cfg.Ports.AdminIP); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tPEER\tHTTP_ADMIN\tWS_PUBLIC\tWS_ADMIN")
	for _, index := range indices {
		p := bases.Ports(index)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\n", index, p.PeerPort, p.HTTPAdminPort, p.WSPublicPort, p.WSAdminPort)
	}
	return tw.Flush()
}

// parseIndices parses config indices, all of [0, maxConfigs) when none are
// given. Indices outside that range could collide with another config.
func parseIndices(args []string, maxConfigs int) ([]int, error) {
	if len(args) == 0 {
		indices := make([]int, maxConfigs)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	indices := make([]int, 0, len(args))
	for _, arg := range args {
		index, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config index %q: %w", arg, err)
		}
		if index < 0 || index >= maxConfigs {
			return nil, fmt.Errorf("%w: config index %d outside 0-%d", config.ErrPortRange, index, maxConfigs-1)
		}
		indices = append(indices, index)
	}
	return indices, nil
}
