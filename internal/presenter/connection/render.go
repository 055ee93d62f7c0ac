package connection

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func Render(w io.Writer, s State) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	backend := "disconnected"
	if s.BackendConnected {
		backend = "connected\t" + s.Principal
	}
	fmt.Fprintf(tw, "Internet Identity:\t%s\n", backend)

	wallet := "disconnected"
	if s.WalletConnected {
		wallet = fmt.Sprintf("connected\t%s (%s)", s.Account, s.Network)
	}
	fmt.Fprintf(tw, "Wallet:\t%s\n", wallet)
	if s.WalletConnected && s.Balance != "" {
		fmt.Fprintf(tw, "Balance:\t%s ETH\n", s.Balance)
	}

	fmt.Fprintf(tw, "Status:\t%s\n", s.Combination.Description())

	if s.Banner.Phase != PhaseIdle && s.Banner.Phase != "" {
		fmt.Fprintf(tw, "[%s]\t%s\n", s.Banner.Phase, s.Banner.Message)
	}

	return tw.Flush()
}
