package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vamsi7889/Ice-cream/internal/client"
	"github.com/Vamsi7889/Ice-cream/internal/config"
	"github.com/Vamsi7889/Ice-cream/internal/rpc"
)

const (
	transportREST    = "rest"
	transportConnect = "connect"
)

// app holds state shared by every subcommand.
type app struct {
	serverURL string
	transport string
	timeout   time.Duration

	sync *client.Sync
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "flavorctl",
		Short:        "Browse ice cream flavors and manage the shared cart",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.serverURL, "url", "", "server base URL (default: FLAVORSHOP_URL)")
	root.PersistentFlags().StringVar(&a.transport, "transport", transportREST, "API transport: rest or connect")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "per-request timeout (default: FLAVORSHOP_CLIENT_TIMEOUT)")

	root.AddCommand(newFlavorsCmd(a), newCartCmd(a), newShellCmd(a))
	return root
}

func (a *app) setup() error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if a.serverURL == "" {
		a.serverURL = cfg.ServerURL
	}
	if a.timeout <= 0 {
		a.timeout = cfg.Timeout
	}

	var api client.API
	switch a.transport {
	case transportREST:
		rest, err := client.New(a.serverURL, client.WithTimeout(a.timeout))
		if err != nil {
			return err
		}
		api = rest
	case transportConnect:
		api = rpc.NewClient(&http.Client{Timeout: a.timeout}, a.serverURL)
	default:
		return fmt.Errorf("unknown transport %q: want %s or %s", a.transport, transportREST, transportConnect)
	}

	a.sync = client.NewSync(api, client.NewBoard(cfg.MessageTTL))
	return nil
}

func parseFlavorID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid flavor ID %q", arg)
	}
	return id, nil
}
