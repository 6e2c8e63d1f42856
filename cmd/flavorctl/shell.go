package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vamsi7889/Ice-cream/internal/client"
	"github.com/Vamsi7889/Ice-cream/internal/models"
)

const shellHelp = `Commands:
  search <term>                           filter flavors by name (empty clears)
  add <name> | <ingredients> [| <allergens>]  add a flavor
  buy <flavorId>                          add a flavor to the cart
  remove <flavorId>                       remove a flavor from the cart
  refresh                                 reload flavors and cart
  help                                    show this help
  quit                                    exit`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session that keeps the flavor and cart views in sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runShell(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell reads one command per line. Failed commands are reported on the
// message board and never end the session.
func (a *app) runShell(cmd *cobra.Command, in io.Reader, out io.Writer) error {
	ctx := cmd.Context()
	term := ""

	_ = a.sync.Load(ctx)
	if err := client.Render(out, a.sync.State(), term, a.sync.Board()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nflavorctl> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		verb, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(out, shellHelp)
			continue
		case "search":
			term = rest
		case "refresh":
			_ = a.sync.Load(ctx)
		case "add":
			_, _ = a.sync.AddFlavor(ctx, parseNewFlavor(rest))
		case "buy", "remove":
			id, err := parseFlavorID(rest)
			if err != nil {
				a.sync.Board().Post(client.SectionCart, err.Error())
				break
			}
			if verb == "buy" {
				_ = a.sync.AddToCart(ctx, id)
			} else {
				_ = a.sync.RemoveFromCart(ctx, id)
			}
		default:
			fmt.Fprintf(out, "unknown command %q, try help\n", verb)
			continue
		}

		if err := client.Render(out, a.sync.State(), term, a.sync.Board()); err != nil {
			return err
		}
	}
}

// parseNewFlavor splits "name | ingredients | allergens".
func parseNewFlavor(s string) models.NewFlavor {
	parts := strings.SplitN(s, "|", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var in models.NewFlavor
	in.Name = parts[0]
	if len(parts) > 1 {
		in.Ingredients = parts[1]
	}
	if len(parts) > 2 {
		in.Allergens = &parts[2]
	}
	return in
}
