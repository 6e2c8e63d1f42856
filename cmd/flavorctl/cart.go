package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Vamsi7889/Ice-cream/internal/client"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the shared cart",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sync.FetchCart(cmd.Context()); err != nil {
				return err
			}
			return client.RenderCart(cmd.OutOrStdout(), a.sync.State().Cart)
		},
	}

	add := &cobra.Command{
		Use:   "add <flavorId>",
		Short: "Add one flavor to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutateCart(cmd, args[0], a.sync.AddToCart)
		},
	}

	remove := &cobra.Command{
		Use:   "remove <flavorId>",
		Short: "Remove every entry of a flavor from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutateCart(cmd, args[0], a.sync.RemoveFromCart)
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func (a *app) mutateCart(cmd *cobra.Command, arg string, mutate func(context.Context, int64) error) error {
	id, err := parseFlavorID(arg)
	if err != nil {
		return err
	}
	if err := mutate(cmd.Context(), id); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := client.RenderMessages(out, a.sync.Board().Messages(client.SectionCart)); err != nil {
		return err
	}
	return client.RenderCart(out, a.sync.State().Cart)
}
