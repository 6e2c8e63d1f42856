package main

import (
	"github.com/spf13/cobra"

	"github.com/Vamsi7889/Ice-cream/internal/client"
	"github.com/Vamsi7889/Ice-cream/internal/models"
)

func newFlavorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flavors",
		Short: "List and add flavors",
	}
	cmd.AddCommand(newFlavorsListCmd(a), newFlavorsAddCmd(a))
	return cmd
}

func newFlavorsListCmd(a *app) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List flavors, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sync.FetchFlavors(cmd.Context()); err != nil {
				return err
			}
			return client.RenderFlavors(cmd.OutOrStdout(), a.sync.Filtered(search))
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name filter")
	return cmd
}

func newFlavorsAddCmd(a *app) *cobra.Command {
	var in models.NewFlavor
	var allergens string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new flavor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("allergens") {
				in.Allergens = &allergens
			}
			if _, err := a.sync.AddFlavor(cmd.Context(), in); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := client.RenderMessages(out, a.sync.Board().Messages(client.SectionFlavors)); err != nil {
				return err
			}
			return client.RenderFlavors(out, a.sync.State().Flavors)
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "flavor name")
	cmd.Flags().StringVar(&in.Ingredients, "ingredients", "", "ingredient list")
	cmd.Flags().StringVar(&allergens, "allergens", "", "allergen notes")
	return cmd
}
