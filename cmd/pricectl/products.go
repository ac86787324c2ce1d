package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List products known to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := openServices()
			if err != nil {
				return err
			}

			products, err := svc.prices.Products(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(products) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("No products recorded yet."))
				return nil
			}
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%d products", len(products))))
			for _, p := range products {
				fmt.Fprintf(out, "  • %s\n", p)
			}
			return nil
		},
	}
}
