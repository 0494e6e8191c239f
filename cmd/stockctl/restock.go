package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-portal/internal/application/restock"
)

func newRestockCmd(factory depsFactory) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "restock",
		Short: "Envía los productos del alcance al webhook de reposición (un solo intento)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := factory()
			if err != nil {
				return err
			}
			res, err := d.Restock.Trigger(cmd.Context(), scope)
			if err != nil {
				return err
			}
			if !res.Success {
				return errors.New(res.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d items)\n", res.Message, res.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", restock.ScopeCritical, "alcance: critical | low_stock")
	return cmd
}
