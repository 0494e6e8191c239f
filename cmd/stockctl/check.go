package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stock-portal/internal/application/dto"
	appstock "github.com/jhoicas/stock-portal/internal/application/stock"
)

func newCheckCmd(factory depsFactory) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Muestra métricas, productos críticos y productos bajo su nivel de reposición",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := factory()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = d.CriticalThreshold
			}
			if threshold < 0 {
				return fmt.Errorf("--threshold no puede ser negativo")
			}

			res := d.Loader.Load(cmd.Context())
			if !res.OK() {
				return errors.New(res.Message)
			}

			out := cmd.OutOrStdout()
			m := appstock.Metrics(res.Table)
			fmt.Fprintf(out, "Total products:    %d\n", m.TotalProducts)
			fmt.Fprintf(out, "Low stock items:   %d\n", m.LowStockCount)
			fmt.Fprintf(out, "Total stock units: %d\n", m.TotalStockUnits)

			fmt.Fprintf(out, "\nCritical (<= %d units)\n", threshold)
			printItems(out, dto.ToStockItemDTOs(appstock.CriticalItems(res.Table, threshold)))

			fmt.Fprintln(out, "\nBelow restock level")
			printItems(out, dto.ToStockItemDTOs(appstock.LowStockItems(res.Table)))
			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", appstock.DefaultCriticalThreshold, "umbral inclusivo del panel crítico")
	return cmd
}

func printItems(out io.Writer, items []dto.StockItemDTO) {
	if len(items) == 0 {
		fmt.Fprintln(out, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  PRODUCT\tSKU\tSTOCK\tRESTOCK\tSTATUS")
	for _, it := range items {
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%s\n",
			orDash(it.ProductName), orDash(it.SKU), it.AvailableStock, it.RestockLevel, it.Status)
	}
	_ = tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
