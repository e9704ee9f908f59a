package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmerch/shelfdex/internal/snapshot"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print entry counts for every structure in the snapshot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		eng, err := snapshot.Load(store)
		if err != nil {
			return err
		}

		units := 0
		for _, qty := range eng.Inventory.Levels() {
			units += qty
		}
		edges := 0
		for _, neighbors := range eng.Recommendations.Export() {
			edges += len(neighbors)
		}
		links := 0
		_, productToSuppliers, _ := eng.Supply.Export()
		for _, sids := range productToSuppliers {
			links += len(sids)
		}

		fmt.Printf("products:             %d\n", eng.Catalog.Len())
		fmt.Printf("stock units:          %d\n", units)
		fmt.Printf("trie nodes:           %d\n", eng.Search.NodeCount())
		fmt.Printf("co-purchase edges:    %d\n", edges/2)
		fmt.Printf("suppliers:            %d\n", len(eng.Supply.Suppliers()))
		fmt.Printf("supplier links:       %d\n", links)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
