package cmd

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/openmerch/shelfdex/internal/snapshot"
)

var queryCmd = &cobra.Command{
	Use:   "query [document] [jsonpath]",
	Short: "Run a JSONPath query against one snapshot document",
	Long: `Run a JSONPath query against one of the snapshot documents
(products, inventory, recommendations, supply_chain), e.g.:

  shelfdex query products '$.*.name'
  shelfdex query supply_chain '$.product_to_suppliers.p1'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		data, err := store.ReadDoc(args[0])
		if errors.Is(err, snapshot.ErrDocNotFound) {
			return fmt.Errorf("no %s document in store", args[0])
		}
		if err != nil {
			return err
		}

		doc, err := oj.Parse(data)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		x, err := jp.ParseString(args[1])
		if err != nil {
			return fmt.Errorf("invalid jsonpath '%s': %w", args[1], err)
		}
		for _, result := range x.Get(doc) {
			fmt.Println(oj.JSON(result, &ojg.Options{Sort: true}))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
