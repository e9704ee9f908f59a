package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmerch/shelfdex/internal/snapshot"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the stored snapshot survives a save/load round-trip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := snapshot.Verify(store); err != nil {
			return err
		}
		fmt.Println("snapshot round-trip OK")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
