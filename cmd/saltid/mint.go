package main

import (
	"fmt"
	"log"

	"github.com/sarchlab/saltid"
	"github.com/sarchlab/saltid/recording"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var mintSalt uint64
var mintCount int
var mintRecordPath string

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint identifiers from one partition.",
	Long: "`mint --salt [salt] --count [n]` mints n identifiers from the " +
		"partition tagged by the salt. With --record, every allocation is " +
		"stored in a SQLite database.",
	Run: func(cmd *cobra.Command, args []string) {
		if mintSalt >= saltid.MaxSalts {
			log.Fatalf("Error: salt must be below %d.", saltid.MaxSalts)
		}

		generator := saltid.NewGenerator(saltid.Salt(mintSalt))

		if mintRecordPath != "" {
			writer := recording.NewWriter(mintRecordPath)
			generator.AcceptHook(recording.NewHook(writer))
		}

		for i := 0; i < mintCount; i++ {
			fmt.Println(generator.Next())
		}

		atexit.Exit(0)
	},
}

func init() {
	mintCmd.Flags().Uint64Var(&mintSalt, "salt", 0,
		"salt of the partition to mint from")
	mintCmd.Flags().IntVar(&mintCount, "count", 1,
		"number of identifiers to mint")
	mintCmd.Flags().StringVar(&mintRecordPath, "record", "",
		"record allocations into this SQLite database")

	rootCmd.AddCommand(mintCmd)
}
