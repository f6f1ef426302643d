package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/sarchlab/saltid"
	"github.com/spf13/cobra"
)

var partitionCmd = &cobra.Command{
	Use:   "partition [identifier]",
	Short: "Resolve the partition (salt) an identifier belongs to.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			log.Fatalf("Error: %s is not an identifier.", args[0])
		}

		fmt.Println(id % saltid.MaxSalts)
	},
}

func init() {
	rootCmd.AddCommand(partitionCmd)
}
