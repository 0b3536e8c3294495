package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"notal/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the notal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("notal " + version.Full())
	},
}
