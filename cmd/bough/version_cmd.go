package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in bough's version
	VersionMajor = 0
	// VersionMinor is the minor number in bough's version
	VersionMinor = 1
	// VersionPatch is the patch number in bough's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bough",
		Long:  `All software has versions. This is bough's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bough v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
