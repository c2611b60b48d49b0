package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in treelearn's version
	VersionMajor = 0
	// VersionMinor is the minor number in treelearn's version
	VersionMinor = 1
	// VersionPatch is the patch number in treelearn's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of treelearn",
		Long:  `All software has versions. This is treelearn's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("treelearn v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
