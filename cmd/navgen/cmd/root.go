package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "navgen",
	Short: "build navigation meshes from scene files",
	Long: `navgen is the command-line application accompanying constructive:
	- build navigation meshes from YAML scene descriptions,
	- write prefilled scene files to tweak (brushes, build settings),
	- run pathfinding queries against a built navmesh.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
