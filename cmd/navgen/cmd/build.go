package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ten3roberts/constructive/scene"
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build FILE",
	Short: "build a navigation mesh from a scene file",
	Long: `Build a navigation mesh from a scene description in YAML.
Prints the resulting polygon and link counts; the navmesh itself is not
persisted (constructive does not serialize navmeshes).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		s, err := scene.Load(path)
		check(err)

		nav, err := s.Build(filepath.Dir(path))
		check(err)

		fmt.Printf("built navmesh: %d polygons (%d walkable), %d links\n",
			len(nav.Polygons()), len(nav.WalkablePolygons()), len(nav.Links()))
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)
}
