package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/arl/gogeo/f32/d3"
	"github.com/spf13/cobra"

	"github.com/ten3roberts/constructive/astar"
	"github.com/ten3roberts/constructive/scene"
)

var fromVal, toVal string

// pathCmd represents the path command.
var pathCmd = &cobra.Command{
	Use:   "path FILE",
	Short: "find a path across a scene's navmesh",
	Long: `Build the navmesh described by FILE, then search it for a path
between --from and --to, printing the resulting waypoints.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		fx, fy, fz, err := parseVec3Flag("from", fromVal)
		check(err)
		tx, ty, tz, err := parseVec3Flag("to", toVal)
		check(err)

		s, err := scene.Load(path)
		check(err)

		nav, err := s.Build(filepath.Dir(path))
		check(err)

		from := d3.Vec3{fx, fy, fz}
		to := d3.Vec3{tx, ty, tz}

		waypoints, ok := astar.Run(nav, from, to, euclidean)
		if !ok {
			fmt.Println("no path found")
			return
		}

		for i, w := range waypoints {
			fmt.Printf("%d: polygon %d at %v\n", i, w.TargetPolygon, w.Point)
		}
	},
}

func euclidean(a, b d3.Vec3) float32 {
	return a.Dist(b)
}

func init() {
	RootCmd.AddCommand(pathCmd)

	pathCmd.Flags().StringVar(&fromVal, "from", "", "start point, \"x,y,z\" (required)")
	pathCmd.Flags().StringVar(&toVal, "to", "", "end point, \"x,y,z\" (required)")
	pathCmd.MarkFlagRequired("from")
	pathCmd.MarkFlagRequired("to")
}
