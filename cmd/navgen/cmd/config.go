package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ten3roberts/constructive/scene"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "write a prefilled scene file",
	Long: `Write a scene description in YAML format, prefilled with default
build settings and a single unit cube.

If FILE is not provided, 'scene.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "scene.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		check(scene.Default().Save(path))
		fmt.Printf("scene written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
