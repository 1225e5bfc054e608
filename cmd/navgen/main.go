package main

import "github.com/ten3roberts/constructive/cmd/navgen/cmd"

func main() {
	cmd.Execute()
}
