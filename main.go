package main

import "github.com/mawngo/mincluster/cmd"

func main() {
	cmd.NewCLI().Execute()
}
