package main

import "github.com/aumai/dhansetu/cmd"

func main() {
	cmd.Execute()
}
