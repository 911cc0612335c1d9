package main

import "plovermd/cmd/plovermd-cli/cmd"

func main() {
	cmd.Execute()
}
