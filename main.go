package main

import "github.com/starkctl/starkctl/cmd"

func main() {
	cmd.Execute()
}
