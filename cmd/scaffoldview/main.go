package main

import "github.com/philipparndt/scaffoldview/cmd"

func main() {
	cmd.Execute()
}
