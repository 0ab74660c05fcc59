package main

import (
	"motif_mark_go/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
