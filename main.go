package main

import "github.com/building-physics/goairnet/cmd"

func main() {
	cmd.Execute()
}
