package main

import (
	"mirrortidy/cmd"
)

func main() {
	cmd.Execute()
}
