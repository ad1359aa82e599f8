package main

import (
	"os"

	"cofau/cmd/cofau/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
