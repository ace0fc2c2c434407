package main

import (
	"os"

	"github.com/afferafatima/Firewall-Simulator/cmd/firewallsim/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
