// Package main is the entry point for the vmdeploy CLI.
//
// vmdeploy provisions a sample Linux VM on Azure: it creates a resource
// group, submits an ARM template deployment carrying the operator's SSH
// public key, and prints how to connect. Deployed resources are billed
// until destroyed; vmdeploy never tears them down unless asked.
//
// Commands: deploy, destroy, init, keygen, version, completion.
//
// For detailed usage information, run:
//
//	vmdeploy --help
package main

import (
	"fmt"
	"os"

	"github.com/azsamples/vmdeploy/cmd/vmdeploy/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
