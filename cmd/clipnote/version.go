package main

import "fmt"

// version is overridden at build time via -ldflags.
var version = "dev"

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "clipnote %s\n", version)
	return nil
}
