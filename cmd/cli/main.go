// Package main is the entry point for the battlegear administration CLI.
package main

import "os"

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
