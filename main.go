// Package main is the entry point for the typepath CLI.
package main

import "typepath.dev/pkg/typepath/cmd"

func main() {
	cmd.Execute()
}
