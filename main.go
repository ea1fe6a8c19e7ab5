// Package main is the entry point for the mutavec CLI.
package main

import "mutavec.dev/pkg/mutavec/cmd"

func main() {
	cmd.Execute()
}
