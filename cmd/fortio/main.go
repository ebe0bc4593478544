/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/syrte/fortio/cmd/fortio/cmd"
)

func main() {
	cmd.Execute()
}
