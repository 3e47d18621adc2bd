//go:build cli
// +build cli

package main

import (
	_ "ashwi.GO/custom"

	"ashwi.GO/cmd"
	"ashwi.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
