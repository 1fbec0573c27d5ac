package main

import "github.com/ElsiKora/Setup-Wizard-sub001/cmd"

func main() {
	cmd.Execute()
}
