package main

import (
	"github.com/smartlms/smartlms-cli/cmd"
)

func main() {
	cmd.Run()
}
