package main

import (
	"github.com/smartcart-labs/smartcart/cmd"
)

func main() {
	cmd.Execute()
}
