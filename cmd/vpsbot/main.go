package main

import (
	"github.com/mchmarny/vpsbot/pkg/cli"
)

func main() {
	cli.Execute()
}
