package main

import (
	"log"

	"github.com/frankonly/chainkit/cli"
)

func main() {
	if err := cli.Init(); err != nil {
		log.Fatalf("failed to initialize chainctl: %v", err)
	}

	cli.Execute()
}
