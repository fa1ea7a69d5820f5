package main

import (
	"log"

	"github.com/hsiuhsiu/ctmsg-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("ctmsg: %v", err)
	}
}
