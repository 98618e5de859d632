package main

import (
	"log"

	"github.com/fiscalia/fiscalia-api/apps/api/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
