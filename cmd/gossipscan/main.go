package main

import (
	"gossipscan/internal/app"

	"github.com/charmbracelet/log"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal("scan terminated", "error", err)
	}
}
