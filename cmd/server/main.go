// Minimal entrypoint for containers that only run the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/artcocktail/artcocktail/internal/server"

	_ "github.com/artcocktail/artcocktail/database/migrations"
)

func main() {
	if err := server.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
