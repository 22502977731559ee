package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/slatedb/byterange-go/internal/commands"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		log.Fatal(err)
	}
}
