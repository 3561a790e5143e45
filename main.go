package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/cartcheck/internal/app"
)

func main() {
	application := app.New()

	// Run the CLI to completion, then flush instrumentation before exiting.
	code := application.Run(context.Background(), os.Args[1:])

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)

	os.Exit(code)
}
