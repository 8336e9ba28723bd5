package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/kodurunani99/Automated-Code-review/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Execute(ctx)
}
