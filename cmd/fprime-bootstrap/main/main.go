package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/arthur-debert/fprime-bootstrap/cmd/fprime-bootstrap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
