// lockicon writes icon16, icon48 and icon128 for the browser extension into
// the working directory.
//
// Usage: go run ./cmd/lockicon [-variant raster|vector] [-out dir] [-minify-svg]
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/maxhully/lockicon"
)

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("lockicon", flag.ContinueOnError)
	cfg, err := lockicon.ParseConfig(fs, args)
	if err != nil {
		return err
	}
	gen, err := lockicon.NewGenerator(cfg, stdout)
	if err != nil {
		return err
	}
	artifacts, err := gen.Generate(ctx)
	if err != nil {
		return err
	}
	lockicon.PrintSummary(stdout, artifacts)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}
