// Command joltage reads banks of digits, one per line, and prints the
// total of the largest k-digit selections for each requested k.
//
//	joltage input.txt              # k=2 and k=12
//	joltage -k 3 -k 5 --strategy=stack < input.txt
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"go.ntppool.org/common/logger"
)

func init() {
	logger.ConfigPrefix = "JOLTAGE"
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	parser, err := kong.New(&CLI{},
		kong.Name("joltage"),
		kong.Description("Largest order-preserving digit selections, summed over banks"),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.UsageOnError(),
	)
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	err = kctx.Run()
	parser.FatalIfErrorf(err)
}
