// Command subvault inspects subscription trees and bridges them to NATS.
//
// Usage:
//
//	subvault [-f config.yaml] match  --tree tree.yaml TOPIC...
//	subvault [-f config.yaml] topics --tree tree.yaml
//	subvault [-f config.yaml] serve  --nats nats://127.0.0.1:4222 --metrics :9090 --topic 'home/#'
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	if err := Run(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
