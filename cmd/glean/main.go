// Command glean runs a lean consensus node: fork choice, per-slot
// justification, gossip, req/resp sync, and validator duties for the
// validator indices assigned to this node.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/leanlabs/glean/config"
	"github.com/leanlabs/glean/node"
	"github.com/leanlabs/glean/observability/logging"
)

func main() {
	app := &cli.App{
		Name:  "glean",
		Usage: "lean consensus devnet client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to genesis config.yaml",
				Value: "config.yaml",
			},
			&cli.StringFlag{
				Name:  "validators",
				Usage: "path to validators.yaml with node assignments",
				Value: "validators.yaml",
			},
			&cli.StringFlag{
				Name:  "nodes",
				Usage: "path to nodes.yaml listing bootnodes",
			},
			&cli.StringFlag{
				Name:     "name",
				Usage:    "node name used to look up validator assignments",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "listen",
				Usage: "libp2p listen multiaddr",
				Value: "/ip4/0.0.0.0/tcp/9000",
			},
			&cli.StringFlag{
				Name:  "node-key",
				Usage: "path to the persistent node key (generated if absent)",
			},
			&cli.StringFlag{
				Name:  "devnet",
				Usage: "devnet identifier used in gossip topic names",
				Value: "devnet0",
			},
			&cli.IntFlag{
				Name:  "metrics-port",
				Usage: "prometheus metrics port (0 disables)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
				Value: "info",
			},
			&cli.Uint64Flag{
				Name:  "genesis-delay",
				Usage: "seconds until genesis when the config has GENESIS_TIME=0",
				Value: 10,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logging.SetLevel(parseLevel(c.String("log-level")))

	genesisCfg, err := config.LoadGenesisConfig(c.String("config"))
	if err != nil {
		return err
	}
	genesisTime := genesisCfg.GenesisTime
	if genesisTime == 0 {
		genesisTime = uint64(time.Now().Unix()) + c.Uint64("genesis-delay")
	}

	registry, err := config.LoadValidators(c.String("validators"))
	if err != nil {
		return err
	}
	indices := registry.GetValidatorIndices(c.String("name"))

	var bootnodes []string
	if nodesPath := c.String("nodes"); nodesPath != "" {
		entries, err := config.LoadBootnodes(nodesPath)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.Name == c.String("name") {
				continue
			}
			bootnodes = append(bootnodes, entry.Multiaddr)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	n, err := node.New(ctx, node.Config{
		DevnetID:         c.String("devnet"),
		GenesisTime:      genesisTime,
		ValidatorCount:   genesisCfg.ValidatorCount,
		ValidatorIndices: indices,
		ListenAddr:       c.String("listen"),
		NodeKeyPath:      c.String("node-key"),
		Bootnodes:        bootnodes,
		MetricsPort:      c.Int("metrics-port"),
	})
	if err != nil {
		return err
	}

	return n.Run(ctx)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
