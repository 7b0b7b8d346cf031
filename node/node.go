// Package node wires the consensus subsystems into a runnable client:
// chain context over the fork choice store, libp2p host with gossipsub and
// req/resp, chain sync, and validator duties driven by the wall clock.
package node

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leanlabs/glean/chain"
	"github.com/leanlabs/glean/clock"
	"github.com/leanlabs/glean/consensus"
	"github.com/leanlabs/glean/network"
	"github.com/leanlabs/glean/network/gossipsub"
	netsync "github.com/leanlabs/glean/network/sync"
	"github.com/leanlabs/glean/observability/logging"
	"github.com/leanlabs/glean/observability/metrics"
	"github.com/leanlabs/glean/storage/memory"
)

// Config carries everything needed to construct a node.
type Config struct {
	DevnetID         string
	GenesisTime      uint64
	ValidatorCount   uint64
	ValidatorIndices []uint64
	ListenAddr       string
	NodeKeyPath      string
	Bootnodes        []string
	MetricsPort      int
}

// Node is the top-level consensus client.
type Node struct {
	Config    Config
	Chain     *chain.Context
	Host      *network.Host
	Topics    *gossipsub.Topics
	Syncer    *netsync.Syncer
	Clock     *clock.WallClock
	Validator *ValidatorDuties

	log *slog.Logger
}

// New constructs a node: genesis state, chain context, libp2p host, gossip
// topics, syncer, and validator duties. Bootnode connections are attempted
// but failures do not abort startup.
func New(ctx context.Context, cfg Config) (*Node, error) {
	log := logging.NewComponentLogger(logging.CompNode)

	validators := consensus.GenerateValidators(int(cfg.ValidatorCount))
	genesisState, genesisBlock := consensus.GenerateGenesis(cfg.GenesisTime, validators)

	cc, err := chain.NewContext(genesisState, genesisBlock, memory.New())
	if err != nil {
		return nil, fmt.Errorf("chain context: %w", err)
	}

	h, err := network.NewHost(cfg.ListenAddr, cfg.NodeKeyPath, cfg.Bootnodes)
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}

	if err := network.ConnectBootnodes(ctx, h.P2P, cfg.Bootnodes); err != nil {
		log.Warn("bootnode connections incomplete", "err", err)
	}

	topics, err := gossipsub.JoinTopics(h.PubSub, cfg.DevnetID)
	if err != nil {
		h.Close()
		return nil, fmt.Errorf("join topics: %w", err)
	}

	syncer := netsync.NewSyncer(ctx, h.P2P, cc)

	n := &Node{
		Config: cfg,
		Chain:  cc,
		Host:   h,
		Topics: topics,
		Syncer: syncer,
		Clock:  clock.NewWallClock(cfg.GenesisTime),
		Validator: &ValidatorDuties{
			Indices: cfg.ValidatorIndices,
			Chain:   cc,
			Topics:  topics,
			log:     logging.NewComponentLogger(logging.CompValidator),
		},
		log: log,
	}

	if err := registerHandlers(n); err != nil {
		h.Close()
		return nil, err
	}

	if cfg.MetricsPort > 0 {
		go func() {
			if err := metrics.Serve(cfg.MetricsPort); err != nil {
				log.Warn("metrics server stopped", "err", err)
			}
		}()
	}

	return n, nil
}

// Close shuts down the syncer and the libp2p host.
func (n *Node) Close() error {
	n.Syncer.Stop()
	return n.Host.Close()
}
