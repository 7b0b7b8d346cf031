// Package chain bundles the chain store, vote pool, and fork choice store
// into a single context with the lifecycle of one node process. The network
// layer delivers blocks and votes here; proposers and the duty loop read
// head, checkpoints, and packable votes back out.
package chain

import (
	"fmt"
	"log/slog"

	"github.com/leanlabs/glean/consensus"
	"github.com/leanlabs/glean/forkchoice"
	"github.com/leanlabs/glean/observability/logging"
	"github.com/leanlabs/glean/observability/metrics"
	"github.com/leanlabs/glean/storage"
	"github.com/leanlabs/glean/types"
	"github.com/leanlabs/glean/votepool"
)

// Context owns the consensus view of one node.
type Context struct {
	Storage storage.Store
	Pool    *votepool.Pool
	FC      *forkchoice.Store

	log *slog.Logger
}

// NewContext initializes the chain context from a genesis (state, block) pair.
func NewContext(state *types.State, genesisBlock *types.Block, store storage.Store) (*Context, error) {
	fc, err := forkchoice.NewStore(state, genesisBlock, store,
		consensus.ProcessSlots, consensus.ProcessBlock)
	if err != nil {
		return nil, fmt.Errorf("init fork choice: %w", err)
	}
	return &Context{
		Storage: store,
		Pool:    votepool.New(),
		FC:      fc,
		log:     logging.NewComponentLogger(logging.CompChain),
	}, nil
}

// DeliverBlock validates and incorporates a block received from the network.
// Rejections are logged with their reason and leave the chain unchanged.
func (c *Context) DeliverBlock(block *types.Block) error {
	if err := c.FC.ProcessBlock(block); err != nil {
		c.log.Warn("block rejected",
			"slot", block.Slot,
			"proposer", block.ProposerIndex,
			"err", err,
		)
		return err
	}
	c.log.Info("block applied",
		"slot", block.Slot,
		"proposer", block.ProposerIndex,
		"head", logging.ShortHash(c.FC.GetHead()),
	)
	return nil
}

// DeliverVote incorporates a vote received from the network. The vote feeds
// both the fork choice view and the per-slot justification tally.
func (c *Context) DeliverVote(sv *types.SignedVote) {
	c.Pool.Submit(sv)
	c.FC.ProcessAttestation(sv)
}

// CurrentHead returns the canonical head root.
func (c *Context) CurrentHead() types.Root {
	return c.FC.GetHead()
}

// CurrentCheckpoints returns the justified and finalized checkpoints.
func (c *Context) CurrentCheckpoints() (justified, finalized types.Checkpoint) {
	return c.FC.Checkpoints()
}

// VotesToInclude returns the pool's votes for a slot, for a proposer
// assembling a block body.
func (c *Context) VotesToInclude(slot types.Slot) []*types.SignedVote {
	return c.Pool.VotesForSlot(slot)
}

// OnSlotEnd runs the per-slot justification rule over the completed slot's
// votes and prunes the pool below the finalized slot.
func (c *Context) OnSlotEnd(slot types.Slot) error {
	if err := c.FC.ProcessSlotVotes(slot, c.Pool.VotesForSlot(slot)); err != nil {
		return err
	}
	_, finalized := c.FC.Checkpoints()
	c.Pool.Prune(finalized.Slot)
	metrics.CurrentSlot.Set(float64(slot))
	return nil
}
