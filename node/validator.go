package node

import (
	"context"
	"log/slog"

	"github.com/leanlabs/glean/chain"
	"github.com/leanlabs/glean/consensus"
	"github.com/leanlabs/glean/network/gossipsub"
	"github.com/leanlabs/glean/observability/logging"
	"github.com/leanlabs/glean/types"
)

// ValidatorDuties handles proposer and attester duties for the validators
// this node runs.
type ValidatorDuties struct {
	Indices []uint64
	Chain   *chain.Context
	Topics  *gossipsub.Topics
	log     *slog.Logger
}

// HasProposal reports whether this node holds the proposer for the slot.
func (v *ValidatorDuties) HasProposal(slot types.Slot) bool {
	for _, idx := range v.Indices {
		if consensus.IsProposer(idx, uint64(slot), v.Chain.FC.Config.NumValidators) {
			return true
		}
	}
	return false
}

// OnInterval executes validator duties for the current interval. Blocks are
// proposed at the slot start, votes cast one interval later.
func (v *ValidatorDuties) OnInterval(ctx context.Context, slot types.Slot, interval uint64) {
	switch interval {
	case 0:
		v.tryPropose(ctx, slot)
	case 1:
		v.tryAttest(ctx, slot)
	}
}

func (v *ValidatorDuties) tryPropose(ctx context.Context, slot types.Slot) {
	for _, idx := range v.Indices {
		if !consensus.IsProposer(idx, uint64(slot), v.Chain.FC.Config.NumValidators) {
			continue
		}
		block, err := v.Chain.FC.ProduceBlock(slot, types.ValidatorIndex(idx))
		if err != nil {
			v.log.Error("block proposal failed",
				"slot", slot,
				"proposer", idx,
				"err", err,
			)
			continue
		}
		blockRoot, _ := block.HashTreeRoot()
		sb := &types.SignedBlock{Message: *block, Signature: types.ZeroHash}
		if err := gossipsub.PublishBlock(ctx, v.Topics.Block, sb); err != nil {
			v.log.Error("failed to publish block",
				"slot", slot,
				"proposer", idx,
				"err", err,
			)
			continue
		}
		v.log.Info("proposed block",
			"slot", slot,
			"proposer", idx,
			"block_root", logging.ShortHash(blockRoot),
		)
	}
}

func (v *ValidatorDuties) tryAttest(ctx context.Context, slot types.Slot) {
	for _, idx := range v.Indices {
		vote := v.Chain.FC.ProduceAttestationVote(slot, types.ValidatorIndex(idx))
		sv := &types.SignedVote{Data: vote, Signature: types.ZeroHash}

		// Local votes feed our own pool and fork choice directly; gossip
		// carries them to everyone else.
		v.Chain.DeliverVote(sv)
		if err := gossipsub.PublishVote(ctx, v.Topics.Vote, sv); err != nil {
			v.log.Error("failed to publish attestation",
				"slot", slot,
				"validator", idx,
				"err", err,
			)
			continue
		}
		v.log.Debug("published attestation",
			"slot", slot,
			"validator", idx,
			"target_slot", vote.Target.Slot,
		)
	}
}
