package node

import (
	"errors"
	"fmt"

	"github.com/leanlabs/glean/forkchoice"
	"github.com/leanlabs/glean/network/gossipsub"
	"github.com/leanlabs/glean/network/reqresp"
	"github.com/leanlabs/glean/observability/logging"
	"github.com/leanlabs/glean/types"
)

// registerHandlers wires gossip subscriptions and req/resp protocol handlers.
func registerHandlers(n *Node) error {
	gossipLog := logging.NewComponentLogger(logging.CompGossip)

	reqresp.RegisterReqResp(n.Host.P2P, &reqresp.ReqRespHandler{
		OnStatus: func(peerStatus *types.Status) *types.Status {
			return n.Syncer.CurrentStatus()
		},
		OnBlocksByRoot: func(roots []types.Root) []*types.SignedBlock {
			var blocks []*types.SignedBlock
			for _, root := range roots {
				if b, ok := n.Chain.Storage.GetBlock(root); ok {
					blocks = append(blocks, &types.SignedBlock{Message: *b, Signature: types.ZeroHash})
				}
			}
			return blocks
		},
	})

	if err := gossipsub.SubscribeTopics(n.Host.Ctx, n.Topics, &gossipsub.GossipHandler{
		OnBlock: func(sb *types.SignedBlock) {
			blockRoot, _ := sb.Message.HashTreeRoot()
			gossipLog.Info("received block via gossip",
				"slot", sb.Message.Slot,
				"proposer", sb.Message.ProposerIndex,
				"block_root", logging.ShortHash(blockRoot),
			)
			err := n.Chain.DeliverBlock(&sb.Message)
			if errors.Is(err, forkchoice.ErrUnknownParent) {
				// A missing parent is recoverable; fetch it through sync.
				if syncErr := n.Syncer.OnBlockReceived(sb, ""); syncErr != nil {
					gossipLog.Warn("parent backfill failed",
						"slot", sb.Message.Slot,
						"err", syncErr,
					)
				}
			}
		},
		OnVote: func(sv *types.SignedVote) {
			n.Chain.DeliverVote(sv)
		},
	}); err != nil {
		return fmt.Errorf("subscribe topics: %w", err)
	}

	return nil
}
