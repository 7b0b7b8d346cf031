package node

import (
	"context"
	"time"

	"github.com/leanlabs/glean/observability/logging"
	"github.com/leanlabs/glean/observability/metrics"
	"github.com/leanlabs/glean/types"
)

// Run starts the main event loop. It ticks once per interval, advances fork
// choice time, executes validator duties, and processes pooled votes at each
// slot boundary.
func (n *Node) Run(ctx context.Context) error {
	n.log.Info("node started",
		"validators", n.Validator.Indices,
		"peers", len(n.Host.P2P.Network().Peers()),
	)

	n.Syncer.Start()

	ticker := n.Clock.IntervalTicker()
	defer ticker.Stop()

	var lastSlot types.Slot
	var lastInterval uint64
	started := false

	for {
		select {
		case <-ctx.Done():
			n.log.Info("node shutting down")
			if err := n.Close(); err != nil {
				n.log.Warn("shutdown error", "err", err)
			}
			return nil
		case <-ticker.C:
			if n.Clock.IsBeforeGenesis() {
				continue
			}
			slot := n.Clock.CurrentSlot()
			interval := n.Clock.CurrentInterval()
			if started && slot == lastSlot && interval == lastInterval {
				continue
			}

			// Close out the previous slot before the new one begins.
			if started && slot != lastSlot {
				if err := n.Chain.OnSlotEnd(lastSlot); err != nil {
					n.log.Error("slot vote processing failed",
						"slot", lastSlot,
						"err", err,
					)
				}
			}

			hasProposal := interval == 0 && n.Validator.HasProposal(slot)
			n.Chain.FC.AdvanceTime(n.Clock.CurrentTime(), hasProposal)
			n.Validator.OnInterval(ctx, slot, interval)

			if !started || slot != lastSlot {
				n.logSlot(slot)
			}
			lastSlot, lastInterval = slot, interval
			started = true
		}
	}
}

func (n *Node) logSlot(slot types.Slot) {
	start := time.Now()
	head := n.Chain.CurrentHead()
	justified, finalized := n.Chain.CurrentCheckpoints()

	headSlot := types.Slot(0)
	if headBlock, ok := n.Chain.Storage.GetBlock(head); ok {
		headSlot = headBlock.Slot
	}
	peerCount := len(n.Host.P2P.Network().Peers())
	metrics.ConnectedPeers.Set(float64(peerCount))

	n.log.Info("slot",
		"slot", slot,
		"head", headSlot,
		"justified", justified.Slot,
		"finalized", finalized.Slot,
		"peers", peerCount,
		"synced", n.Syncer.IsSynced(),
		"elapsed", logging.TimeSince(start),
	)
}
