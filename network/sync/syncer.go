// Package sync keeps the local chain caught up with peers: status exchange
// on connect, fetch-by-root for missing parents, and a periodic check that
// chases the best known head.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/leanlabs/glean/chain"
	"github.com/leanlabs/glean/network/reqresp"
	"github.com/leanlabs/glean/observability/logging"
	"github.com/leanlabs/glean/types"
)

// ErrStatusMismatch marks a peer whose finalized checkpoint conflicts with a
// block we hold under the same root.
var ErrStatusMismatch = errors.New("sync: peer finalized checkpoint conflicts with local chain")

const (
	statusTimeout = 30 * time.Second
	checkInterval = 10 * time.Second
)

// PeerStatus holds a peer's last known status.
type PeerStatus struct {
	Status    *types.Status
	UpdatedAt time.Time
}

// Syncer tracks peer statuses and fills gaps in the local block DAG.
type Syncer struct {
	host  host.Host
	chain *chain.Context
	log   *slog.Logger

	mu         sync.RWMutex
	peerStatus map[peer.ID]*PeerStatus
	syncing    bool

	pendingMu      sync.Mutex
	pendingParents map[types.Root]struct{}

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSyncer creates a syncer over the given host and chain context.
func NewSyncer(ctx context.Context, h host.Host, cc *chain.Context) *Syncer {
	ctx, cancel := context.WithCancel(ctx)
	return &Syncer{
		host:           h,
		chain:          cc,
		log:            logging.NewComponentLogger(logging.CompSync),
		peerStatus:     make(map[peer.ID]*PeerStatus),
		pendingParents: make(map[types.Root]struct{}),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// CurrentStatus builds our handshake status from the chain context.
func (s *Syncer) CurrentStatus() *types.Status {
	head := s.chain.CurrentHead()
	_, finalized := s.chain.CurrentCheckpoints()

	headSlot := types.Slot(0)
	if headBlock, ok := s.chain.Storage.GetBlock(head); ok {
		headSlot = headBlock.Slot
	}
	return &types.Status{
		Finalized: finalized,
		Head:      types.Checkpoint{Root: head, Slot: headSlot},
	}
}

// Start registers the connection notifier, exchanges status with peers
// connected before startup, and begins the periodic sync check.
func (s *Syncer) Start() {
	s.host.Network().Notify(newConnectionNotifier(s))

	for _, peerID := range s.host.Network().Peers() {
		go func(pid peer.ID) {
			ctx, cancel := context.WithTimeout(s.ctx, statusTimeout)
			defer cancel()
			if err := s.InitiateStatusExchange(ctx, pid); err != nil {
				s.log.Warn("status exchange failed", "peer", pid, "err", err)
			}
		}(peerID)
	}

	go s.checkLoop()
	s.log.Info("syncer started")
}

// Stop shuts down background tasks.
func (s *Syncer) Stop() {
	s.cancel()
	s.log.Info("syncer stopped")
}

// InitiateStatusExchange sends our status to a peer and folds in the reply.
func (s *Syncer) InitiateStatusExchange(ctx context.Context, peerID peer.ID) error {
	theirs, err := reqresp.SendStatus(ctx, s.host, peerID, s.CurrentStatus())
	if err != nil {
		return fmt.Errorf("send status: %w", err)
	}
	return s.ProcessPeerStatus(peerID, theirs)
}

// ProcessPeerStatus validates and records a peer's status, starting a sync
// when the peer is ahead. A conflicting finalized checkpoint disconnects the
// peer.
func (s *Syncer) ProcessPeerStatus(peerID peer.ID, status *types.Status) error {
	if err := s.validatePeerStatus(status); err != nil {
		s.log.Warn("rejecting peer status", "peer", peerID, "err", err)
		_ = s.host.Network().ClosePeer(peerID)
		return err
	}

	s.mu.Lock()
	s.peerStatus[peerID] = &PeerStatus{Status: status, UpdatedAt: time.Now()}
	s.mu.Unlock()

	if status.Head.Slot > s.CurrentStatus().Head.Slot {
		go s.syncFromPeer(peerID, status)
	}
	return nil
}

// validatePeerStatus checks the peer's finalized checkpoint against any
// local block under the same root.
func (s *Syncer) validatePeerStatus(status *types.Status) error {
	if status.Finalized.Slot == 0 {
		return nil
	}
	if block, ok := s.chain.Storage.GetBlock(status.Finalized.Root); ok {
		if block.Slot != status.Finalized.Slot {
			return ErrStatusMismatch
		}
	}
	return nil
}

// RemovePeer drops a peer from status tracking.
func (s *Syncer) RemovePeer(peerID peer.ID) {
	s.mu.Lock()
	delete(s.peerStatus, peerID)
	s.mu.Unlock()
}

// IsSynced reports whether no known peer is more than one slot ahead.
func (s *Syncer) IsSynced() bool {
	ourHead := s.CurrentStatus().Head.Slot

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ps := range s.peerStatus {
		if ps.Status.Head.Slot > ourHead+1 {
			return false
		}
	}
	return true
}

// OnBlockReceived backfills an unknown parent for a block seen on gossip.
// When the sender is unknown any tracked peer serves the fetch.
func (s *Syncer) OnBlockReceived(block *types.SignedBlock, fromPeer peer.ID) error {
	if _, ok := s.chain.Storage.GetBlock(block.Message.ParentRoot); ok {
		return nil
	}
	if fromPeer == "" {
		s.mu.RLock()
		for pid := range s.peerStatus {
			fromPeer = pid
			break
		}
		s.mu.RUnlock()
	}
	if fromPeer == "" {
		return errors.New("sync: no peer available for parent fetch")
	}
	return s.requestParentChain(block.Message.ParentRoot, fromPeer)
}

func (s *Syncer) syncFromPeer(peerID peer.ID, status *types.Status) {
	s.mu.Lock()
	if s.syncing {
		s.mu.Unlock()
		return
	}
	s.syncing = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.syncing = false
		s.mu.Unlock()
	}()

	blocks, err := reqresp.RequestBlocksByRoot(s.ctx, s.host, peerID, []types.Root{status.Head.Root})
	if err != nil {
		s.log.Warn("blocks request failed", "peer", peerID, "err", err)
		return
	}
	for _, sb := range blocks {
		if err := s.processReceivedBlock(sb, peerID); err != nil {
			s.log.Warn("synced block rejected", "slot", sb.Message.Slot, "err", err)
		}
	}
}

func (s *Syncer) processReceivedBlock(sb *types.SignedBlock, fromPeer peer.ID) error {
	blockRoot, err := sb.Message.HashTreeRoot()
	if err != nil {
		return fmt.Errorf("hash block: %w", err)
	}
	if _, ok := s.chain.Storage.GetBlock(blockRoot); ok {
		return nil
	}

	if _, ok := s.chain.Storage.GetBlock(sb.Message.ParentRoot); !ok {
		if err := s.requestParentChain(sb.Message.ParentRoot, fromPeer); err != nil {
			return fmt.Errorf("request parent chain: %w", err)
		}
	}

	if err := s.chain.DeliverBlock(&sb.Message); err != nil {
		return err
	}
	s.log.Info("synced block",
		"slot", sb.Message.Slot,
		"root", logging.ShortHash(blockRoot),
	)
	return nil
}

// requestParentChain fetches a missing ancestor, recursing through
// processReceivedBlock until the chain connects.
func (s *Syncer) requestParentChain(parentRoot types.Root, fromPeer peer.ID) error {
	s.pendingMu.Lock()
	if _, pending := s.pendingParents[parentRoot]; pending {
		s.pendingMu.Unlock()
		return nil
	}
	s.pendingParents[parentRoot] = struct{}{}
	s.pendingMu.Unlock()
	defer func() {
		s.pendingMu.Lock()
		delete(s.pendingParents, parentRoot)
		s.pendingMu.Unlock()
	}()

	blocks, err := reqresp.RequestBlocksByRoot(s.ctx, s.host, fromPeer, []types.Root{parentRoot})
	if err != nil {
		return fmt.Errorf("request parent: %w", err)
	}
	for _, sb := range blocks {
		if err := s.processReceivedBlock(sb, fromPeer); err != nil {
			s.log.Warn("parent block rejected", "slot", sb.Message.Slot, "err", err)
		}
	}
	return nil
}

func (s *Syncer) checkLoop() {
	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.checkBestPeer()
		}
	}
}

func (s *Syncer) checkBestPeer() {
	ourHead := s.CurrentStatus().Head.Slot

	s.mu.RLock()
	var bestPeer peer.ID
	var bestStatus *types.Status
	for peerID, ps := range s.peerStatus {
		if ps.Status.Head.Slot > ourHead && (bestStatus == nil || ps.Status.Head.Slot > bestStatus.Head.Slot) {
			bestPeer = peerID
			bestStatus = ps.Status
		}
	}
	s.mu.RUnlock()

	if bestStatus != nil {
		go s.syncFromPeer(bestPeer, bestStatus)
	}
}
