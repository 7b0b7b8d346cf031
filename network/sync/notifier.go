package sync

import (
	"context"

	"github.com/libp2p/go-libp2p/core/network"
	"github.com/multiformats/go-multiaddr"

	"github.com/leanlabs/glean/observability/metrics"
)

// connectionNotifier reacts to connect and disconnect events. The dialing
// side sends Status first; the listener waits for the inbound stream.
type connectionNotifier struct {
	syncer *Syncer
}

func newConnectionNotifier(s *Syncer) *connectionNotifier {
	return &connectionNotifier{syncer: s}
}

func (n *connectionNotifier) Listen(network.Network, multiaddr.Multiaddr) {}

func (n *connectionNotifier) ListenClose(network.Network, multiaddr.Multiaddr) {}

func (n *connectionNotifier) Connected(net network.Network, conn network.Conn) {
	peerID := conn.RemotePeer()
	metrics.ConnectedPeers.Set(float64(len(net.Peers())))

	if conn.Stat().Direction != network.DirOutbound {
		n.syncer.log.Debug("inbound connection", "peer", peerID)
		return
	}

	n.syncer.log.Debug("outbound connection, initiating status exchange", "peer", peerID)
	go func() {
		ctx, cancel := context.WithTimeout(n.syncer.ctx, statusTimeout)
		defer cancel()
		if err := n.syncer.InitiateStatusExchange(ctx, peerID); err != nil {
			n.syncer.log.Warn("status exchange failed", "peer", peerID, "err", err)
		}
	}()
}

func (n *connectionNotifier) Disconnected(net network.Network, conn network.Conn) {
	n.syncer.log.Debug("peer disconnected", "peer", conn.RemotePeer())
	n.syncer.RemovePeer(conn.RemotePeer())
	metrics.ConnectedPeers.Set(float64(len(net.Peers())))
}

var _ network.Notifiee = (*connectionNotifier)(nil)
