package reqresp

import (
	"context"
	"fmt"
	"time"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/leanlabs/glean/observability/logging"
	"github.com/leanlabs/glean/types"
)

const streamTimeout = 30 * time.Second

var log = logging.NewComponentLogger(logging.CompNetwork)

// ReqRespHandler supplies responses for inbound protocol streams.
type ReqRespHandler struct {
	OnStatus       func(peerStatus *types.Status) *types.Status
	OnBlocksByRoot func(roots []types.Root) []*types.SignedBlock
}

// RegisterReqResp installs stream handlers for the supported protocols.
func RegisterReqResp(h host.Host, handler *ReqRespHandler) {
	h.SetStreamHandler(StatusProtocolV1, func(stream network.Stream) {
		defer stream.Close()
		_ = stream.SetDeadline(time.Now().Add(streamTimeout))

		peerStatus, err := readStatus(stream)
		if err != nil {
			log.Warn("bad status request", "peer", shortPeer(stream.Conn().RemotePeer()), "err", err)
			return
		}
		ours := handler.OnStatus(peerStatus)
		if err := writeStatus(stream, ours); err != nil {
			log.Warn("status response failed", "peer", shortPeer(stream.Conn().RemotePeer()), "err", err)
		}
	})

	h.SetStreamHandler(BlocksByRootProtocolV1, func(stream network.Stream) {
		defer stream.Close()
		_ = stream.SetDeadline(time.Now().Add(streamTimeout))

		req, err := readBlocksRequest(stream)
		if err != nil {
			log.Warn("bad blocks request", "peer", shortPeer(stream.Conn().RemotePeer()), "err", err)
			return
		}
		roots := req.Roots
		if len(roots) > MaxRequestBlocks {
			roots = roots[:MaxRequestBlocks]
		}
		for _, sb := range handler.OnBlocksByRoot(roots) {
			if err := writeSignedBlock(stream, sb); err != nil {
				log.Warn("blocks response failed", "peer", shortPeer(stream.Conn().RemotePeer()), "err", err)
				return
			}
		}
	})
}

// SendStatus performs a status exchange with a peer: send ours, read theirs.
func SendStatus(ctx context.Context, h host.Host, peerID peer.ID, ours *types.Status) (*types.Status, error) {
	stream, err := h.NewStream(ctx, peerID, StatusProtocolV1)
	if err != nil {
		return nil, fmt.Errorf("open status stream: %w", err)
	}
	defer stream.Close()
	_ = stream.SetDeadline(time.Now().Add(streamTimeout))

	if err := writeStatus(stream, ours); err != nil {
		return nil, fmt.Errorf("write status: %w", err)
	}
	if err := stream.CloseWrite(); err != nil {
		return nil, fmt.Errorf("close write: %w", err)
	}
	theirs, err := readStatus(stream)
	if err != nil {
		return nil, fmt.Errorf("read status: %w", err)
	}
	return theirs, nil
}

// RequestBlocksByRoot fetches blocks for the given roots from a peer.
func RequestBlocksByRoot(ctx context.Context, h host.Host, peerID peer.ID, roots []types.Root) ([]*types.SignedBlock, error) {
	if len(roots) > MaxRequestBlocks {
		roots = roots[:MaxRequestBlocks]
	}
	stream, err := h.NewStream(ctx, peerID, BlocksByRootProtocolV1)
	if err != nil {
		return nil, fmt.Errorf("open blocks stream: %w", err)
	}
	defer stream.Close()
	_ = stream.SetDeadline(time.Now().Add(streamTimeout))

	if err := writeBlocksRequest(stream, &types.BlocksByRootRequest{Roots: roots}); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}
	if err := stream.CloseWrite(); err != nil {
		return nil, fmt.Errorf("close write: %w", err)
	}
	return readSignedBlocks(stream)
}

func shortPeer(id peer.ID) string {
	s := id.String()
	if len(s) > 16 {
		return s[:16] + "..."
	}
	return s
}
