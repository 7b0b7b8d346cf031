// Package reqresp implements the status and blocks-by-root request/response
// protocols. Each message travels as one length-prefixed snappy frame; a
// blocks-by-root response carries one frame per block until stream close.
package reqresp

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/snappy"

	"github.com/leanlabs/glean/types"
)

// Protocol IDs.
const (
	StatusProtocolV1       = "/leanconsensus/req/status/1/ssz_snappy"
	BlocksByRootProtocolV1 = "/leanconsensus/req/blocks_by_root/1/ssz_snappy"
)

// MaxRequestBlocks caps the roots honored in a single blocks-by-root request.
const MaxRequestBlocks = 1024

// maxFramePayload bounds a single decompressed frame. A full block body of
// 4096 attestations stays well under this.
const maxFramePayload = 1 << 22

var errFrameTooLarge = errors.New("reqresp: frame exceeds payload limit")

func writeSnappyFrame(w io.Writer, payload []byte) error {
	compressed := snappy.Encode(nil, payload)
	var lenBuf [10]byte
	n := putUvarint(lenBuf[:], uint64(len(compressed)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	_, err := w.Write(compressed)
	return err
}

func readSnappyFrame(r io.Reader) ([]byte, error) {
	size, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if size > maxFramePayload {
		return nil, errFrameTooLarge
	}
	compressed := make([]byte, size)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}
	payload, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("snappy decode: %w", err)
	}
	if uint64(len(payload)) > maxFramePayload {
		return nil, errFrameTooLarge
	}
	return payload, nil
}

func putUvarint(buf []byte, x uint64) int {
	i := 0
	for x >= 0x80 {
		buf[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	buf[i] = byte(x)
	return i + 1
}

func readUvarint(r io.Reader) (uint64, error) {
	var x uint64
	var shift uint
	var b [1]byte
	for i := 0; i < 10; i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		x |= uint64(b[0]&0x7f) << shift
		if b[0] < 0x80 {
			return x, nil
		}
		shift += 7
	}
	return 0, errors.New("reqresp: uvarint overflow")
}

func writeStatus(w io.Writer, status *types.Status) error {
	data, err := status.MarshalSSZ()
	if err != nil {
		return fmt.Errorf("marshal status: %w", err)
	}
	return writeSnappyFrame(w, data)
}

func readStatus(r io.Reader) (*types.Status, error) {
	payload, err := readSnappyFrame(r)
	if err != nil {
		return nil, err
	}
	status := new(types.Status)
	if err := status.UnmarshalSSZ(payload); err != nil {
		return nil, fmt.Errorf("unmarshal status: %w", err)
	}
	return status, nil
}

func writeBlocksRequest(w io.Writer, req *types.BlocksByRootRequest) error {
	data, err := req.MarshalSSZ()
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return writeSnappyFrame(w, data)
}

func readBlocksRequest(r io.Reader) (*types.BlocksByRootRequest, error) {
	payload, err := readSnappyFrame(r)
	if err != nil {
		return nil, err
	}
	req := new(types.BlocksByRootRequest)
	if err := req.UnmarshalSSZ(payload); err != nil {
		return nil, fmt.Errorf("unmarshal request: %w", err)
	}
	return req, nil
}

func writeSignedBlock(w io.Writer, sb *types.SignedBlock) error {
	data, err := sb.MarshalSSZ()
	if err != nil {
		return fmt.Errorf("marshal block: %w", err)
	}
	return writeSnappyFrame(w, data)
}

// readSignedBlocks reads block frames until the stream is exhausted.
func readSignedBlocks(r io.Reader) ([]*types.SignedBlock, error) {
	var blocks []*types.SignedBlock
	for len(blocks) < MaxRequestBlocks {
		payload, err := readSnappyFrame(r)
		if errors.Is(err, io.EOF) {
			return blocks, nil
		}
		if err != nil {
			return blocks, err
		}
		sb := new(types.SignedBlock)
		if err := sb.UnmarshalSSZ(payload); err != nil {
			return blocks, fmt.Errorf("unmarshal block: %w", err)
		}
		blocks = append(blocks, sb)
	}
	return blocks, nil
}
