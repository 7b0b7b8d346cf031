package gossipsub

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/golang/snappy"
	pb "github.com/libp2p/go-libp2p-pubsub/pb"
)

// Message-id domains isolate IDs of well-formed and malformed payloads.
var (
	messageDomainInvalidSnappy = [4]byte{0x00, 0x00, 0x00, 0x00}
	messageDomainValidSnappy   = [4]byte{0x01, 0x00, 0x00, 0x00}
)

// ComputeMessageID derives the gossipsub message id:
// SHA256(domain ++ uint64_le(len(topic)) ++ topic ++ payload)[:20], where
// payload is the decompressed data under the valid-snappy domain, or the raw
// data under the invalid-snappy domain.
func ComputeMessageID(pmsg *pb.Message) string {
	topic := []byte(pmsg.GetTopic())

	domain := messageDomainValidSnappy
	payload, err := snappy.Decode(nil, pmsg.Data)
	if err != nil {
		domain = messageDomainInvalidSnappy
		payload = pmsg.Data
	}

	var topicLen [8]byte
	binary.LittleEndian.PutUint64(topicLen[:], uint64(len(topic)))

	h := sha256.New()
	h.Write(domain[:])
	h.Write(topicLen[:])
	h.Write(topic)
	h.Write(payload)

	return string(h.Sum(nil)[:20])
}
