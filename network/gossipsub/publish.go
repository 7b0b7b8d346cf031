package gossipsub

import (
	"context"
	"fmt"

	"github.com/golang/snappy"
	pubsub "github.com/libp2p/go-libp2p-pubsub"

	"github.com/leanlabs/glean/types"
)

// PublishBlock publishes a signed block to the block topic.
func PublishBlock(ctx context.Context, topic *pubsub.Topic, sb *types.SignedBlock) error {
	data, err := sb.MarshalSSZ()
	if err != nil {
		return fmt.Errorf("marshal block: %w", err)
	}
	return topic.Publish(ctx, snappy.Encode(nil, data))
}

// PublishVote publishes a signed vote to the vote topic.
func PublishVote(ctx context.Context, topic *pubsub.Topic, sv *types.SignedVote) error {
	data, err := sv.MarshalSSZ()
	if err != nil {
		return fmt.Errorf("marshal vote: %w", err)
	}
	return topic.Publish(ctx, snappy.Encode(nil, data))
}
