// ghost.go implements the LMD-GHOST head selection walk.
//
// No filtered-block-tree step is applied: every known descendant of the
// search root is a candidate. Block-tree filtering on justifiability is
// deferred to a later devnet.
package forkchoice

import (
	"sort"

	"github.com/leanlabs/glean/types"
)

// GetHead walks the block DAG from root, at each fork descending into the
// child subtree carrying the greatest accumulated vote weight. Each
// validator's latest vote adds weight 1 to every ancestor of its head root
// (no stake weighting). Ties break toward the lexicographically smaller
// root, a protocol-level total order shared by all implementations.
//
// Children with weight below minScore are not followed; minScore 0 walks to
// a leaf, a positive minScore (safe target) stops where support thins out.
//
// The walk is a pure function of (blocks, root, votes, minScore); repeated
// invocations over the same inputs return the same head.
func GetHead(
	blocks map[types.Root]*types.Block,
	root types.Root,
	votes map[types.ValidatorIndex]types.Vote,
	minScore uint64,
) types.Root {
	weights := voteWeights(blocks, root, votes)
	children := childIndex(blocks, root)

	head := root
	for {
		candidates := children[head]
		if len(candidates) == 0 {
			return head
		}

		best := types.Root{}
		bestWeight := uint64(0)
		found := false
		for _, child := range candidates {
			w := weights[child]
			if w < minScore {
				continue
			}
			if !found || w > bestWeight || (w == bestWeight && child.Compare(best) < 0) {
				best = child
				bestWeight = w
				found = true
			}
		}
		if !found {
			return head
		}
		head = best
	}
}

// voteWeights accumulates each validator's latest vote onto every ancestor
// of its head root, up to and including the search root.
func voteWeights(
	blocks map[types.Root]*types.Block,
	root types.Root,
	votes map[types.ValidatorIndex]types.Vote,
) map[types.Root]uint64 {
	weights := make(map[types.Root]uint64)
	for _, vote := range votes {
		cursor := vote.Head.Root
		for {
			block, ok := blocks[cursor]
			if !ok {
				break
			}
			weights[cursor]++
			if cursor == root {
				break
			}
			cursor = block.ParentRoot
		}
	}
	return weights
}

// childIndex builds parent -> sorted children from the block map. Sorting
// makes the walk independent of map iteration order.
func childIndex(blocks map[types.Root]*types.Block, root types.Root) map[types.Root][]types.Root {
	children := make(map[types.Root][]types.Root)
	for blockRoot, block := range blocks {
		if blockRoot == root {
			continue
		}
		children[block.ParentRoot] = append(children[block.ParentRoot], blockRoot)
	}
	for parent := range children {
		list := children[parent]
		sort.Slice(list, func(i, j int) bool {
			return list[i].Compare(list[j]) < 0
		})
	}
	return children
}

// GetLatestJustified returns the highest justified checkpoint across all
// known states, or nil when no states are known.
func GetLatestJustified(states map[types.Root]*types.State) *types.Checkpoint {
	var latest *types.Checkpoint
	for _, state := range states {
		cp := state.LatestJustified
		if latest == nil ||
			cp.Slot > latest.Slot ||
			(cp.Slot == latest.Slot && cp.Root.Compare(latest.Root) < 0) {
			latest = &types.Checkpoint{Root: cp.Root, Slot: cp.Slot}
		}
	}
	return latest
}

// IsAncestor reports whether ancestor is on the parent chain of root
// (a block is its own ancestor).
func IsAncestor(blocks map[types.Root]*types.Block, ancestor, root types.Root) bool {
	cursor := root
	for {
		if cursor == ancestor {
			return true
		}
		block, ok := blocks[cursor]
		if !ok || block.ParentRoot == cursor {
			return false
		}
		cursor = block.ParentRoot
	}
}
