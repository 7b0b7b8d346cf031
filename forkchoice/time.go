package forkchoice

import "github.com/leanlabs/glean/types"

// CurrentSlot returns the store's current slot.
func (s *Store) CurrentSlot() types.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Clock.CurrentSlot()
}

// CurrentInterval returns the current interval within the slot.
func (s *Store) CurrentInterval() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Clock.CurrentInterval()
}

// TickInterval advances store time by one interval.
// Intervals: 0=accept votes (if proposing), 1=voting, 2=safe target, 3=accept votes.
func (s *Store) TickInterval(hasProposal bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	interval := s.Clock.Tick()
	s.onIntervalLocked(interval, hasProposal)
}

func (s *Store) onIntervalLocked(interval uint64, hasProposal bool) {
	switch interval {
	case 0:
		if hasProposal {
			s.acceptVotesOnTick()
		}
	case 1:
		// Validators vote during this interval; the store has no duty.
	case 2:
		s.updateSafeTargetLocked()
	default:
		s.acceptVotesOnTick()
	}
}

func (s *Store) acceptVotesOnTick() {
	if s.halted {
		return
	}
	if err := s.acceptNewVotesLocked(); err != nil {
		s.log.Error("accepting votes failed", "err", err)
	}
}

// AdvanceTime ticks the store forward to the given unix timestamp, running
// the interval duties it passes through.
func (s *Store) AdvanceTime(unixTime uint64, hasProposal bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.Clock.TargetIntervals(unixTime)
	for s.Clock.Intervals() < target {
		isLast := s.Clock.Intervals()+1 == target
		interval := s.Clock.Tick()
		s.onIntervalLocked(interval, hasProposal && isLast)
	}
}

// advanceToSlotLocked advances the store clock to the start of the given slot.
func (s *Store) advanceToSlotLocked(slot types.Slot) {
	targetIntervals := uint64(slot) * types.IntervalsPerSlot
	for s.Clock.Intervals() < targetIntervals {
		isLast := s.Clock.Intervals()+1 == targetIntervals
		interval := s.Clock.Tick()
		s.onIntervalLocked(interval, isLast)
	}
	s.acceptVotesOnTick()
}
