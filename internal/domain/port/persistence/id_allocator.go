package persistence

// IDAllocator issues identifiers for new records.
// User and balance IDs come from independent counters that start at 1 and never repeat.
type IDAllocator interface {
	NextUserID() uint64
	NextBalanceID() uint64
}
