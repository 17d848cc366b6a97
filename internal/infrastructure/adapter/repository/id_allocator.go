package repository

// IDCounter issues user and balance identifiers from two independent counters.
// It is not synchronized; the ledger database calls it under its write lock.
type IDCounter struct {
	userID    uint64
	balanceID uint64
}

// NewIDCounter creates a counter whose first issued IDs are 1
func NewIDCounter() *IDCounter {
	return &IDCounter{}
}

// NextUserID returns the next user identifier
func (c *IDCounter) NextUserID() uint64 {
	c.userID++
	return c.userID
}

// NextBalanceID returns the next balance identifier
func (c *IDCounter) NextBalanceID() uint64 {
	c.balanceID++
	return c.balanceID
}
