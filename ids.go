package mcplay

import "sync/atomic"

// Counters hands out identifiers that are unique for the lifetime of a
// server. All methods are safe for concurrent use. The zero value is ready;
// the first id of each kind is 1.
type Counters struct {
	connection atomic.Uint64
	entity     atomic.Int32
	teleport   atomic.Int32
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) NextConnectionID() uint64 {
	return c.connection.Add(1)
}

func (c *Counters) NextEntityID() int32 {
	return c.entity.Add(1)
}

// NextTeleportID returns the id a client must echo in its Teleport Confirm.
func (c *Counters) NextTeleportID() int32 {
	return c.teleport.Add(1)
}
