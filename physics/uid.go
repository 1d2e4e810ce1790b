// Copyright © 2024 Galvanized Logic Inc.

package physics

import "sync"

// UID is a process-wide unique identifier for a rigid body. UIDs are handed
// out by a monotonically increasing counter and are only guaranteed unique
// within the lifetime of one process, not across processes or restarts.
type UID uint64

var uidCounter UID
var uidMutex sync.Mutex

// nextUID returns the next unused UID. Safe for concurrent callers even
// though the simulation itself is single-threaded, so multiple simulations
// hosted in one process never collide on ids.
func nextUID() UID {
	uidMutex.Lock()
	uidCounter++
	id := uidCounter
	uidMutex.Unlock()
	return id
}
