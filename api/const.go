package api

import "errors"

// ErrorBadSettings operation cannot succeed because the supplied
// gosettings.Settings contains an invalid or missing configuration value.
var ErrorBadSettings = errors.New("lwmem.badSettings")

// ErrorAlreadyReleased operation cannot succeed because the arena or pool
// it targets has already been released back to its parent allocator.
var ErrorAlreadyReleased = errors.New("lwmem.alreadyReleased")

// MinAlignment smallest alignment constant accepted by NewHeap.
const MinAlignment = int64(4)

// MaxAlignment largest alignment constant accepted by NewHeap. Bounded well
// below the machine word width so the allocated-bit trick in header.go
// always has room.
const MaxAlignment = int64(4096)
