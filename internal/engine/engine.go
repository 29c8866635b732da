// Package engine starts the background parts of the launcher.
package engine

import "sync"

// ApplicationEngine is initialized in its own goroutine and calls Done on
// the wait group once ready. Unrecoverable failures panic before Done.
type ApplicationEngine interface {
	Initialize(waitGroup *sync.WaitGroup)
}
