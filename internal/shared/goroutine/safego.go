// Package goroutine launches background goroutines that log instead of
// crashing the process when they panic.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/cotracker/cotracker/internal/shared/logger"
)

// SafeGo runs fn in a new goroutine. A panic is logged with its stack under
// the given name and then swallowed.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
