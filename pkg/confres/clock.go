// SPDX-License-Identifier: Apache-2.0

package confres

import "time"

// Clock yields a monotonic millisecond timestamp, used by the Age-Aware
// Cache to judge entry freshness. Tests supply a fake to pin exact
// millisecond boundaries.
type Clock interface {
	NowMs() int64
}

// SystemClock is the default Clock, backed by the wall clock.
type SystemClock struct{}

// NowMs returns the current time as Unix milliseconds.
func (SystemClock) NowMs() int64 {
	return time.Now().UnixMilli()
}
