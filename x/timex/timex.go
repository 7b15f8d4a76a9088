package timex

import "time"

// ElapsedMs returns now-then on a free-running 32-bit millisecond counter.
// The subtraction wraps, so the result stays correct across counter overflow
// as long as the real interval is below 2^32 ms.
func ElapsedMs(now, then uint32) uint32 { return now - then }

// Ms converts a millisecond count to a time.Duration.
func Ms(ms uint32) time.Duration { return time.Duration(ms) * time.Millisecond }
