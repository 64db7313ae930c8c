package buffer

import (
	"fmt"
	"os"
)

// Unbounded creates a channel buffer that grows as needed. It returns a
// write-only channel to feed data in and a read-only channel to read data
// out. The UI produces key frames on its render cadence and must never
// block on the session, so the queue between them grows instead.
//
// initialCap sizes the backing slice; hardLimit caps the queue before the
// oldest items are dropped. Closing the in channel flushes the queue and
// then closes out.
func Unbounded[T any](initialCap int, hardLimit int) (chan<- T, <-chan T) {
	in := make(chan T, 10)
	out := make(chan T, 10)

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)

		for {
			var next T
			var downstream chan T

			// Enable the send case only while there is data queued.
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					for _, item := range queue {
						out <- item
					}
					return
				}

				// A session this far behind is wedged; dropping the
				// oldest frame loses keystrokes but keeps memory flat.
				if len(queue) >= hardLimit {
					fmt.Fprintf(os.Stderr, "[buffer] queue limit reached (%d), dropping oldest item\n", hardLimit)
					queue = queue[1:]
				}

				queue = append(queue, val)

			case downstream <- next:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}
