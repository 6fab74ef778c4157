// Package executor implements an elastic worker pool: a dynamically sized
// set of goroutine workers that dispatch opaque zero-argument tasks,
// bounded by a task queue and low/high worker watermarks, with an
// idle-timeout self-pruning rule and an orderly drain-on-Stop shutdown
// protocol.
//
// Design
//
//   - One lock. State, the task queue, and both worker counters live
//     behind a single sync.Mutex: the invariant "spawn a worker iff every
//     worker is busy and the pool is under the high watermark" is
//     evaluated and acted on atomically under that lock, never split
//     across two locks.
//
//   - Wake signals as channels, not a condition variable. Submit sends a
//     non-blocking token on a buffered-1 channel to wake exactly one idle
//     worker; Stop closes a channel that every blocked worker selects on,
//     waking all of them at once. This reproduces the original
//     condition-variable design (wait-for-signal, wait-for-broadcast)
//     using Go's native concurrency primitives instead of porting a
//     condition variable.
//
//   - Idle pruning. A worker blocked on an empty queue with nothing to do
//     waits up to Config.IdleTimeout; if it wakes on that timeout with the
//     queue still empty, the pool still running, and the worker count
//     still above the low watermark, it exits.
//
//   - Draining. Once Stop transitions the pool out of Run, workers keep
//     draining the queue to empty without honoring the idle timeout, then
//     exit as soon as it is empty.
//
// Basic usage
//
//	e := executor.New()
//	if err := e.Start(executor.Config{
//	    Name: "conn-pool", LowWatermark: 2, HighWatermark: 8,
//	    MaxQueueSize: 64, IdleTimeout: time.Second,
//	}); err != nil {
//	    log.Fatal(err)
//	}
//	if !e.Submit(func() { handle(conn) }) {
//	    conn.Close() // back-pressure: shed the connection
//	}
//	e.Stop(true) // blocks until every queued task has run
package executor
