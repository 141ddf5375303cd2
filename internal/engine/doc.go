// Package engine implements the presentation state machine behind the
// scripted demo scenes.
//
// Four small sub-machines cooperate behind one composition root:
//
//   - [Reveal]: timed grapheme-by-grapheme disclosure of a known string
//   - [Stopwatch]: elapsed counter armed at reveal start, frozen on done
//   - [Idle]: chrome visibility driven by pointer-activity recency
//   - [Modes]: key-bound boolean display flags with a reset subset
//
// plus [Hover], a timerless last-write-wins disclosure cursor.
//
// The engine owns no goroutines and no real timers. The host schedules two
// tick cadences (the reveal tick and a faster UI tick) and forwards input
// events; every call runs to completion before the next, so no locking is
// needed. [Engine.Snapshot] is the only state the rendering layer sees.
//
// # Teardown
//
// [Engine.Close] invalidates the engine: ticks and events delivered by a
// stale timer afterwards are no-ops. Hosts must stop their tick commands
// and detach listeners in the same operation.
package engine
