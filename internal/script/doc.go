// Package script records, stores and replays input for the trail engine.
//
// A [Script] is a time-ordered list of input events in milliseconds. The
// [Recorder] captures one from a live host, [Play] drives a complete
// headless effect from one and reports what happened, and [Orbit] builds a
// synthetic one for benchmarks.
package script
