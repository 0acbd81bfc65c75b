// Package testutil provides utilities for testing inkwell components.
//
// Key components:
//   - Recorder: goroutine-safe io.Writer that keeps every write, for asserting
//     on the exact escape sequences a live region emits
//   - PlainConsole / ANSIConsole: consoles with fixed capabilities writing
//     into a Recorder, so output never depends on the machine running tests
//   - Strip / Lines: turn recorded output into comparable plain text
//
// Usage guidelines:
//   - Never probe the real terminal in tests; build capabilities explicitly
//   - Compare plain text with Strip unless the escape sequences are the point
//     of the test
package testutil
