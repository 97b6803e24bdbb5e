// Package launcher runs the build step and then each configured test suite
// in its own JVM, one after another.
//
// A run is a fixed linear sequence: resolve the OS flags, invoke the build
// tool, then invoke the runtime once per suite in configured order. Children
// inherit the launcher's standard streams and nothing they print is captured.
// By default the build's exit status does not stop the run and the overall
// exit code is the last suite's exit code; Config.StrictBuild and
// Config.AggregateExit tighten both.
package launcher
