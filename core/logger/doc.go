// Package logger provides a structured logging facility based on Zap.
//
// The CLI logs to the console in a human-readable encoding; the HTTP service
// usually logs JSON. Both are built from the same Config.
//
// # Context Awareness
//
//   - ForRun tags every entry of one reconciliation with its run id and base name.
//   - WithRayID extracts the request id set by the rayid middleware from a Fiber
//     context, so entries from one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	l := logger.ForRun(log, runID, "Forms/MainForm")
//	l.Info("New files written")
package logger
