// Package fixresx runs resx reconciliations against a directory layout.
//
// A run for a base name reads the canonical designer and the template resx,
// writes the rewritten resx next to the working copy, installs it together
// with the template designer and appends a run log. Runs can optionally be
// archived to object storage and recorded in a database.
//
// The package also exposes the runs over HTTP:
//
//	POST /fix/run?base=Forms/MainForm
//	POST /fix/preview
//	GET  /fix/runs
//	GET  /fix/archive?base=Forms/MainForm
package fixresx
