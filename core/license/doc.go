// Package license supplies the text block written at the top of every
// rewritten resx file, in place of the template's schema comment.
//
// The default block is embedded in the binary. A deployment can point
// paths.license_path at its own file instead.
package license
