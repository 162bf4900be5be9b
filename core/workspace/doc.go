// Package workspace maps a form's base name onto the three directory trees
// the tool works with, and performs the file operations around a run.
//
// # Directories
//
//   - Canonical: the pre-localization tree holding the correct measurements.
//   - Template: the first localization attempt, whose resx is rewritten and
//     whose Designer.cs is copied over the working one.
//   - Working: the tree being repaired, normally close to HEAD.
//
// # Components
//
//   - Config / Paths: resolve "<dir>/<base>.Designer.cs" and "<dir>/<base>.resx".
//   - FileInstaller: moves the rewritten resx into place and copies the designer template.
//   - RunLog: the human-readable log appended to the log file after every run.
package workspace
