// Package reconcile rewrites the geometry entries of a localized resx file so
// they match the measurements in the unlocalized Designer.cs it was built from.
//
// When the Windows Forms designer makes a form Localizable, it copies every
// Size, Point, Location, Padding and splitter setting into the resx file. On a
// machine whose DPI differs from the development machine those copies are
// re-scaled, so the localized form no longer matches the original layout.
//
// # Architecture
//
// The package consists of three components run in sequence:
//
// 1. Indexer: scans the canonical Designer.cs line by line and builds an ordered
// name→value Index of geometry assignments (IndexDesigner).
//
// 2. Reconciler: streams the localized resx template, recognises geometry
// <data> entries, replaces their values from the Index or drops them, and
// records an Outcome per entry.
//
// 3. Report: computes the two-way set difference between the designer names and
// the resx names that survived reconciliation.
//
// Both inputs are scraped with narrow line patterns, not parsed. The patterns
// sit behind the LineRecognizer interface so new shapes can be added without
// touching the reconciliation policy.
//
// # Usage Example
//
//	index, err := reconcile.IndexDesigner(designerFile)
//	r := reconcile.NewReconciler(reconcile.Options{Strict: true, License: header}, logger)
//	result, err := r.Reconcile(index, resxTemplate, out)
//	report := reconcile.BuildReport(index, result.Seen)
//
// # Caching
//
// IndexCache keeps built indices for a TTL so the HTTP service does not rescan
// the same canonical designer file for every request.
package reconcile
