// Package driver runs the cleaning pipeline over one file or a whole tree.
//
// Clean is the single-file state machine: header, parse, imports,
// annotations, comments, render, compact. It never fails; when the tree
// cannot be built or rendered the header-stripped text is returned and
// Result.Outcome says why.
//
// CleanTree mirrors a source tree into an output root, one independent
// Clean per file, in parallel.
package driver
