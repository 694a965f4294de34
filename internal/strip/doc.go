// Package strip implements the individual cleaning stages: header removal,
// import, annotation and comment removal on the tree, and blank-line compaction.
package strip
