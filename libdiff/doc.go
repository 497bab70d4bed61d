// Package libdiff computes and prints line diffs between two renders of
// a document.
package libdiff
