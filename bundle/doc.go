// Package bundle collects heterogeneous threat-intelligence objects and
// maintains lookup indices over them: an identity index for O(1) Get, and a
// reverse-reference index so "what points at this object" is answerable
// without scanning.
//
// A Bundle is single-writer, multiple-reader. Reads may run concurrently
// with each other; callers serialize Insert against everything else.
package bundle
