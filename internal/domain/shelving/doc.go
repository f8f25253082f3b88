// Package shelving implements the KDC shelving-order rules for library call
// numbers.
//
// A call number is reduced to a SortKey with six fixed positions:
//
//	Class      classification as a decimal number
//	Hangul     leading Hangul run of the author code
//	AuthorNum  cutter number of the author code
//	WorkMark   text after the cutter number
//	VolKind    none < volume (v.) < copy (c.)
//	VolNum     the designator number
//
// Keys compare lexicographically, which yields the three shelving stages:
// classification first, then author code, then volume/copy. Compare and
// Explain are pure and safe for concurrent use.
package shelving
