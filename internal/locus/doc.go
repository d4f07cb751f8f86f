// Package locus builds the fixed-width string keys that address verse
// lines. Keys sort lexically in document order for books 0-99 and lines
// 0-999, so ranges of lines can be compared as plain strings.
package locus
