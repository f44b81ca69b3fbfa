// Package diffslice is a thin factory wrapping myersdiff.Compare for the
// common case of diffing two slices, mirroring the convenience wrapper the
// teacher's element.go provided around its own core.
package diffslice

import "github.com/ksnake/myersdiff"

// Compare diffs two slices of any comparable type.
func Compare[T comparable](a, b []T, opts ...myersdiff.Option) (*myersdiff.Results, error) {
	return myersdiff.Compare[T](myersdiff.Slice[T](a), myersdiff.Slice[T](b), opts...)
}

// Strings diffs two slices of strings, the most common case (line diffs,
// token diffs).
func Strings(a, b []string, opts ...myersdiff.Option) (*myersdiff.Results, error) {
	return Compare(a, b, opts...)
}
