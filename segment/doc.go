// Package segment maps decimal digits to TM1637 seven-segment patterns.
//
// A pattern is one byte per digit. Each bit lights one segment:
//
//	    --A--
//	   |     |
//	   F     B
//	   |     |
//	    --G--
//	   |     |
//	   E     C
//	   |     |
//	    --D--  .DP
//
//	bit: 7  6 5 4 3 2 1 0
//	seg: DP G F E D C B A
//
// This package provides:
//
// - Named segment bits (A to G, DP) and the Blank pattern
// - Digit: the pattern of a single decimal digit
// - Digits: the four low decimal digits of an integer
// - Encode: Digit applied to four positions
//
// Example usage:
//
//	// Patterns for "0042"
//	segs := segment.Encode(segment.Digits(42))
//
//	// Light the decimal point after the second digit
//	segs[1] |= segment.DP
package segment
