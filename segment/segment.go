package segment

// Segment bits of a pattern.
const (
	A  byte = 1 << iota // Top
	B                   // Top right
	C                   // Bottom right
	D                   // Bottom
	E                   // Bottom left
	F                   // Top left
	G                   // Middle
	DP                  // Decimal point

	// Blank turns every segment of a digit off.
	Blank byte = 0x00
)

// digits holds the patterns of 0 to 9.
var digits = [10]byte{
	A | B | C | D | E | F,     // 0x3F
	B | C,                     // 0x06
	A | B | D | E | G,         // 0x5B
	A | B | C | D | G,         // 0x4F
	B | C | F | G,             // 0x66
	A | C | D | F | G,         // 0x6D
	A | C | D | E | F | G,     // 0x7D
	A | B | C,                 // 0x07
	A | B | C | D | E | F | G, // 0x7F
	A | B | C | D | F | G,     // 0x6F
}

// Digit returns the pattern of decimal digit d. Values above 9 are Blank.
func Digit(d byte) byte {
	if int(d) >= len(digits) {
		return Blank
	}
	return digits[d]
}

// Digits splits n into its four low decimal digits, most significant first.
//
// Leading zeros are kept (7 gives 0, 0, 0, 7) and higher digits are dropped
// (12345 gives 2, 3, 4, 5). A negative n produces negative remainders; they
// are returned as out of range values, which Digit renders as Blank.
func Digits(n int) [4]byte {
	var out [4]byte
	for i := len(out) - 1; i >= 0; i-- {
		r := n % 10
		if r < 0 {
			out[i] = 0xFF
		} else {
			out[i] = byte(r)
		}
		n /= 10
	}
	return out
}

// Encode maps four decimal digits to their patterns.
func Encode(d [4]byte) [4]byte {
	var out [4]byte
	for i, v := range d {
		out[i] = Digit(v)
	}
	return out
}
