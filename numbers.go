package datefmt

// numberingSystems maps a CLDR numbering system id to its ten digits.
// Only decimal positional systems are supported; algorithmic systems such
// as roman numerals fall back to latn.
var numberingSystems = map[string][]rune{
	"latn":    []rune("0123456789"),
	"arab":    []rune("٠١٢٣٤٥٦٧٨٩"),
	"arabext": []rune("۰۱۲۳۴۵۶۷۸۹"),
	"beng":    []rune("০১২৩৪৫৬৭৮৯"),
	"deva":    []rune("०१२३४५६७८९"),
	"mymr":    []rune("၀၁၂၃၄၅၆၇၈၉"),
	"thai":    []rune("๐๑๒๓๔๕๖๗๘๙"),
}

// digitsFor selects the digit set for a numbering system override. An
// unknown override falls back to the locale's default system, and only an
// unknown default falls back to latn.
func digitsFor(system, localeDefault string) []rune {
	if system == "" {
		system = localeDefault
	}
	if digits, ok := numberingSystems[system]; ok {
		return digits
	}
	if digits, ok := numberingSystems[localeDefault]; ok {
		return digits
	}
	return numberingSystems["latn"]
}

// appendInt appends v using the given digit set, left-padded with zero
// digits to width. Negative values are prefixed with an ASCII minus.
func appendInt(b []byte, digits []rune, v, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	var tmp [20]int
	n := 0
	for {
		tmp[n] = v % 10
		v /= 10
		n++
		if v == 0 {
			break
		}
	}
	for n < width {
		tmp[n] = 0
		n++
	}
	for i := n - 1; 0 <= i; i-- {
		b = append(b, string(digits[tmp[i]])...)
	}
	return b
}
