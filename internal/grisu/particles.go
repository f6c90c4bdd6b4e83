package grisu

// corsikaToKascade maps CORSIKA particle type codes onto the kascade codes
// the downstream detector simulation understands. The table is physics
// vocabulary, not configuration; codes absent here (4, 15 and everything
// past 16) have no kascade equivalent and are reported as unknown rather
// than guessed.
var corsikaToKascade = map[int]int{
	1:  1,  // gamma
	2:  2,  // e-
	3:  3,  // e+
	5:  4,  // mu+
	6:  5,  // mu-
	7:  6,  // pi0
	8:  7,  // pi+
	9:  8,  // pi-
	11: 9,  // K+
	12: 10, // K-
	10: 11, // K0 long
	16: 12, // K0 short
	14: 13, // proton
	13: 14, // neutron
}

// KascadeID looks up the kascade particle code for a CORSIKA code. The
// second return is false when the particle has no kascade equivalent;
// callers annotate that in the emitted text instead of failing.
func KascadeID(corsikaID int) (int, bool) {
	id, ok := corsikaToKascade[corsikaID]
	return id, ok
}
