package catalog

var historicalRotors = []RotorModel{
	{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notches: "Q"},
	{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notches: "E"},
	{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notches: "V"},
	{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notches: "J"},
	{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notches: "Z"},
	{Name: "VI", Wiring: "JPGVOUMFYQBENHZRDKASXLICTW", Notches: "ZM"},
	{Name: "VII", Wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Notches: "ZM"},
	{Name: "VIII", Wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Notches: "ZM"},
	{Name: "Beta", Wiring: "LEYJVCNIXWPBQMDRTAKZGFUHOS", Fixed: true},
	{Name: "Gamma", Wiring: "FSOKANUERHMBTIYCWLQPZXVGJD", Fixed: true},
	{Name: "Identity", Wiring: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", Notches: "A"},
}

var historicalReflectors = []ReflectorModel{
	{Name: "A", Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{Name: "B", Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{Name: "C", Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	{Name: "B-thin", Wiring: "ENKQAUYWJICOPBLMDXZVFTHRGS"},
	{Name: "C-thin", Wiring: "RDOBJNTKVEHMLFCWZAXGYIPSUQ"},
	{Name: "Mirror", Wiring: "ZYXWVUTSRQPONMLKJIHGFEDCBA"},
}

// Historical returns a catalog of the Wehrmacht and Kriegsmarine rotors I to VIII,
// the M4 greek rotors Beta and Gamma, a pass-through Identity rotor and the reflectors
// A, B, C, B-thin, C-thin and Mirror.
func Historical() *Catalog {
	c := newCatalog()
	for _, m := range historicalRotors {
		if err := c.addRotor(m); err != nil {
			panic(err)
		}
	}
	for _, m := range historicalReflectors {
		if err := c.addReflector(m); err != nil {
			panic(err)
		}
	}
	return c
}
