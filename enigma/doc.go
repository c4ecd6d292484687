// Package enigma implements the electrical path of a rotor cipher machine.
//
// A Machine is assembled from a Reflector, an optional Plugboard and a stack of Rotors.
// Every call to Encipher is one key press: the rotors step first, then the signal travels
// through the plugboard, the rotors from right to left, the reflector, the rotors from left
// to right and finally back through the plugboard.
//
//	reflector, err := enigma.NewReflector("B", wiringB)
//	...
//	machine, err := enigma.NewMachine(reflector, plugboard, left, middle, right)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cipher, err := machine.EncipherString("HELLOWORLD")
//
// Because the reflector is an involution without fixed points, the whole path is self-inverse:
// a second machine with identical settings turns the cipher text back into the plain text.
//
// The package holds no wiring tables. Historical rotors and reflectors live in the catalog package.
//
// A Machine is not safe for concurrent use. Independent machines share nothing and can run in parallel.
package enigma
