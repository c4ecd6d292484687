// Package xenigma simulates the Enigma rotor cipher machines.
//
// The enigma package models the electrical path of a machine: the plugboard, the rotor stack with its
// stepping mechanism (double step included) and the reflector. The catalog package holds the historical
// rotor and reflector wirings, and the settings package turns a key sheet line into a ready machine.
//
// You can push text through a machine manually using the Encoder and Decoder types of the operator package,
// or automate the work by passing a Tap to an operator.Engine. Check taps.DirectoryWatcherTap to see an example.
package xenigma
