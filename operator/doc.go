/*
Package operator runs Enigma sessions over byte streams.

The Encoder and the Decoder read text from an io.Reader, push every letter through a
machine and write the result into one or more io.Writer outputs. Accents are folded
and lower case letters are upper-cased before they reach the machine.

The Engine serves the work units a Tap pushes into its pipe. Each work unit carries
its own Keyring, so every task is processed by a freshly built machine and the
tasks can safely run in parallel.
*/
package operator
