// Package taps feeds the operator engine with work coming from the local filesystem.
package taps
