// Package core defines sentinel errors.
package core

import "errors"

var (
	// Pipeline errors
	ErrPipelineStopped = errors.New("strix: pipeline stopped")

	// Packet decoding errors
	ErrPacketTooShort = errors.New("strix: packet too short")
	ErrNotUDP         = errors.New("strix: not a UDP datagram")

	// Configuration errors
	ErrConfigInvalid = errors.New("strix: invalid configuration")
)
