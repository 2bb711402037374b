package vorbis

// Vorbis header packet types (Vorbis I spec §4.2.1).
const (
	packetTypeID      = 1
	packetTypeComment = 3
	packetTypeSetup   = 5
)

// headerSignature follows the packet-type byte in every header.
const headerSignature = "vorbis"

// idHeaderSize is the fixed size of the identification header.
const idHeaderSize = 30

// maxModes is the hard ceiling on mode configurations: the mode number
// field of an audio packet is at most 6 bits wide.
const maxModes = 64

// parseStatus tracks the one-shot header parse. Parsing is attempted
// at most once per Parser; a failed attempt is never retried.
type parseStatus int

const (
	statusUnparsed parseStatus = iota // headers not yet examined
	statusInvalid                     // parse attempted and failed
	statusValid                       // headers parsed, durations available
)
