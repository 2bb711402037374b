package vorbis

// Error represents a Vorbis parser error.
type Error int

// Parser errors. Header errors (too short through invalid setup
// header) are terminal for duration tracking on the stream; packet
// errors (invalid packet, invalid mode) are local to one packet.
const (
	ErrNone               Error = 0
	ErrHeaderTooShort     Error = 1
	ErrWrongPacketType    Error = 2
	ErrBadSignature       Error = 3
	ErrMissingFramingBit  Error = 4
	ErrInvalidSetupHeader Error = 5
	ErrInvalidExtradata   Error = 6
	ErrInvalidPacket      Error = 7
	ErrInvalidMode        Error = 8
)

var errMessages = [9]string{
	"no error",
	"header is too short",
	"wrong packet type in header",
	"invalid packet signature in header",
	"invalid framing bit in Id header",
	"invalid Setup header",
	"extradata corrupt",
	"invalid packet",
	"invalid mode in packet",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
