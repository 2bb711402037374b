package vorbis

import (
	"encoding/binary"
	"log/slog"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// parseIDHeader extracts the two block sizes, the sample rate and the
// channel count from the identification header (Vorbis I spec §4.2.2).
//
// Only the fields the parser needs are validated. The block-size
// exponents are taken as-is from the two nibbles of byte 28: the
// reference decoder accepts implausible exponents too, so a block size
// as small as 1 is allowed here.
func (p *Parser) parseIDHeader(buf []byte) error {
	// Id header is exactly 30 bytes.
	if len(buf) < idHeaderSize {
		return ErrHeaderTooShort
	}
	if buf[0] != packetTypeID {
		return ErrWrongPacketType
	}
	if string(buf[1:7]) != headerSignature {
		return ErrBadSignature
	}
	if buf[29]&1 == 0 {
		return ErrMissingFramingBit
	}

	p.channels = buf[11]
	p.sampleRate = binary.LittleEndian.Uint32(buf[12:16])
	p.blockSize[0] = 1 << (buf[28] & 0x0F)
	p.blockSize[1] = 1 << (buf[28] >> 4)

	return nil
}

// parseSetupHeader recovers the mode count, the per-mode block sizes
// and the packet mode mask from the setup header.
//
// The mode configurations are the last fields of the setup header
// (Vorbis I spec §4.2.4), preceded by codebooks, floors, residues and
// mappings whose sizes cannot be known without decoding them. Instead
// of walking all of that, the header bytes are reversed and read
// forward, so the trailing framing bit and the mode list are found
// near the start of the scan. The reversal swaps byte order only, not
// the bits within each byte; it is not an exact stream inverse, but
// the fields tested below line up with encoder output in practice, and
// the behavior is kept as-is.
func (p *Parser) parseSetupHeader(buf []byte) error {
	// Avoid overread.
	if len(buf) < 7 {
		return ErrHeaderTooShort
	}
	if buf[0] != packetTypeSetup {
		return ErrWrongPacketType
	}
	if string(buf[1:7]) != headerSignature {
		return ErrBadSignature
	}

	rev := make([]byte, len(buf))
	for i := range rev {
		rev[i] = buf[len(buf)-1-i]
	}
	r := bits.NewReader(rev)

	// The setup header ends with a framing bit of 1; in the reversed
	// buffer it is the first set bit. The guard leaves room for the
	// smallest possible mode entry plus the trailing checks below.
	framingBitPos := 0
	for r.BitsLeft() > 97 {
		if r.Get1Bit() != 0 {
			framingBitPos = r.Pos()
			break
		}
	}
	if framingBitPos == 0 {
		return ErrInvalidSetupHeader
	}

	// Now search for plausible mode counts, continuing past the
	// framing bit. Read backwards, each mode shows its mapping number
	// (at most 6 bits wide forward, so > 63 cannot be one), two
	// 16-bit fields that are zero in all observed content, and the
	// window flag. A candidate end of the list is confirmed when the
	// following 6 bits look like a "mode count minus one" field
	// matching the number of entries seen so far. This is not
	// fool-proof (a false positive could make the scan read too far),
	// but there is no way to be sure without decoding everything that
	// precedes the modes, and it holds up well in testing.
	modeCount := 0
	lastModeCount := 0
	for r.BitsLeft() >= 97 {
		if r.GetBits(8) > 63 || r.GetBits(16) != 0 || r.GetBits(16) != 0 {
			break
		}
		r.SkipBits(1)
		modeCount++
		if modeCount > maxModes {
			break
		}
		peek := r
		if peek.GetBits(6)+1 == uint32(modeCount) {
			lastModeCount = modeCount
		}
	}
	if lastModeCount == 0 {
		return ErrInvalidSetupHeader
	}
	// Every sample seen so far uses 1 or 2 modes; a higher count is
	// more likely a false positive of the scan than a real stream.
	if lastModeCount > 2 {
		p.logger().Warn("unusually high mode count, possibly a false positive",
			slog.Int("mode_count", lastModeCount))
	}
	p.modeCount = uint32(lastModeCount)

	// Number of bits needed to hold a mode number, minimum 1.
	maskBits := uint32(1)
	for 1<<maskBits < p.modeCount {
		maskBits++
	}
	p.modeMask = (1<<maskBits - 1) << 1

	// Rewind to the framing bit and collect the block-size flag of
	// each mode. Read backwards the flag is the last of a mode's 41
	// bits, so each entry is 40 bits of skip plus the flag, last mode
	// first.
	r = bits.NewReader(rev)
	r.SkipBits(framingBitPos)
	for i := int(p.modeCount) - 1; i >= 0; i-- {
		r.SkipBits(40)
		p.modeBlockSize[i] = p.blockSize[r.Get1Bit()]
	}

	return nil
}
