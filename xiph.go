package vorbis

import "encoding/binary"

// SplitHeaders splits a combined extradata blob into the three Vorbis
// headers: identification, comment and setup.
//
// Two layouts are recognized. The common one is Xiph lacing (used by
// Matroska and WebM): a count byte of 2, the laced lengths of the
// first two headers (sums of 255-valued bytes plus a terminator), then
// the header bytes back to back, with the setup header running to the
// end of the blob. The other prefixes each of the three headers with a
// 16-bit big-endian length; it is detected by the first length being
// 30, the fixed identification-header size.
//
// The returned slices alias extradata.
func SplitHeaders(extradata []byte) (id, comment, setup []byte, err error) {
	if len(extradata) >= 6 && binary.BigEndian.Uint16(extradata) == idHeaderSize {
		var hdr [3][]byte
		off := 0
		for i := range hdr {
			if off+2 > len(extradata) {
				return nil, nil, nil, ErrInvalidExtradata
			}
			n := int(binary.BigEndian.Uint16(extradata[off:]))
			off += 2
			if off+n > len(extradata) {
				return nil, nil, nil, ErrInvalidExtradata
			}
			hdr[i] = extradata[off : off+n]
			off += n
		}
		return hdr[0], hdr[1], hdr[2], nil
	}

	if len(extradata) == 0 || extradata[0] != 2 {
		return nil, nil, nil, ErrInvalidExtradata
	}

	// Xiph lacing carries the lengths of the first two headers only.
	var lens [2]int
	j := 1
	for i := range lens {
		for j < len(extradata) && extradata[j] == 0xFF {
			lens[i] += 0xFF
			j++
		}
		if j >= len(extradata) {
			return nil, nil, nil, ErrInvalidExtradata
		}
		lens[i] += int(extradata[j])
		j++
	}
	if j+lens[0]+lens[1] > len(extradata) {
		return nil, nil, nil, ErrInvalidExtradata
	}

	id = extradata[j : j+lens[0]]
	comment = extradata[j+lens[0] : j+lens[0]+lens[1]]
	setup = extradata[j+lens[0]+lens[1]:]
	return id, comment, setup, nil
}
