// Package bits provides bit-level reading from byte buffers.
package bits

// Reader reads bits MSB-first from a byte buffer.
//
// A Reader is a plain value: copying one snapshots the cursor, which
// is how callers do speculative reads (copy, read ahead, discard the
// copy). Reads past the end of the buffer yield zero bits and keep
// advancing the position, so BitsLeft may go negative after an
// overread.
type Reader struct {
	data []byte
	pos  int // bit offset from the start of data
}

// NewReader returns a Reader positioned at the first bit of data.
func NewReader(data []byte) Reader {
	return Reader{data: data}
}

// BitsLeft returns the number of unread bits remaining in the buffer.
func (r *Reader) BitsLeft() int {
	return len(r.data)*8 - r.pos
}

// Pos returns the number of bits consumed so far.
func (r *Reader) Pos() int {
	return r.pos
}

// Get1Bit reads and returns a single bit.
func (r *Reader) Get1Bit() uint32 {
	if r.pos >= len(r.data)*8 {
		r.pos++
		return 0
	}
	b := r.data[r.pos>>3] >> (7 - uint(r.pos&7))
	r.pos++
	return uint32(b & 1)
}

// GetBits reads and returns the next n bits, right-aligned.
// n must be 0-32.
func (r *Reader) GetBits(n uint) uint32 {
	var v uint32
	for n > 0 {
		if r.pos >= len(r.data)*8 {
			// Past the end: the missing bits read as zero.
			v <<= n
			r.pos += int(n)
			break
		}
		avail := 8 - uint(r.pos&7)
		take := avail
		if n < take {
			take = n
		}
		chunk := uint32(r.data[r.pos>>3]) >> (avail - take)
		chunk &= 1<<take - 1
		v = v<<take | chunk
		r.pos += int(take)
		n -= take
	}
	return v
}

// SkipBits advances the cursor by n bits without reading them.
func (r *Reader) SkipBits(n int) {
	r.pos += n
}
