// Package vorbis determines the duration, in samples, of compressed
// Vorbis audio packets without decoding them.
//
// A Vorbis packet does not carry its duration; it selects one of the
// stream's encoding modes in its first byte, and each mode maps to one
// of the two block sizes declared in the identification header. The
// duration of a packet is derived from the current and previous block
// sizes, because adjacent Vorbis windows overlap by half.
//
// The mode-to-block-size table lives at the very end of the setup
// header, behind codebooks, floors, residues and mappings that only a
// full decoder could walk forward. The parser instead scans the setup
// header backwards from its trailing framing bit and locates the mode
// table heuristically, so only a few hundred header bytes are ever
// inspected and no audio is decoded.
//
// # Basic Usage
//
// With the three Vorbis headers in a combined extradata blob (Xiph
// lacing, as found in Matroska or FLV):
//
//	p := vorbis.NewParser(extradata)
//	for _, pkt := range packets {
//	    duration, err := p.PacketDuration(pkt)
//	    if err != nil {
//	        // no duration for this stream or packet; pkt is still valid data
//	        continue
//	    }
//	    // timestamp pkt using duration...
//	}
//
// With already-separated header packets (as delivered by an Ogg
// demuxer, where the identification header is the first packet and the
// setup header the third):
//
//	p := vorbis.NewParserFromHeaders(idHeader, setupHeader)
//
// Headers are parsed lazily on the first PacketDuration call and at
// most once per Parser. If they fail to parse, every PacketDuration
// call reports the same error; the packets themselves remain valid and
// are never modified by this package.
//
// # Thread Safety
//
// Parser instances are NOT safe for concurrent use: duration
// computation is stateful (each packet's duration depends on the
// previous packet's block size). Use one Parser per logical stream.
//
// # Reference
//
// Vorbis I specification: https://xiph.org/vorbis/doc/Vorbis_I_spec.html
package vorbis
