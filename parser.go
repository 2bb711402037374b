package vorbis

import "log/slog"

// Parser computes packet durations for one logical Vorbis stream.
//
// It holds the block sizes and mode table extracted from the stream
// headers, plus the previous packet's block size, which the duration
// of the next packet depends on. A Parser must not be shared between
// streams or goroutines.
type Parser struct {
	// Header sources; consumed by the one-shot lazy parse.
	extradata   []byte // combined Xiph blob, split before parsing
	idHeader    []byte // pre-split identification header
	setupHeader []byte // pre-split setup header

	status   parseStatus
	parseErr error // result of a failed parse, returned on every call

	blockSize         [2]uint32 // short and long window sizes
	previousBlockSize uint32    // window size of the previous packet
	modeBlockSize     [maxModes]uint32
	modeCount         uint32
	modeMask          uint32 // isolates the mode number in a packet's first byte

	sampleRate uint32
	channels   uint8

	log *slog.Logger
}

// NewParser returns a Parser for a stream whose three Vorbis headers
// are combined into a single extradata blob, either Xiph-laced or with
// 16-bit size prefixes (see SplitHeaders). The headers are parsed
// lazily on the first PacketDuration call.
func NewParser(extradata []byte) *Parser {
	return &Parser{extradata: extradata}
}

// NewParserFromHeaders returns a Parser for a stream whose
// identification and setup headers are already separate packets, as an
// Ogg demuxer delivers them (first and third stream packet). The
// comment header is never needed. The headers are parsed lazily on the
// first PacketDuration call.
func NewParserFromHeaders(idHeader, setupHeader []byte) *Parser {
	return &Parser{idHeader: idHeader, setupHeader: setupHeader}
}

// SetLogger sets the logger used for non-fatal diagnostics. The
// default is slog.Default().
func (p *Parser) SetLogger(l *slog.Logger) {
	p.log = l
}

func (p *Parser) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return slog.Default()
}

// PacketDuration returns the number of samples the given packet
// contributes to the decoded stream.
//
// packet is only inspected, never modified or retained; the parser
// reads at most its first byte. An error means no duration could be
// assigned - either the headers never parsed (the same header error is
// reported for every packet of the stream) or this one packet is
// malformed (ErrInvalidPacket, ErrInvalidMode) - and never invalidates
// the packet itself, which the caller should keep processing as
// opaque data. Failed calls do not change parser state.
func (p *Parser) PacketDuration(packet []byte) (uint32, error) {
	if err := p.parseHeadersOnce(); err != nil {
		return 0, err
	}
	if len(packet) == 0 {
		return 0, ErrInvalidPacket
	}

	// Audio packets have bit 0 clear; a set bit marks a header packet
	// or garbage.
	if packet[0]&1 != 0 {
		return 0, ErrInvalidPacket
	}
	mode := (uint32(packet[0]) & p.modeMask) >> 1
	if mode >= p.modeCount {
		return 0, ErrInvalidMode
	}

	// Windows overlap by half, so a packet contributes the average of
	// the previous and current block sizes, halved again.
	current := p.modeBlockSize[mode]
	duration := (p.previousBlockSize + current) >> 2
	p.previousBlockSize = current
	return duration, nil
}

// parseHeadersOnce runs the header parse on first use. Both success
// and failure are final: a failed parse is cached and never retried.
func (p *Parser) parseHeadersOnce() error {
	switch p.status {
	case statusValid:
		return nil
	case statusInvalid:
		return p.parseErr
	}

	if err := p.parseHeaders(); err != nil {
		p.status = statusInvalid
		p.parseErr = err
		return err
	}
	p.status = statusValid
	p.previousBlockSize = p.modeBlockSize[0]
	return nil
}

func (p *Parser) parseHeaders() error {
	id, setup := p.idHeader, p.setupHeader
	if id == nil && setup == nil {
		var err error
		id, _, setup, err = SplitHeaders(p.extradata)
		if err != nil {
			return err
		}
	}
	if err := p.parseIDHeader(id); err != nil {
		return err
	}
	return p.parseSetupHeader(setup)
}

// Valid reports whether the stream headers parsed successfully and
// durations are available. It triggers the lazy parse if it has not
// run yet.
func (p *Parser) Valid() bool {
	return p.parseHeadersOnce() == nil
}

// BlockSizes returns the stream's short and long window sizes in
// samples. Meaningful only when Valid.
func (p *Parser) BlockSizes() (short, long uint32) {
	return p.blockSize[0], p.blockSize[1]
}

// ModeCount returns the number of modes found in the setup header.
// Meaningful only when Valid.
func (p *Parser) ModeCount() uint32 {
	return p.modeCount
}

// SampleRate returns the sample rate declared in the identification
// header. Meaningful only when Valid.
func (p *Parser) SampleRate() uint32 {
	return p.sampleRate
}

// Channels returns the channel count declared in the identification
// header. Meaningful only when Valid.
func (p *Parser) Channels() uint8 {
	return p.channels
}
