// Command vorbisdur prints the duration of an Ogg Vorbis file computed
// from packet headers alone, without decoding any audio.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonas747/ogg"
	"github.com/llehouerou/go-vorbis"
)

func main() {
	verbose := flag.Bool("v", false, "print the duration of every packet")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: vorbisdur [-v] file.ogg")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *verbose); err != nil {
		slog.Error("vorbisdur failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := ogg.NewPacketDecoder(ogg.NewDecoder(f))

	// The first three packets of a Vorbis stream are the
	// identification, comment and setup headers; the parser needs the
	// first and third. The decoder may reuse its buffers, so copy.
	var headers [3][]byte
	for i := range headers {
		pkt, _, err := dec.Decode()
		if err != nil {
			return fmt.Errorf("reading header packet %d: %w", i, err)
		}
		headers[i] = append([]byte(nil), pkt...)
	}

	p := vorbis.NewParserFromHeaders(headers[0], headers[2])

	var totalSamples uint64
	packets := 0
	for {
		pkt, _, err := dec.Decode()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading packet %d: %w", packets, err)
		}

		duration, err := p.PacketDuration(pkt)
		if err != nil {
			// The packet is still valid audio data; it just gets no
			// duration.
			slog.Warn("no duration for packet",
				slog.Int("packet", packets),
				slog.String("error", err.Error()))
			packets++
			continue
		}
		if verbose {
			fmt.Printf("packet %d: %d samples\n", packets, duration)
		}
		totalSamples += uint64(duration)
		packets++
	}

	fmt.Printf("%d packets, %d samples", packets, totalSamples)
	if rate := p.SampleRate(); rate > 0 {
		fmt.Printf(", %.3fs @ %d Hz", float64(totalSamples)/float64(rate), rate)
	}
	fmt.Println()
	return nil
}
