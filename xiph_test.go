package vorbis

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitHeaders_XiphLacing(t *testing.T) {
	id := buildIDHeader(8, 11, 44100, 2)
	comment := fakeCommentHeader()
	setup := buildSetupHeader([]uint32{0, 1})

	gotID, gotComment, gotSetup, err := SplitHeaders(laceExtradata(id, comment, setup))
	if err != nil {
		t.Fatalf("SplitHeaders() error = %v", err)
	}
	if diff := cmp.Diff(id, gotID); diff != "" {
		t.Errorf("id header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(comment, gotComment); diff != "" {
		t.Errorf("comment header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(setup, gotSetup); diff != "" {
		t.Errorf("setup header mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitHeaders_LongLacedLength(t *testing.T) {
	// A comment header longer than 254 bytes forces a multi-byte laced
	// length (0xFF continuation bytes).
	id := buildIDHeader(8, 11, 44100, 2)
	comment := bytes.Repeat([]byte{0xAA}, 600)
	setup := buildSetupHeader([]uint32{1})

	_, gotComment, gotSetup, err := SplitHeaders(laceExtradata(id, comment, setup))
	if err != nil {
		t.Fatalf("SplitHeaders() error = %v", err)
	}
	if len(gotComment) != 600 {
		t.Errorf("comment length = %d, want 600", len(gotComment))
	}
	if diff := cmp.Diff(setup, gotSetup); diff != "" {
		t.Errorf("setup header mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitHeaders_SizePrefixed(t *testing.T) {
	id := buildIDHeader(8, 11, 44100, 2)
	comment := fakeCommentHeader()
	setup := buildSetupHeader([]uint32{0, 1})

	var blob []byte
	for _, h := range [][]byte{id, comment, setup} {
		blob = binary.BigEndian.AppendUint16(blob, uint16(len(h)))
		blob = append(blob, h...)
	}

	gotID, _, gotSetup, err := SplitHeaders(blob)
	if err != nil {
		t.Fatalf("SplitHeaders() error = %v", err)
	}
	if diff := cmp.Diff(id, gotID); diff != "" {
		t.Errorf("id header mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(setup, gotSetup); diff != "" {
		t.Errorf("setup header mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitHeaders_Corrupt(t *testing.T) {
	tests := []struct {
		name      string
		extradata []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"wrong header count", []byte{3, 1, 1, 0xAA, 0xBB}},
		{"lacing runs off the end", []byte{2, 0xFF, 0xFF}},
		{"lengths exceed blob", []byte{2, 200, 200, 1, 2, 3}},
		{"size prefix exceeds blob", []byte{0, 30, 1, 'v', 'o', 'r'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := SplitHeaders(tt.extradata)
			if err != ErrInvalidExtradata {
				t.Errorf("SplitHeaders() error = %v, want %v", err, ErrInvalidExtradata)
			}
		})
	}
}
