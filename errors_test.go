package vorbis

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  Error
		want string
	}{
		{ErrNone, "no error"},
		{ErrHeaderTooShort, "header is too short"},
		{ErrWrongPacketType, "wrong packet type in header"},
		{ErrBadSignature, "invalid packet signature in header"},
		{ErrMissingFramingBit, "invalid framing bit in Id header"},
		{ErrInvalidSetupHeader, "invalid Setup header"},
		{ErrInvalidExtradata, "extradata corrupt"},
		{ErrInvalidPacket, "invalid packet"},
		{ErrInvalidMode, "invalid mode in packet"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error(%d) = %q, want %q", int(tt.err), got, tt.want)
		}
	}
}

func TestErrorUnknownCode(t *testing.T) {
	if got := Error(99).Error(); got != "unknown error" {
		t.Errorf("Error(99) = %q, want %q", got, "unknown error")
	}
	if got := Error(-1).Error(); got != "unknown error" {
		t.Errorf("Error(-1) = %q, want %q", got, "unknown error")
	}
}

func TestErrorComparison(t *testing.T) {
	// Errors wrapped with %w must still match their code.
	wrapped := fmt.Errorf("stream 3: %w", ErrInvalidSetupHeader)
	if !errors.Is(wrapped, ErrInvalidSetupHeader) {
		t.Error("errors.Is failed to match a wrapped Error")
	}
	if errors.Is(wrapped, ErrInvalidPacket) {
		t.Error("errors.Is matched the wrong Error code")
	}
}
