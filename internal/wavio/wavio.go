// Package wavio reads and writes the uncompressed PCM WAV containers
// the cover/stego signals are stored in, over go-audio/wav. It owns
// the dtype<->container mapping and the channel-0 reduction spec.md
// §6 assigns to the façade boundary.
package wavio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	sig "github.com/linuxmatters/audiosteg/internal/signal"
)

// Read opens a WAV file and returns a Signal already reduced to
// channel 0, its dtype inferred from the container's bit depth.
func Read(path string) (sig.Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sig.Signal{}, fmt.Errorf("file not found: %s: %w", path, err)
		}
		return sig.Signal{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return decode(f, path)
}

// ReadReader decodes a PCM WAV container from an in-memory reader,
// for callers (such as the MP3 round-trip modification) that never
// touch the filesystem.
func ReadReader(r io.ReadSeeker) (sig.Signal, error) {
	return decode(r, "<reader>")
}

func decode(r io.ReadSeeker, path string) (sig.Signal, error) {
	dec := wav.NewDecoder(r)
	dec.ReadInfo()
	if !dec.WasPCMAccessed() && !dec.IsValidFile() {
		return sig.Signal{}, fmt.Errorf("malformed WAV container %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return sig.Signal{}, fmt.Errorf("read PCM data from %s: %w", path, err)
	}

	dtype, err := dtypeForBitDepth(int(dec.BitDepth))
	if err != nil {
		return sig.Signal{}, fmt.Errorf("%s: %w", path, err)
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v)
	}

	channels := buf.Format.NumChannels
	mono := sig.Channel0(samples, channels)
	return sig.NewSignal(mono, dtype, int(dec.SampleRate)), nil
}

func dtypeForBitDepth(bits int) (sig.DType, error) {
	switch bits {
	case 8:
		return sig.U8, nil
	case 16:
		return sig.I16, nil
	case 32:
		return sig.I32, nil
	default:
		return 0, fmt.Errorf("unsupported WAV bit depth %d", bits)
	}
}

func bitDepthForDType(d sig.DType) (int, error) {
	switch d {
	case sig.U8:
		return 8, nil
	case sig.I16:
		return 16, nil
	case sig.I32:
		return 32, nil
	default:
		return 0, fmt.Errorf("dtype %s has no integer WAV encoding; cast before writing", d)
	}
}

// Write encodes a single-channel Signal as a PCM WAV file at path.
func Write(path string, s sig.Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Encode(f, s)
}

// Encode writes s as a PCM WAV container to w.
func Encode(w io.WriteSeeker, s sig.Signal) error {
	bitDepth, err := bitDepthForDType(s.DType)
	if err != nil {
		return err
	}
	enc := wav.NewEncoder(w, s.SampleRate, bitDepth, 1, 1)

	ints := make([]int, len(s.Samples))
	for i, v := range s.Samples {
		ints[i] = int(v)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: s.SampleRate},
		Data:           ints,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode PCM: %w", err)
	}
	return enc.Close()
}
