// Package tones synthesizes the game's sound cues as PCM.
// The game ships no audio files; every cue is a short sequence of sine notes.
package tones

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Note is a single tone. A zero frequency is a rest.
type Note struct {
	Freq     float64 // Hz
	Duration float64 // seconds
}

// Cue identifiers.
const (
	CueCatch    = "catch"
	CueMiss     = "miss"
	CueGameOver = "gameover"
	CueMusic    = "music"
)

// Cues maps cue identifiers to note sequences.
var Cues = map[string][]Note{
	CueCatch:    {{880, 0.06}, {1320, 0.08}},
	CueMiss:     {{220, 0.12}, {165, 0.16}},
	CueGameOver: {{440, 0.18}, {349, 0.18}, {262, 0.4}},
	CueMusic: {
		{262, 0.25}, {330, 0.25}, {392, 0.25}, {330, 0.25},
		{294, 0.25}, {349, 0.25}, {440, 0.25}, {0, 0.25},
	},
}

// Amplitude is the peak amplitude of synthesized notes (0..1).
const Amplitude = 0.5

// ToneStream is 16-bit signed little-endian stereo PCM.
// It implements io.ReadSeeker so it can back an Ebitengine audio.Player.
type ToneStream struct {
	data       []byte
	sampleRate int
	offset     int64
}

// Synthesize renders notes at the given sample rate.
// Every note fades out linearly to avoid clicks between notes.
func Synthesize(notes []Note, sampleRate int) *ToneStream {
	var frames int
	for _, n := range notes {
		frames += int(n.Duration * float64(sampleRate))
	}

	data := make([]byte, 0, frames*4)
	for _, n := range notes {
		samples := int(n.Duration * float64(sampleRate))
		for i := 0; i < samples; i++ {
			var v float64
			if n.Freq > 0 {
				envelope := 1 - float64(i)/float64(samples)
				v = math.Sin(2*math.Pi*n.Freq*float64(i)/float64(sampleRate)) * envelope * Amplitude
			}
			sample := uint16(int16(v * math.MaxInt16))
			// left and right channels carry the same sample
			data = binary.LittleEndian.AppendUint16(data, sample)
			data = binary.LittleEndian.AppendUint16(data, sample)
		}
	}
	return &ToneStream{data: data, sampleRate: sampleRate}
}

// Read implements io.Reader.
func (s *ToneStream) Read(p []byte) (int, error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (s *ToneStream) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.offset + offset
	case io.SeekEnd:
		next = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("negative position: %d", next)
	}
	s.offset = next
	return next, nil
}

// Bytes returns the raw PCM.
func (s *ToneStream) Bytes() []byte {
	return s.data
}

// Length returns the PCM length in bytes.
func (s *ToneStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate in Hz.
func (s *ToneStream) SampleRate() int {
	return s.sampleRate
}

// TotalDuration returns the summed duration of notes in seconds.
func TotalDuration(notes []Note) float64 {
	var total float64
	for _, n := range notes {
		total += n.Duration
	}
	return total
}
