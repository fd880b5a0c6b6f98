// Package audio plays the short WAV samples the rain scene triggers.
// Samples are decoded once into memory; playback wraps each run in a
// volume effect so click volume can encode the data value.
package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/faiface/beep"
	beepfx "github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// System owns the speaker. The first loaded sample fixes the output rate;
// later samples are resampled to it.
type System struct {
	initialized bool
	sampleRate  beep.SampleRate
}

// Sample is one fully buffered sound, ready for overlapping playback.
type Sample struct {
	sys *System
	buf *beep.Buffer
}

// Load decodes a WAV file into memory. The speaker is initialized lazily
// from the first file's format.
func (s *System) Load(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", path, err)
	}
	defer streamer.Close()

	if !s.initialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			return nil, fmt.Errorf("init speaker: %w", err)
		}
		s.initialized = true
		s.sampleRate = format.SampleRate
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: s.sampleRate, NumChannels: 2, Precision: 2})
	if format.SampleRate != s.sampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, s.sampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return &Sample{sys: s, buf: buf}, nil
}

// Play starts the sample at the given linear volume in [0,1]. Zero volume
// (or a nil sample) is a no-op. Playback overlaps: each call streams an
// independent run of the buffer.
func (smp *Sample) Play(volume float64) {
	if smp == nil || !smp.sys.initialized {
		return
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	if volume == 0 {
		return
	}

	run := smp.buf.Streamer(0, smp.buf.Len())
	// beep's volume control is exponential; log2 converts the linear
	// 0..1 gain the mapping produces.
	speaker.Play(&beepfx.Volume{
		Streamer: run,
		Base:     2,
		Volume:   math.Log2(volume),
	})
}
