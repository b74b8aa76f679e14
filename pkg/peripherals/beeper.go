package peripherals

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// A Beeper receives the sound timer's on/off state once per host frame.
type Beeper interface {
	Frame(on bool)
}

// NullBeeper discards the beep state.
type NullBeeper struct{}

func (NullBeeper) Frame(bool) {}

const (
	beepFrequency = 440
	frameRate     = 60
	amplitude     = 8000
)

// WavRecorder captures the beep line as a mono 16-bit WAV file: a square
// wave while the sound timer runs, silence otherwise. It needs no audio
// device, which makes it suitable for headless runs.
type WavRecorder struct {
	f          *os.File
	enc        *wav.Encoder
	sampleRate int
	phase      int
}

// NewWavRecorder creates the output file and the WAV encoder.
func NewWavRecorder(path string, sampleRate int) (*WavRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &WavRecorder{
		f:          f,
		enc:        wav.NewEncoder(f, sampleRate, 16, 1, 1),
		sampleRate: sampleRate,
	}, nil
}

// Frame appends one frame (1/60 s) of audio: a square wave when on, silence
// when off. The wave phase carries across frames so consecutive beeping
// frames form a continuous tone.
func (r *WavRecorder) Frame(on bool) {
	samples := make([]int, r.sampleRate/frameRate)
	if on {
		halfPeriod := r.sampleRate / (2 * beepFrequency)
		for i := range samples {
			if (r.phase/halfPeriod)%2 == 0 {
				samples[i] = amplitude
			} else {
				samples[i] = -amplitude
			}
			r.phase++
		}
	} else {
		r.phase = 0
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: r.sampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	// Keep recording even if a single frame write fails; Close reports the
	// encoder state.
	_ = r.enc.Write(buf)
}

// Close finalizes the WAV header and closes the file.
func (r *WavRecorder) Close() error {
	if err := r.enc.Close(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
