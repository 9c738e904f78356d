package audio

import (
	"errors"
	"testing"
)

func TestMix_StereoToMono(t *testing.T) {
	t.Parallel()

	b := &Buffer{Samples: []float32{0.2, 0.4, -1, 1, 0.5, 0.5}, SampleRate: 8000, Channels: 2, BitDepth: 16}

	got, err := Mix(b, 1)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	want := []float32{0.3, 0, 0.5}
	if got.Channels != 1 || len(got.Samples) != len(want) {
		t.Fatalf("Mix() = %v, want 3 mono frames", got)
	}
	for i := range want {
		if diff := got.Samples[i] - want[i]; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got.Samples[i], want[i])
		}
	}
}

func TestMix_QuadToMono(t *testing.T) {
	t.Parallel()

	b := &Buffer{Samples: []float32{0.1, 0.2, 0.3, 0.4}, SampleRate: 8000, Channels: 4}

	got, err := Mix(b, 1)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}
	if diff := got.Samples[0] - 0.25; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("sample = %v, want 0.25", got.Samples[0])
	}
}

func TestMix_MonoToStereo(t *testing.T) {
	t.Parallel()

	b := &Buffer{Samples: []float32{0.1, -0.2}, SampleRate: 8000, Channels: 1}

	got, err := Mix(b, 2)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	want := []float32{0.1, 0.1, -0.2, -0.2}
	for i := range want {
		if got.Samples[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got.Samples[i], want[i])
		}
	}
	if got.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", got.SampleRate)
	}
}

func TestMix_PreservesDuration(t *testing.T) {
	t.Parallel()

	b := sineBuffer(44100, 2, 4410, 440, 0.5)
	for _, ch := range []int{1, 2, 3, 6} {
		got, err := Mix(b, ch)
		if err != nil {
			t.Fatalf("Mix(%d) error = %v", ch, err)
		}
		if got.Frames() != b.Frames() || got.Channels != ch {
			t.Errorf("Mix(%d) = %v, want %d frames", ch, got, b.Frames())
		}
	}
}

func TestMix_InvalidChannels(t *testing.T) {
	t.Parallel()

	if _, err := Mix(rampBuffer(8000, 4), 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("error = %v, want ErrInvalidChannels", err)
	}
}
