package audio

import (
	"math"
	"snake-game/game"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// Effects must be safe before Initialize, which is how headless hosts run.
func TestSoundManagerWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound call panicked without initialization: %v", r)
		}
	}()

	sm := NewSoundManager()
	sm.PlayEat()
	sm.PlayLoss()
	sm.Play(game.Outcome{Ticked: true, Ate: true})
	sm.Play(game.Outcome{Ticked: true, Lost: true})
	sm.Cleanup()
}

func TestChirpFadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	chirp := beep.Take(rate.N(eatDuration), NewChirpGenerator(rate, 600, 1200, eatDuration))

	samples := make([][2]float64, rate.N(eatDuration)+10)
	n, ok := chirp.Stream(samples)
	if !ok || n != rate.N(eatDuration) {
		t.Fatalf("streamed %d samples, ok=%v", n, ok)
	}

	var peakStart, peakEnd float64
	quarter := n / 4
	for i := 0; i < n; i++ {
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d is not mono", i)
		}
		v := math.Abs(samples[i][0])
		if v > 0.3 {
			t.Fatalf("sample %d too loud: %v", i, v)
		}
		if i < quarter {
			peakStart = math.Max(peakStart, v)
		} else if i >= n-quarter {
			peakEnd = math.Max(peakEnd, v)
		}
	}
	if peakEnd >= peakStart {
		t.Errorf("chirp should fade: start peak %v, end peak %v", peakStart, peakEnd)
	}
}

func TestBuzzIsSquare(t *testing.T) {
	buzz := NewBuzzGenerator(beep.SampleRate(8000), 100)
	samples := make([][2]float64, 200)
	n, ok := buzz.Stream(samples)
	if !ok || n != 200 {
		t.Fatalf("streamed %d samples, ok=%v", n, ok)
	}
	var high, low int
	for _, s := range samples {
		switch s[0] {
		case 0.2:
			high++
		case -0.2:
			low++
		default:
			t.Fatalf("unexpected level %v", s[0])
		}
	}
	// 200 samples at 8kHz is 2.5 periods of 100Hz.
	if high == 0 || low == 0 {
		t.Errorf("high=%d low=%d", high, low)
	}
	if buzz.Err() != nil {
		t.Error(buzz.Err())
	}
}

func TestEffectLengths(t *testing.T) {
	if sampleRate.N(lossDuration) <= sampleRate.N(eatDuration) {
		t.Error("loss buzz should outlast the eat chirp")
	}
	if lossDuration > time.Second {
		t.Error("effects should stay short")
	}
}
