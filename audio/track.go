package audio

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/beatline/chart"
	"github.com/lixenwraith/beatline/parameter"
)

// click is one scheduled metronome hit
type click struct {
	start int64 // sample index
	freq  float64
}

// ClickVoice sets the metronome synthesis parameters. Zero fields select
// the defaults.
type ClickVoice struct {
	BeatFreq float64 // ordinary beat pitch
	BarFreq  float64 // accented pitch on bar starts
	Gain     float64 // click level before the master volume stage
}

func DefaultClickVoice() ClickVoice {
	return ClickVoice{
		BeatFreq: parameter.ClickBeatFreq,
		BarFreq:  parameter.ClickBarFreq,
		Gain:     parameter.ClickVolume,
	}
}

// ChartTrack synthesizes the chart's metronome and doubles as the playback
// clock: the streamed sample count is the authoritative track time, so audio
// and bar lines can never drift apart. One click per beat, accented on bar
// starts; hidden sections keep their tempo authority and keep clicking.
//
// Stream runs on the speaker goroutine; Position may be read from any
// goroutine. Seek requires the speaker lock while the track is queued;
// Engine.Replay wraps that.
type ChartTrack struct {
	rate       beep.SampleRate
	length     int64 // total samples
	clicks     []click
	clickLen   int64
	attackLen  int64
	releaseLen int64
	gain       float64

	streamed atomic.Int64

	// speaker-goroutine state
	next   int
	active int64 // start sample of the sounding click, -1 when quiet
	freq   float64
}

func NewChartTrack(c *chart.Chart, rate beep.SampleRate, voice ClickVoice) *ChartTrack {
	if voice.BeatFreq <= 0 {
		voice.BeatFreq = parameter.ClickBeatFreq
	}
	if voice.BarFreq <= 0 {
		voice.BarFreq = parameter.ClickBarFreq
	}
	if voice.Gain <= 0 {
		voice.Gain = parameter.ClickVolume
	} else if voice.Gain > 1 {
		voice.Gain = 1
	}

	return &ChartTrack{
		rate:       rate,
		length:     msToSamples(c.Length, rate),
		clicks:     buildClicks(c, rate, voice),
		clickLen:   int64(rate.N(parameter.ClickDuration)),
		attackLen:  int64(rate.N(parameter.ClickAttack)),
		releaseLen: int64(rate.N(parameter.ClickRelease)),
		gain:       voice.Gain,
		active:     -1,
	}
}

// buildClicks expands the section timeline into the click schedule: one per
// beat from each section's start while strictly below its end boundary, the
// same boundary rule bar line generation uses. Degenerate sections are
// silently skipped.
func buildClicks(c *chart.Chart, rate beep.SampleRate, voice ClickVoice) []click {
	var clicks []click
	for i := range c.Sections {
		sec := &c.Sections[i]

		end := c.Length
		if i+1 < len(c.Sections) {
			end = c.Sections[i+1].Start - parameter.SectionGapMs
		}

		bpm := sec.BPM
		if bpm > parameter.MaxBPM {
			bpm = parameter.MaxBPM
		}
		if bpm <= 0 || sec.Signature <= 0 {
			continue
		}
		msPerBeat := parameter.MsPerMinute / bpm
		if msPerBeat <= 0 || math.IsNaN(msPerBeat) || math.IsInf(msPerBeat, 0) {
			continue
		}

		beat := 0
		for t := float64(sec.Start); t < float64(end); t += msPerBeat {
			freq := voice.BeatFreq
			if beat%sec.Signature == 0 {
				freq = voice.BarFreq
			}
			clicks = append(clicks, click{start: msToSamples(int64(t), rate), freq: freq})
			beat++
		}
	}
	return clicks
}

func (t *ChartTrack) Stream(samples [][2]float64) (n int, ok bool) {
	pos := t.streamed.Load()
	for i := range samples {
		if pos >= t.length {
			t.streamed.Store(pos)
			return i, i > 0
		}

		// A click starting before the previous one fades out replaces it;
		// the metronome is monophonic
		for t.next < len(t.clicks) && t.clicks[t.next].start <= pos {
			t.active = t.clicks[t.next].start
			t.freq = t.clicks[t.next].freq
			t.next++
		}

		var v float64
		if t.active >= 0 {
			if k := pos - t.active; k < t.clickLen {
				v = t.clickSample(k)
			} else {
				t.active = -1
			}
		}

		samples[i][0] = v
		samples[i][1] = v
		pos++
	}
	t.streamed.Store(pos)
	return len(samples), true
}

func (t *ChartTrack) Err() error { return nil }

// clickSample shapes sample k of the sounding click: sine at the click's
// pitch under an attack/release envelope
func (t *ChartTrack) clickSample(k int64) float64 {
	gain := 1.0
	if k < t.attackLen && t.attackLen > 0 {
		gain = float64(k) / float64(t.attackLen)
	}
	if releaseStart := t.clickLen - t.releaseLen; k >= releaseStart && t.releaseLen > 0 {
		gain = float64(t.clickLen-k) / float64(t.releaseLen)
	}
	phase := t.freq * float64(k) / float64(t.rate)
	return t.gain * gain * math.Sin(2*math.Pi*phase)
}

// Position returns the streamed playback time in milliseconds
func (t *ChartTrack) Position() int64 {
	return t.streamed.Load() * 1000 / int64(t.rate)
}

// Duration returns the track length in milliseconds
func (t *ChartTrack) Duration() int64 {
	return t.length * 1000 / int64(t.rate)
}

// Seek moves playback to the given millisecond position. Hold the speaker
// lock while the track is queued; a click already sounding at the target is
// skipped rather than resumed mid-envelope.
func (t *ChartTrack) Seek(ms int64) {
	pos := msToSamples(ms, t.rate)
	if pos < 0 {
		pos = 0
	}
	if pos > t.length {
		pos = t.length
	}
	t.streamed.Store(pos)
	t.next = sort.Search(len(t.clicks), func(i int) bool { return t.clicks[i].start >= pos })
	t.active = -1
}

func msToSamples(ms int64, rate beep.SampleRate) int64 {
	return ms * int64(rate) / 1000
}
