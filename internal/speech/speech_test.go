package speech

import (
	"sync"
	"testing"
	"time"

	"github.com/mneis/alternative-communicator/internal/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlayback finishes only when the test says so.
type fakePlayback struct {
	utterance Utterance
	done      chan error
	stopOnce  sync.Once
	stopped   bool
}

func (p *fakePlayback) Done() <-chan error { return p.done }

func (p *fakePlayback) Stop() {
	p.stopOnce.Do(func() {
		p.stopped = true
		p.done <- nil
	})
}

func (p *fakePlayback) finish() { p.done <- nil }

type fakeEngine struct {
	mu        sync.Mutex
	voices    []Voice
	playbacks []*fakePlayback
}

func (e *fakeEngine) Voices() []Voice { return e.voices }

func (e *fakeEngine) Start(u Utterance) (Playback, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := &fakePlayback{utterance: u, done: make(chan error, 1)}
	e.playbacks = append(e.playbacks, p)
	return p, nil
}

func (e *fakeEngine) last() *fakePlayback {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playbacks[len(e.playbacks)-1]
}

func waitNotSpeaking(t *testing.T, s *Synthesizer) {
	t.Helper()
	deadline := time.After(time.Second)
	for s.Speaking() {
		select {
		case <-deadline:
			t.Fatal("synthesizer still speaking")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestUnsupportedIsNoOp(t *testing.T) {
	s := New(nil)

	assert.False(t, s.Supported())
	require.NoError(t, s.Speak("Water"))
	assert.False(t, s.Speaking())
	s.Cancel() // must not panic
}

func TestSpeakTracksUtterance(t *testing.T) {
	engine := &fakeEngine{}
	s := New(engine, WithLocale(locale.Portuguese), WithRate(0.9), WithPitch(1.0))

	require.NoError(t, s.Speak("Eu quero Água"))
	assert.True(t, s.Speaking())

	u := engine.last().utterance
	assert.Equal(t, "Eu quero Água", u.Text)
	assert.Equal(t, "pt-BR", u.Lang)
	assert.InDelta(t, 0.9, u.Rate, 1e-9)
	assert.InDelta(t, 1.0, u.Pitch, 1e-9)

	engine.last().finish()
	waitNotSpeaking(t, s)
}

func TestSpeakSupersedes(t *testing.T) {
	engine := &fakeEngine{}
	s := New(engine)

	require.NoError(t, s.Speak("first"))
	first := engine.last()

	require.NoError(t, s.Speak("second"))
	second := engine.last()

	// The first utterance was stopped, and its termination must not clear
	// the speaking flag for its successor.
	assert.True(t, first.stopped)
	time.Sleep(10 * time.Millisecond)
	assert.True(t, s.Speaking())

	second.finish()
	waitNotSpeaking(t, s)
	assert.False(t, second.stopped)
}

func TestCancel(t *testing.T) {
	engine := &fakeEngine{}
	s := New(engine)

	require.NoError(t, s.Speak("Water"))
	s.Cancel()

	assert.True(t, engine.last().stopped)
	assert.False(t, s.Speaking())

	// Cancel with nothing in flight is fine.
	s.Cancel()
}

func TestSetLocaleAffectsNextUtterance(t *testing.T) {
	engine := &fakeEngine{}
	s := New(engine)

	require.NoError(t, s.Speak("Water"))
	assert.Equal(t, "en-US", engine.last().utterance.Lang)

	s.SetLocale(locale.Portuguese)
	require.NoError(t, s.Speak("Água"))
	assert.Equal(t, "pt-BR", engine.last().utterance.Lang)
}

func TestPickVoicePrefersNatural(t *testing.T) {
	engine := &fakeEngine{voices: []Voice{
		{Name: "Standard English", Lang: "en-us"},
		{Name: "English Natural", Lang: "en-us"},
		{Name: "Português Natural", Lang: "pt-br"},
	}}

	s := New(engine)
	require.NoError(t, s.Speak("Water"))
	assert.Equal(t, "English Natural", engine.last().utterance.Voice)

	s.SetLocale(locale.Portuguese)
	require.NoError(t, s.Speak("Água"))
	assert.Equal(t, "Português Natural", engine.last().utterance.Voice)
}

func TestPickVoiceDefaultsWhenNoMatch(t *testing.T) {
	engine := &fakeEngine{voices: []Voice{
		{Name: "Standard English", Lang: "en-us"},
	}}

	s := New(engine)
	require.NoError(t, s.Speak("Water"))
	// No "natural" voice for the locale: let the engine pick by language.
	assert.Equal(t, "", engine.last().utterance.Voice)
}
