// Package speech wraps a platform speech-synthesis capability behind the
// contract the board expects: speak supersedes any in-flight utterance,
// cancel stops it, and a single speaking flag tracks the current one.
package speech

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mneis/alternative-communicator/internal/locale"
)

// Voice describes one platform voice.
type Voice struct {
	Name string
	Lang string // language code as reported by the engine, e.g. "en-us"
}

// Utterance is one speech request handed to the engine.
type Utterance struct {
	Text  string
	Lang  string  // BCP-47 tag
	Voice string  // engine voice name; empty = engine default for Lang
	Rate  float64 // 1.0 = normal speed
	Pitch float64 // 1.0 = normal pitch
}

// Playback tracks one in-flight utterance.
type Playback interface {
	// Done yields exactly one result when the utterance finishes or fails.
	Done() <-chan error
	// Stop interrupts playback; Done still yields afterwards.
	Stop()
}

// Engine abstracts the platform speech capability.
type Engine interface {
	Voices() []Voice
	Start(u Utterance) (Playback, error)
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

func WithRate(rate float64) Option {
	return func(s *Synthesizer) { s.rate = rate }
}

func WithPitch(pitch float64) Option {
	return func(s *Synthesizer) { s.pitch = pitch }
}

func WithLocale(l locale.Locale) Option {
	return func(s *Synthesizer) { s.lang = l }
}

// Synthesizer is the capability-gated speech facade. Support is fixed at
// construction: a nil engine means the platform has no speech capability and
// every operation degrades to a no-op.
type Synthesizer struct {
	engine Engine

	mu       sync.Mutex
	current  Playback
	speaking bool
	rate     float64
	pitch    float64
	lang     locale.Locale
}

// New builds a synthesizer around engine. The default rate is slightly below
// normal for clarity.
func New(engine Engine, opts ...Option) *Synthesizer {
	s := &Synthesizer{engine: engine, rate: 0.9, pitch: 1.0, lang: locale.English}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Supported reports whether a platform speech capability was present at
// construction time.
func (s *Synthesizer) Supported() bool { return s.engine != nil }

// Speaking reports whether an utterance is currently in flight.
func (s *Synthesizer) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// SetLocale changes the language used for subsequent utterances.
func (s *Synthesizer) SetLocale(l locale.Locale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = l
}

// Speak pronounces text in the active locale. An in-flight utterance is
// canceled first — playback supersedes, it never queues. No-op when the
// platform has no speech capability.
func (s *Synthesizer) Speak(text string) error {
	if s.engine == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.Stop()
		s.current = nil
		s.speaking = false
	}

	p, err := s.engine.Start(Utterance{
		Text:  text,
		Lang:  s.lang.String(),
		Voice: s.pickVoice(),
		Rate:  s.rate,
		Pitch: s.pitch,
	})
	if err != nil {
		return fmt.Errorf("speech: start utterance: %w", err)
	}
	s.current = p
	s.speaking = true
	go s.watch(p)
	return nil
}

// Cancel stops any in-flight utterance. No-op when unsupported.
func (s *Synthesizer) Cancel() {
	if s.engine == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
	s.speaking = false
}

// watch clears the speaking flag when this playback — and only this one —
// reaches its terminal state. A superseded playback's termination must not
// clear the flag for its successor.
func (s *Synthesizer) watch(p Playback) {
	<-p.Done()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == p {
		s.current = nil
		s.speaking = false
	}
}

// pickVoice prefers a voice tagged "natural" whose language matches the
// active locale's prefix, mirroring how browsers pick their best voice.
// Empty means: let the engine pick its default for the locale.
// Caller holds s.mu.
func (s *Synthesizer) pickVoice() string {
	prefix := s.lang.Prefix()
	for _, v := range s.engine.Voices() {
		if strings.Contains(strings.ToLower(v.Name), "natural") && strings.HasPrefix(strings.ToLower(v.Lang), prefix) {
			return v.Name
		}
	}
	return ""
}
