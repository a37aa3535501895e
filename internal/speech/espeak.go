package speech

import (
	"os/exec"
	"strconv"
	"strings"
)

// espeak-ng defaults: 175 words per minute, pitch midpoint 50 (range 0-99).
const (
	baseWPM   = 175
	basePitch = 50
)

// DefaultEngine returns the platform speech engine, or nil (untyped) when
// the platform has none. Callers should pass the result straight to New.
func DefaultEngine() Engine {
	if e := NewESpeakEngine(); e != nil {
		return e
	}
	return nil
}

// ESpeakEngine drives the espeak-ng command-line synthesizer, the common
// speech capability on Linux. It satisfies Engine.
type ESpeakEngine struct {
	binary string
}

// NewESpeakEngine looks for espeak-ng (or the older espeak) on PATH and
// returns nil when neither is installed — the platform then has no speech
// capability and the synthesizer degrades to no-ops.
func NewESpeakEngine() *ESpeakEngine {
	for _, name := range []string{"espeak-ng", "espeak"} {
		if path, err := exec.LookPath(name); err == nil {
			return &ESpeakEngine{binary: path}
		}
	}
	return nil
}

func (e *ESpeakEngine) Voices() []Voice {
	out, err := exec.Command(e.binary, "--voices").Output()
	if err != nil {
		return nil
	}
	return parseVoices(string(out))
}

// parseVoices reads the tabular `espeak-ng --voices` output:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  af              --/M      Afrikaans          gmw/af
func parseVoices(out string) []Voice {
	var voices []Voice
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 {
			continue // header row
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{Name: fields[3], Lang: fields[1]})
	}
	return voices
}

func (e *ESpeakEngine) Start(u Utterance) (Playback, error) {
	args := []string{
		"-s", strconv.Itoa(int(baseWPM * u.Rate)),
		"-p", strconv.Itoa(int(basePitch * u.Pitch)),
	}
	switch {
	case u.Voice != "":
		args = append(args, "-v", u.Voice)
	case u.Lang != "":
		// espeak voice ids are lowercase language tags ("en-us", "pt-br")
		args = append(args, "-v", strings.ToLower(u.Lang))
	}
	args = append(args, u.Text)

	cmd := exec.Command(e.binary, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &processPlayback{cmd: cmd, done: make(chan error, 1)}
	go func() { p.done <- cmd.Wait() }()
	return p, nil
}

// processPlayback tracks one running espeak process.
type processPlayback struct {
	cmd  *exec.Cmd
	done chan error
}

func (p *processPlayback) Done() <-chan error { return p.done }

func (p *processPlayback) Stop() {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
}
