package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoices(t *testing.T) {
	out := `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af
 5  en-us           --/M      English_(America)  gmw/en-US            (en 15)
 5  pt-br           --/M      Portuguese_(Brazil) roa/pt-BR           (pt 15)
`

	voices := parseVoices(out)
	require.Len(t, voices, 3)
	assert.Equal(t, Voice{Name: "Afrikaans", Lang: "af"}, voices[0])
	assert.Equal(t, Voice{Name: "English_(America)", Lang: "en-us"}, voices[1])
	assert.Equal(t, Voice{Name: "Portuguese_(Brazil)", Lang: "pt-br"}, voices[2])
}

func TestParseVoicesSkipsShortLines(t *testing.T) {
	out := "Pty Language\n\n 5  en\n"
	assert.Empty(t, parseVoices(out))
}
