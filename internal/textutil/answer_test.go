package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnswer_DiacriticInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"Šunį", "suni"},
		{"ąžuolas", "AZUOLAS"},
		{"Ėjau", "ejau"},
		{"Įvykis", "ivykis"},
		{"Ūsai", "usai"},
		{"Ųsai", "usai"},
		{"Čia", "cia"},
		{"Ęsti", "esti"},
		{"  namą ", "nama"},
	}
	for _, p := range pairs {
		assert.Equal(t, NormalizeAnswer(p[0]), NormalizeAnswer(p[1]), "%q vs %q", p[0], p[1])
	}
}

func TestNormalizeAnswer_DistinctWordsStayDistinct(t *testing.T) {
	assert.NotEqual(t, NormalizeAnswer("namas"), NormalizeAnswer("namą s"))
	assert.NotEqual(t, NormalizeAnswer("šuo"), NormalizeAnswer("šuns"))
}
