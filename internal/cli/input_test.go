package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  Carla Mansilla  \n"))

	got, err := GetSimpleText(r, "Nombre", &out)
	require.NoError(t, err)
	assert.Equal(t, "Carla Mansilla", got)
	assert.Contains(t, out.String(), "Nombre")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("sin salto"))

	got, err := GetSimpleText(r, "Nombre", &out)
	require.NoError(t, err)
	assert.Equal(t, "sin salto", got)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("F001\nCarla Mansilla\n12.345.678-9\n\n"))

	got, err := GetMultiline(r, "Escanee", &out)
	require.NoError(t, err)
	assert.Equal(t, "F001\nCarla Mansilla\n12.345.678-9", got)
}

func TestGetChoice(t *testing.T) {
	items := []string{"uno", "dos", "tres"}

	t.Run("valid selection", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader("2\n"))
		idx, err := GetChoice(r, items, &out)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Contains(t, out.String(), "1. uno")
	})

	t.Run("empty cancels", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader("\n"))
		idx, err := GetChoice(r, items, &out)
		require.NoError(t, err)
		assert.Equal(t, -1, idx)
	})

	t.Run("out of range", func(t *testing.T) {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader("9\n"))
		_, err := GetChoice(r, items, &out)
		assert.Error(t, err)
	})
}
