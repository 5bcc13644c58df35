package color_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	require.Equal(t, "Red", color.Red.Name())
	require.Equal(t, "Green", color.Green.Name())
	require.Equal(t, "Blue", color.Blue.Name())
	require.Equal(t, "Yellow", color.Yellow.Name())
	require.Equal(t, "None", color.None.Name())
	require.Equal(t, "None", color.Color(42).Name())
}

func TestAll(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Green, color.Blue, color.Yellow}, color.All())
}

func TestPaint(t *testing.T) {
	require.Contains(t, color.Red.Paint("U"), "U")
	require.Equal(t, "[x]", color.None.Paintf("[%s]", "x"))
}
