package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color int

const (
	None Color = iota
	Red
	Green
	Blue
	Yellow
)

var names = map[Color]string{
	None:   "None",
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	Yellow: "Yellow",
}

var colorFunctions = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// Enable switches terminal colouring on or off for every Paint call.
func Enable(enabled bool) {
	color.NoColor = !enabled
}

// All returns the playable colors in deck building order.
func All() []Color {
	return []Color{Red, Green, Blue, Yellow}
}

func (c Color) Name() string {
	if name, ok := names[c]; ok {
		return name
	}
	return names[None]
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	colorFunction, ok := colorFunctions[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Name()
}
