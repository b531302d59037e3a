package tictactoe

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/muesli/termenv"
)

// ColorsSupported reports whether f is a terminal that renders ANSI colours.
func ColorsSupported(f *os.File) bool {
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

// Render draws the board as a 3x3 grid. Empty cells show their action index.
func Render(w io.Writer, state State, colors bool) error {
	au := aurora.NewAurora(colors)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			i := row*3 + col
			var cell aurora.Value
			switch state.Board[i] {
			case RedMark:
				cell = au.Bold(au.Red("X"))
			case BlueMark:
				cell = au.Bold(au.Blue("O"))
			default:
				cell = au.Faint(i)
			}

			sep := " |"
			if col == 2 {
				sep = "\n"
			}
			if _, err := fmt.Fprint(w, " ", cell, sep); err != nil {
				return err
			}
		}
		if row < 2 {
			if _, err := fmt.Fprintln(w, "---+---+---"); err != nil {
				return err
			}
		}
	}
	return nil
}
