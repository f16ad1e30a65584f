package input

import (
	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"
)

// Command is a host control issued from the keyboard.
type Command uint8

const (
	None Command = iota
	TogglePause
	Quit
)

// Source yields the commands issued since the last poll without blocking.
type Source interface {
	Poll() []Command
	Close() error
}

func commandFor(r rune, escape, space bool) Command {
	switch {
	case escape || r == 'q':
		return Quit
	case space || r == 'p':
		return TogglePause
	}
	return None
}

// KeyCommand maps a raw terminal key event to a command.
func KeyCommand(ev keyboard.KeyEvent) Command {
	return commandFor(ev.Rune, ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC, ev.Key == keyboard.KeySpace)
}

// ScreenCommand maps a tcell key event to a command.
func ScreenCommand(ev *tcell.EventKey) Command {
	var r rune
	if ev.Key() == tcell.KeyRune {
		r = ev.Rune()
	}
	return commandFor(r, ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC, r == ' ')
}

func drain(n int, next func() Command) []Command {
	var cmds []Command
	for i := 0; i < n; i++ {
		if c := next(); c != None {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
