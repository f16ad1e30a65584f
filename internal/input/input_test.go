package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"
)

func TestKeyCommand(t *testing.T) {
	tests := map[keyboard.KeyEvent]Command{
		{Key: keyboard.KeyEsc}:   Quit,
		{Key: keyboard.KeyCtrlC}: Quit,
		{Rune: 'q'}:              Quit,
		{Key: keyboard.KeySpace}: TogglePause,
		{Rune: 'p'}:              TogglePause,
		{Rune: 'x'}:              None,
	}
	for ev, want := range tests {
		if got := KeyCommand(ev); got != want {
			t.Errorf("%+v: got %v, want %v", ev, got, want)
		}
	}
}

func TestScreenCommand(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Command
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Quit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Quit},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), TogglePause},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), None},
	}
	for _, test := range tests {
		if got := ScreenCommand(test.ev); got != test.want {
			t.Errorf("%v: got %v, want %v", test.ev.Name(), got, test.want)
		}
	}
}

func TestScreenPoll(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); nil != err {
		t.Fatal(err)
	}
	defer screen.Fini()
	s := OpenScreen(screen)
	defer s.Close()

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	var got []Command
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 2 && time.Now().Before(deadline) {
		got = append(got, s.Poll()...)
		time.Sleep(5 * time.Millisecond)
	}
	if len(got) != 2 || got[0] != TogglePause || got[1] != Quit {
		t.Errorf("commands = %v", got)
	}
}
