package input

import (
	"log"

	"github.com/eiannone/keyboard"
)

// Keyboard reads controls straight from the terminal, for sessions without
// a screen.
type Keyboard struct {
	keys <-chan keyboard.KeyEvent
}

func OpenKeyboard() (*Keyboard, error) {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return nil, err
	}
	return &Keyboard{keys: keys}, nil
}

func (k *Keyboard) Poll() []Command {
	return drain(len(k.keys), func() Command {
		ev := <-k.keys
		if nil != ev.Err {
			log.Println("unable to read key", ev.Err)
			return None
		}
		return KeyCommand(ev)
	})
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}
