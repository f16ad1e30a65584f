package parser

import "git.lost.host/meutraa/sabers/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
	Decode(data []byte) (*game.Chart, error)
}
