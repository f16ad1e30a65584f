package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"git.lost.host/meutraa/sabers/internal/game"
)

var ErrNoNotes = errors.New("chart has no playable notes")

// _type values
const (
	typeLeft  = 0
	typeRight = 1
	typeBomb  = 3
)

type beatmap struct {
	Version    string  `json:"_version"`
	BPM        float64 `json:"_beatsPerMinute"`
	Offset     float64 `json:"_songTimeOffset"` // Seconds
	Difficulty string  `json:"_difficulty"`
	BPMChanges []struct {
		Time float64 `json:"_time"`
		BPM  float64 `json:"_BPM"`
	} `json:"_BPMChanges"`
	Notes []struct {
		Time         float64 `json:"_time"` // Beats
		LineIndex    int     `json:"_lineIndex"`
		LineLayer    int     `json:"_lineLayer"`
		Type         int     `json:"_type"`
		CutDirection int     `json:"_cutDirection"`
	} `json:"_notes"`
}

type DefaultParser struct{}

func (p *DefaultParser) rates(m *beatmap) ([]game.BPM, error) {
	if m.BPM <= 0 {
		return nil, fmt.Errorf("invalid tempo %v", m.BPM)
	}
	rates := []game.BPM{{StartingBeat: 0, Value: m.BPM}}
	for _, c := range m.BPMChanges {
		if c.BPM <= 0 || c.Time < 0 {
			return nil, fmt.Errorf("invalid tempo change %v at beat %v", c.BPM, c.Time)
		}
		if c.Time == 0 {
			rates[0].Value = c.BPM
			continue
		}
		rates = append(rates, game.BPM{StartingBeat: c.Time, Value: c.BPM})
	}
	sort.SliceStable(rates, func(i, j int) bool {
		return rates[i].StartingBeat < rates[j].StartingBeat
	})
	return rates, nil
}

// secondsAt integrates the tempo map up to beat.
func (p *DefaultParser) secondsAt(rates []game.BPM, beat float64) float64 {
	seconds := 0.0
	for i, bpm := range rates {
		end := beat
		if i+1 < len(rates) && rates[i+1].StartingBeat < beat {
			end = rates[i+1].StartingBeat
		}
		if end <= bpm.StartingBeat {
			break
		}
		seconds += (end - bpm.StartingBeat) * 60 / bpm.Value
	}
	return seconds
}

func (p *DefaultParser) Decode(data []byte) (*game.Chart, error) {
	var m beatmap
	if err := json.Unmarshal(data, &m); nil != err {
		return nil, fmt.Errorf("unable to decode chart: %w", err)
	}
	rates, err := p.rates(&m)
	if nil != err {
		return nil, err
	}

	specs := make([]game.Spec, 0, len(m.Notes))
	bombs := 0
	for i, n := range m.Notes {
		var saber game.Saber
		switch n.Type {
		case typeLeft:
			saber = game.Left
		case typeRight:
			saber = game.Right
		case typeBomb:
			bombs++
			continue
		default:
			return nil, fmt.Errorf("note %d: unknown type %d", i, n.Type)
		}
		if n.CutDirection < 0 || n.CutDirection > int(game.Any) {
			return nil, fmt.Errorf("note %d: unknown cut direction %d", i, n.CutDirection)
		}
		seconds := m.Offset + p.secondsAt(rates, n.Time)
		specs = append(specs, game.Spec{
			Time:         time.Duration(seconds * float64(time.Second)),
			LineIndex:    n.LineIndex,
			LineLayer:    n.LineLayer,
			Type:         saber,
			CutDirection: game.CutDirection(n.CutDirection),
		})
	}
	if bombs > 0 {
		log.Printf("skipping %v bombs\n", bombs)
	}
	if len(specs) == 0 {
		return nil, ErrNoNotes
	}

	return game.NewChart(specs, game.Difficulty{
		Name: m.Difficulty,
		Rank: game.RankMap[m.Difficulty],
	})
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	chart, err := p.Decode(data)
	if nil != err {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return chart, nil
}
