package game

// BPM is a tempo change taking effect at StartingBeat.
type BPM struct {
	StartingBeat float64
	Value        float64
}
