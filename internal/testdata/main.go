package testdata

// Chart returns a short two handed chart at 120 BPM that doubles to 240 BPM
// from beat 8. It holds one bomb which parsers skip.
func Chart() []byte {
	return []byte(data)
}

const data = `{
  "_version": "2.0.0",
  "_difficulty": "Expert",
  "_beatsPerMinute": 120,
  "_songTimeOffset": 0.5,
  "_BPMChanges": [{"_time": 8, "_BPM": 240}],
  "_notes": [
    {"_time": 4,  "_lineIndex": 1, "_lineLayer": 0, "_type": 0, "_cutDirection": 1},
    {"_time": 4,  "_lineIndex": 2, "_lineLayer": 0, "_type": 1, "_cutDirection": 1},
    {"_time": 5,  "_lineIndex": 0, "_lineLayer": 1, "_type": 0, "_cutDirection": 2},
    {"_time": 6,  "_lineIndex": 3, "_lineLayer": 1, "_type": 1, "_cutDirection": 3},
    {"_time": 7,  "_lineIndex": 1, "_lineLayer": 2, "_type": 3, "_cutDirection": 8},
    {"_time": 8,  "_lineIndex": 1, "_lineLayer": 2, "_type": 0, "_cutDirection": 0},
    {"_time": 10, "_lineIndex": 2, "_lineLayer": 2, "_type": 1, "_cutDirection": 5},
    {"_time": 12, "_lineIndex": 1, "_lineLayer": 1, "_type": 0, "_cutDirection": 8}
  ]
}`
