package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/sabers/internal/clock"
	"git.lost.host/meutraa/sabers/internal/config"
	"git.lost.host/meutraa/sabers/internal/game"
	"git.lost.host/meutraa/sabers/internal/input"
	"git.lost.host/meutraa/sabers/internal/parser"
	"git.lost.host/meutraa/sabers/internal/render"
	"git.lost.host/meutraa/sabers/internal/score"
	"git.lost.host/meutraa/sabers/internal/store"
	"git.lost.host/meutraa/sabers/internal/theme"
	"git.lost.host/meutraa/sabers/internal/tracking"
)

var (
	app     = kingpin.New("sabers", "Saber rhythm game engine host").Version("0.3.0")
	options = config.Register(app)

	chartParser parser.Parser = &parser.DefaultParser{}

	play        = app.Command("play", "Play a chart against a live hand tracker")
	playChart   = play.Arg("chart", "Chart file").Required().ExistingFile()
	playAudio   = play.Flag("audio", "Music track (.mp3, .ogg, .wav)").Short('a').ExistingFile()
	playTracker = play.Flag("tracker", "Address the tracker websocket listens on").Default("127.0.0.1:8765").String()
	playRecord  = play.Flag("record", "Store the hand track for replays").Bool()
	playNoHUD   = play.Flag("no-hud", "Do not draw the terminal display").Bool()
	playLog     = play.Flag("log", "Log file while the display is active").String()

	replay     = app.Command("replay", "Score a stored take without playing it")
	replayTake = replay.Arg("take", "Take id").Required().Int64()

	importCmd   = app.Command("import", "Add a chart to the library")
	importChart = importCmd.Arg("chart", "Chart file").Required().ExistingFile()
	importName  = importCmd.Flag("name", "Chart name, defaults to the file name").String()

	charts = app.Command("charts", "List the chart library")

	takes      = app.Command("takes", "List the takes recorded for a chart")
	takesChart = takes.Arg("sum", "Chart hash").Required().String()

	feed     = app.Command("feed", "Stream a stored take to a tracker endpoint in real time")
	feedTake = feed.Arg("take", "Take id").Required().Int64()
	feedURL  = feed.Flag("url", "Tracker endpoint").Default("ws://127.0.0.1:8765/track").String()
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cmd, err := app.Parse(args)
	if nil != err {
		return err
	}
	if err := options.Validate(); nil != err {
		return err
	}

	switch cmd {
	case play.FullCommand():
		return runPlay()
	case replay.FullCommand():
		return runReplay()
	case importCmd.FullCommand():
		return runImport()
	case charts.FullCommand():
		return runCharts()
	case takes.FullCommand():
		return runTakes()
	case feed.FullCommand():
		return runFeed()
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func openStore() (*store.Store, error) {
	s, err := store.Open(options.Database)
	if nil != err {
		return nil, fmt.Errorf("unable to open %s: %w", options.Database, err)
	}
	return s, nil
}

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

type speakerPauser struct {
	ctrl *beep.Ctrl
}

func (p speakerPauser) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

func (p speakerPauser) Resume() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

func decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, beep.Format{}, err
	}
	switch strings.ToLower(path.Ext(file)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg", ".egg":
		return vorbis.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}
	f.Close()
	return nil, beep.Format{}, fmt.Errorf("unsupported audio file %s", file)
}

func runPlay() error {
	data, err := os.ReadFile(*playChart)
	if nil != err {
		return err
	}
	chart, err := chartParser.Decode(data)
	if nil != err {
		return fmt.Errorf("%s: %w", *playChart, err)
	}

	// Tracker ingest
	latest := &tracking.Latest{}
	mux := http.NewServeMux()
	mux.Handle("/track", tracking.NewHandler(latest))
	server := &http.Server{Addr: *playTracker, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); nil != err && !errors.Is(err, http.ErrServerClosed) {
			log.Println("tracker endpoint stopped", err)
		}
	}()
	defer server.Close()

	p := &Program{Options: options}
	var recorder *tracking.Recorder
	if *playRecord {
		recorder = &tracking.Recorder{Source: latest}
		p.Hands = recorder
	} else {
		p.Hands = latest
	}

	if *playAudio != "" {
		streamer, format, err := decode(*playAudio)
		if nil != err {
			return err
		}
		defer streamer.Close()
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
			return fmt.Errorf("unable to open audio device: %w", err)
		}
		ctrl := &beep.Ctrl{Streamer: streamer}
		p.Clock = clock.NewStream(streamer, format, options.Offset, speakerLock{})
		p.Pauser = speakerPauser{ctrl: ctrl}
		defer speaker.Clear()
		speaker.Play(ctrl)
	} else {
		wall := clock.NewWall(chart.Duration() + songTail)
		wall.Start()
		p.Clock = wall
		p.Pauser = wall
	}

	if !*playNoHUD {
		screen, err := tcell.NewScreen()
		if nil != err {
			return err
		}
		r := render.New(screen, &theme.DefaultTheme{})
		if err := r.Init(); nil != err {
			return err
		}
		defer r.Deinit()
		p.Renderer = r
		p.Controls = input.OpenScreen(screen)

		var out io.Writer = io.Discard
		if *playLog != "" {
			f, err := os.Create(*playLog)
			if nil != err {
				return err
			}
			defer f.Close()
			out = f
		}
		log.SetOutput(out)
		defer log.SetOutput(os.Stderr)
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		k, err := input.OpenKeyboard()
		if nil != err {
			return fmt.Errorf("unable to open keyboard: %w", err)
		}
		p.Controls = k
	}
	if nil != p.Controls {
		defer func() {
			if err := p.Controls.Close(); nil != err {
				log.Println("unable to close controls", err)
			}
		}()
	}

	if err := p.Init(chart); nil != err {
		return err
	}
	log.Printf("Playing %v (%v notes), tracker on ws://%v/track\n", *playChart, chart.NoteCount, *playTracker)
	p.RenderLoop()

	defer printSummary(chart, p.Summary())
	if nil == recorder {
		return nil
	}

	s, err := openStore()
	if nil != err {
		return err
	}
	defer s.Close()
	sum, err := s.SaveChart(filepath.Base(*playChart), data)
	if nil != err {
		return err
	}
	id, err := s.SaveTake(sum, recorder.Take())
	if nil != err {
		return err
	}
	log.Printf("Saved take %v for %v\n", id, sum)
	return nil
}

func loadTake(id int64) (*game.Chart, *tracking.Take, error) {
	s, err := openStore()
	if nil != err {
		return nil, nil, err
	}
	defer s.Close()
	sum, take, err := s.Take(id)
	if nil != err {
		return nil, nil, err
	}
	data, err := s.Chart(sum)
	if nil != err {
		return nil, nil, err
	}
	chart, err := chartParser.Decode(data)
	if nil != err {
		return nil, nil, err
	}
	return chart, take, nil
}

func runReplay() error {
	chart, take, err := loadTake(*replayTake)
	if nil != err {
		return err
	}
	p := &Program{Options: options, Hands: take}
	if err := p.Init(chart); nil != err {
		return err
	}
	p.Replay(clock.NewManual(chart.Duration() + songTail))
	printSummary(chart, p.Summary())
	return nil
}

func runImport() error {
	data, err := os.ReadFile(*importChart)
	if nil != err {
		return err
	}
	if _, err := chartParser.Decode(data); nil != err {
		return fmt.Errorf("%s: %w", *importChart, err)
	}
	name := *importName
	if name == "" {
		name = filepath.Base(*importChart)
	}
	s, err := openStore()
	if nil != err {
		return err
	}
	defer s.Close()
	sum, err := s.SaveChart(name, data)
	if nil != err {
		return err
	}
	fmt.Println(sum)
	return nil
}

func runCharts() error {
	s, err := openStore()
	if nil != err {
		return err
	}
	defer s.Close()
	entries, err := s.Charts()
	if nil != err {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%v  %v  %v\n", e.Sum, e.Added.Format(time.RFC3339), e.Name)
	}
	return nil
}

func runTakes() error {
	s, err := openStore()
	if nil != err {
		return err
	}
	defer s.Close()
	entries, err := s.Takes(*takesChart)
	if nil != err {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%5v  %v  %8.2fs\n", e.ID, e.Created.Format(time.RFC3339), e.Duration.Seconds())
	}
	return nil
}

func runFeed() error {
	_, take, err := loadTake(*feedTake)
	if nil != err {
		return err
	}
	client, err := tracking.Dial(*feedURL)
	if nil != err {
		return err
	}
	defer client.Close()

	start := time.Now()
	for _, f := range take.Frames {
		time.Sleep(time.Until(start.Add(f.Time)))
		if err := client.Send(f); nil != err {
			return err
		}
	}
	return nil
}

func printSummary(chart *game.Chart, sc score.Score) {
	fmt.Printf("      Notes:  %6v\n", chart.NoteCount)
	for i := len(game.Accuracies) - 1; i >= 0; i-- {
		a := game.Accuracies[i]
		fmt.Printf("%11s:  %6v\n", a, sc.Counts[a])
	}
	fmt.Printf("       Miss:  %6v\n", sc.MissCount)
	if sc.Pending > 0 {
		fmt.Printf("    Pending:  %6v\n", sc.Pending)
	}
	fmt.Printf("      Score:  %6v\n", sc.Points)
	fmt.Printf("  Max Combo:  %6v\n", sc.MaxCombo)
	fmt.Printf("   Error dt:  %6.0f ms\n", float64(sc.TotalError)/float64(time.Millisecond))
	fmt.Printf("       Mean:  %6.2f ms\n", float64(sc.Mean)/float64(time.Millisecond))
	fmt.Printf("      Stdev:  %6.2f ms\n", float64(sc.Stdev)/float64(time.Millisecond))
}
