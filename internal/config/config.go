package config

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/sabers/internal/engine"
	"git.lost.host/meutraa/sabers/internal/score"
)

// Options are the host settings shared by every command.
type Options struct {
	Engine engine.Config

	Offset   time.Duration
	FPS      float64
	Database string
	Pending  string
	Seed     int64
}

func float(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Register adds the global flags to app. Every tuning constant of the engine
// can be overridden; the defaults are engine.DefaultConfig.
func Register(app *kingpin.Application) *Options {
	o := &Options{Engine: engine.DefaultConfig()}
	e := &o.Engine

	floats := []struct {
		name, help string
		v          *float64
	}{
		{"spawn-distance", "Depth offset from the player plane where notes spawn", &e.SpawnDistance},
		{"player-depth", "Depth of the player plane", &e.PlayerDepth},
		{"note-speed", "Note speed in units per second", &e.NoteSpeed},
		{"miss-depth", "Distance past the player plane at which notes are missed", &e.MissDepth},
		{"window-ahead", "Collision band in front of the player plane", &e.WindowAhead},
		{"window-behind", "Collision band behind the player plane", &e.WindowBehind},
		{"hit-radius", "Maximum hand to note distance for a hit", &e.HitRadius},
		{"min-swing-speed", "Minimum hand speed for a swing", &e.MinSwingSpeed},
		{"min-angle", "Minimum angle score for a swing", &e.MinAngleScore},
		{"perfect-timing", "Timing error below which a hit may be perfect", &e.PerfectTiming},
		{"perfect-angle", "Angle score above which a hit may be perfect", &e.PerfectAngle},
		{"good-timing", "Timing error below which a hit may be good", &e.GoodTiming},
		{"good-angle", "Angle score above which a hit may be good", &e.GoodAngle},
	}
	for _, f := range floats {
		app.Flag(f.name, f.help).Default(float(*f.v)).Float64Var(f.v)
	}
	app.Flag("visible-ahead", "How far ahead notes are drawn").Default(e.VisibleAhead.String()).DurationVar(&e.VisibleAhead)
	app.Flag("visible-behind", "How long past notes are drawn").Default(e.VisibleBehind.String()).DurationVar(&e.VisibleBehind)
	app.Flag("hit-fade", "How long hit notes stay drawn").Default(e.HitFade.String()).DurationVar(&e.HitFade)

	app.Flag("offset", "Global audio offset").Default("0ms").Short('o').DurationVar(&o.Offset)
	app.Flag("fps", "Frames per second").Default("120").Short('R').Float64Var(&o.FPS)
	app.Flag("db", "Chart and take database").Default("./sabers.db").StringVar(&o.Database)
	app.Flag("pending", "How notes left pending at song end are scored (ignore, miss)").Default("ignore").EnumVar(&o.Pending, "ignore", "miss")
	app.Flag("seed", "Seed for presentation effects").Default("1").Int64Var(&o.Seed)
	return o
}

// FramePeriod is the time between two update steps.
func (o *Options) FramePeriod() time.Duration {
	return time.Duration(float64(time.Second) / o.FPS)
}

// PendingPolicy is only meaningful after Validate, which rejects unknown
// names; the enum flag already limits them to the known set.
func (o *Options) PendingPolicy() score.PendingPolicy {
	p, _ := score.ParsePendingPolicy(o.Pending)
	return p
}

func (o *Options) Validate() error {
	if o.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %v", o.FPS)
	}
	if _, err := score.ParsePendingPolicy(o.Pending); nil != err {
		return err
	}
	return o.Engine.Validate()
}
