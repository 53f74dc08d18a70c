package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beatline/audio"
	"github.com/lixenwraith/beatline/chart"
	"github.com/lixenwraith/beatline/config"
	"github.com/lixenwraith/beatline/core"
	"github.com/lixenwraith/beatline/engine"
	"github.com/lixenwraith/beatline/event"
	"github.com/lixenwraith/beatline/logging"
	"github.com/lixenwraith/beatline/parameter"
	"github.com/lixenwraith/beatline/render"
	"github.com/lixenwraith/beatline/render/renderer"
	"github.com/lixenwraith/beatline/scroll"
	"github.com/lixenwraith/beatline/skin"
	"github.com/lixenwraith/beatline/status"
)

var (
	configDirFlag = flag.String("config", ".", "Directory containing beatline.toml")
	chartFlag     = flag.String("chart", "", "Chart file path (overrides config)")
	skinFlag      = flag.String("skin", "", "Skin file path (overrides config)")
)

func main() {
	// Panic recovery: restore the terminal before crash output
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := config.Load(*configDirFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := logging.Setup(config.GetString("logLevel"), config.GetString("logFile"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	chartPath := *chartFlag
	if chartPath == "" {
		chartPath = config.GetString("chart.path")
	}
	crt := chart.Demo()
	if chartPath != "" {
		crt, err = chart.Load(chartPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load chart: %v\n", err)
			os.Exit(1)
		}
	}

	skinPath := *skinFlag
	if skinPath == "" {
		skinPath = config.GetString("skin.path")
	}
	sk := skin.Default()
	if skinPath != "" {
		sk, err = skin.Load(skinPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load skin: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup; crash paths go through HandleCrash
	defer screen.Fini()
	core.SetRestore(func() { screen.Fini() })

	width, height := screen.Size()

	// Scroll mapping: velocity points modulate the base rate when the chart
	// carries any
	speed := config.GetFloat("scroll.speed")
	var mapper scroll.Mapper
	if len(crt.Velocities) > 0 {
		mapper = scroll.NewVelocityMapper(speed, crt.Velocities)
	} else {
		mapper = scroll.NewConstantMapper(speed)
	}

	dir := scroll.ParseDirection(config.GetString("scroll.direction"))
	view := render.NewFieldView(sk, dir, config.GetFloat("scroll.unitsPerRow"), width, height)

	board := status.NewBoard()
	queue := event.NewQueue()

	// Audio: the metronome track is the playback clock when the speaker is
	// live; otherwise the wall clock carries the session
	audioEng := audio.NewEngine(config.GetInt("audio.sampleRate"), config.GetFloat("audio.volume"), log)
	var hudAudio *audio.Engine
	var track *audio.ChartTrack
	var wall *audio.WallClock
	var source engine.TimeSource

	if config.GetBool("audio.enabled") {
		if err := audioEng.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start audio: %v\n", err)
			os.Exit(1)
		}
		defer audioEng.Close()
		hudAudio = audioEng
	}
	if hudAudio != nil && !audioEng.Silent() && config.GetBool("audio.metronome") {
		voice := audio.ClickVoice{
			BeatFreq: config.GetFloat("audio.clickBeatFreq"),
			BarFreq:  config.GetFloat("audio.clickBarFreq"),
		}
		track = audio.NewChartTrack(crt, audioEng.Rate(), voice)
		audioEng.PlayTrack(track)
		source = track
	} else {
		wall = audio.NewWallClock()
		source = wall
	}

	fixedThreshold := config.GetFloat("field.renderThreshold") > 0
	threshold := config.GetFloat("field.renderThreshold")
	if !fixedThreshold {
		threshold = view.WindowReach()
	}

	field := engine.NewLineField(engine.FieldConfig{
		Chart:           crt,
		Mapper:          mapper,
		RenderThreshold: threshold,
		Sprites:         view,
		Prewarm:         config.GetInt("field.prewarm"),
		Events:          queue,
		Board:           board,
		Logger:          log,
	})

	session := engine.NewSession(engine.SessionConfig{
		Field:  field,
		Source: source,
		Mapper: mapper,
		Length: crt.Length,
		Events: queue,
		Board:  board,
		Logger: log,
	})

	orchestrator := render.NewOrchestrator(screen, width, height)
	hud := renderer.NewHudRenderer(crt, hudAudio, board, sk)
	orchestrator.Register(renderer.NewBackdropRenderer(view, sk), render.PriorityBackdrop)
	orchestrator.Register(renderer.NewFieldRenderer(view, sk), render.PriorityField)
	orchestrator.Register(renderer.NewReceptorRenderer(view, sk), render.PriorityReceptor)
	orchestrator.Register(hud, render.PriorityHud)

	// Input polling posts into the frame loop's channel
	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	})

	interval := time.Duration(config.GetInt("frame.intervalMs")) * time.Millisecond
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	paused := false
	setPaused := func(p bool) {
		paused = p
		audioEng.SetPaused(p)
		if wall != nil {
			wall.SetPaused(p)
		}
	}
	restart := func() {
		if track != nil {
			audioEng.Replay(track)
		} else {
			wall.Seek(0)
		}
		session.Restart()
		setPaused(false)
	}

	log.Info().
		Str("chart", crt.Title).
		Int64("length", crt.Length).
		Str("direction", dir.String()).
		Float64("threshold", threshold).
		Msg("session started")

	for {
		select {
		case ev := <-eventChan:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC || tev.Rune() == 'q':
					return
				case tev.Rune() == ' ' || tev.Rune() == 'p':
					setPaused(!paused)
				case tev.Rune() == 'r':
					restart()
				case tev.Rune() == 'h':
					hud.Toggle()
				case tev.Rune() == 'm':
					audioEng.ToggleMute()
				case tev.Rune() == '+' || tev.Rune() == '=':
					audioEng.VolumeUp()
				case tev.Rune() == '-':
					audioEng.VolumeDown()
				}

			case *tcell.EventResize:
				w, h := tev.Size()
				view.SetSize(w, h)
				orchestrator.Resize(w, h)
				if !fixedThreshold {
					field.SetThreshold(view.WindowReach())
				}
			}

		case <-ticker.C:
			frame := session.Step()

			for _, te := range queue.Consume() {
				switch te.Type {
				case event.LinesShown, event.LinesHidden:
					if p, ok := te.Payload.(*event.LineBatchPayload); ok {
						event.ReleaseLineBatch(p)
					}
				case event.TrackEnded:
					audioEng.Play(audio.Chime(audioEng.Rate()))
					log.Info().Int64("frame", te.Frame).Msg("track complete")
				}
			}

			orchestrator.Frame(render.Context{
				Time:       frame.Time,
				FrameIndex: frame.Index,
				Paused:     paused,
			})
		}
	}
}
