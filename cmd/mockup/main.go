package main

import (
	"flag"
	"os"

	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/commands"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/config"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/debug"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/env"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/graphics"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/logger"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/panel"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/remote"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/scene"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/session"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/shape"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/terminal"
	"github.com/tonyleelyy/9Air-Mockup-Tool/internal/texture"
)

func main() {
	dir := flag.String("dir", "", "remote asset directory id to auto-load textures from")
	base := flag.String("base", "", "remote asset base URL (overrides config and MOCKUP_ASSET_BASE_URL)")
	out := flag.String("out", "", "screenshot output path (overrides config)")
	confPath := flag.String("config", config.DefaultPath, "preferences file")
	flag.Parse()

	_ = env.Load(".env")
	prefs, _ := config.Load(*confPath)
	if *out != "" {
		prefs.OutputPath = *out
	}
	if *base != "" {
		prefs.AssetBaseURL = *base
	} else if v := os.Getenv("MOCKUP_ASSET_BASE_URL"); v != "" && prefs.AssetBaseURL == "" {
		prefs.AssetBaseURL = v
	}

	log := logger.New()
	state := session.New()
	state.EnvironmentVisible = prefs.EnvironmentVisible

	def, err := shape.LoadDefinition(shape.Cube)
	if err != nil {
		log.Logf("shape defaults: %v", err)
	}
	comp := scene.New(state, parseHexColor(def.Color), prefs.EnvironmentPath)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS

	reg := commands.NewRegistry()
	registerIntents(reg, state, comp, dbg, log, &prefs, *confPath)
	term := terminal.New(log, reg)
	statusPanel := panel.New(state)

	// Remote auto-load: probes run concurrently off the main loop; the
	// finished batch is drained on the UI thread so the merge is atomic.
	var batches chan []remote.Result
	var epochs map[texture.FaceKey]uint64
	if *dir != "" {
		if prefs.AssetBaseURL == "" {
			log.Log("autoload: -dir given but no asset base URL configured")
		} else {
			batches = make(chan []remote.Result, 1)
			epochs = state.Epochs()
			remote.NewLoader(log).ProbeAsync(prefs.AssetBaseURL, *dir, batches)
		}
	}

	update := func() {
		if batches != nil {
			select {
			case batch := <-batches:
				state.ApplyRemoteBatch(batch, epochs)
				log.Logf("autoload: %d face(s) loaded", len(batch))
				batches = nil
			default:
			}
		}
		term.Update()
		if !term.IsOpen() {
			comp.Update()
		}
	}
	draw := func() {
		comp.Draw()
		statusPanel.Draw()
		term.Draw()
		dbg.Draw()
	}
	graphics.Run("9Air Mockup Tool", prefs.WindowWidth, prefs.WindowHeight, update, draw)
}
