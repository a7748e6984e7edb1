// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command spheretext renders text as a cloud of spheres.
//
// By default it writes -frames PNG images to -out. With -serve it streams
// frames to websocket clients, which may send new text and their viewport
// size back.
//
//	spheretext -text hello -frames 120 -out frames
//	spheretext -config spheretext.hjson -serve :8080
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"

	"github.com/gogpu/spheretext"
	"github.com/gogpu/spheretext/anim"
	"github.com/gogpu/spheretext/integration/wsview"
	"github.com/gogpu/spheretext/internal/config"
	"github.com/gogpu/spheretext/render"
	"github.com/gogpu/spheretext/scene"
	"github.com/gogpu/spheretext/text"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to HJSON config file")
		txt        = flag.String("text", "", "text to show")
		font       = flag.String("font", "", "TrueType/OpenType font file (default Go Regular)")
		frames     = flag.Int("frames", 0, "number of frames to write")
		out        = flag.String("out", "", "output directory for PNG frames")
		width      = flag.Int("width", 0, "viewport width")
		height     = flag.Int("height", 0, "viewport height")
		fps        = flag.Int("fps", 0, "frames per second")
		seed       = flag.Uint64("seed", 0, "random seed (0 = random)")
		serve      = flag.String("serve", "", "serve frames over websocket on this address")
		doProf     = flag.Bool("prof", false, "enable CPU profiling (debug)")
		verbose    = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		spheretext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *doProf {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	conf := config.Default()
	if *configPath != "" {
		var err error
		if conf, err = config.Load(*configPath); err != nil {
			fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			conf.Text = *txt
		case "font":
			conf.Font = *font
		case "frames":
			conf.Frames = *frames
		case "out":
			conf.Out = *out
		case "width":
			conf.Width = *width
		case "height":
			conf.Height = *height
		case "fps":
			conf.FPS = *fps
		case "seed":
			conf.Seed = *seed
		case "serve":
			conf.Serve = *serve
		}
	})
	if err := conf.Validate(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	if conf.Serve != "" {
		err = runServer(ctx, conf)
	} else {
		err = runHeadless(ctx, conf)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "spheretext:", err)
	os.Exit(1)
}

func options(conf config.Config, window spheretext.Window) []spheretext.Option {
	opts := []spheretext.Option{
		spheretext.WithText(conf.Text),
		spheretext.WithDensity(conf.Density),
		spheretext.WithEaser(conf.Easer()),
		spheretext.WithParams(conf.Params()),
		spheretext.WithWindow(window),
	}
	if conf.Font != "" {
		opts = append(opts, spheretext.WithProvider(text.FileProvider{Path: conf.Font}))
	}
	if conf.Seed != 0 {
		opts = append(opts, spheretext.WithRand(rand.New(rand.NewPCG(conf.Seed, conf.Seed))))
	}
	return opts
}

// runHeadless renders conf.Frames frames after the typeface has loaded
// and writes them as PNG files.
func runHeadless(ctx context.Context, conf config.Config) error {
	loop := anim.NewLoop(conf.FPS)
	defer loop.Close()

	host := render.NewHost(conf.Width, conf.Height)
	view := scene.NewViewport(conf.Width, conf.Height)
	st := spheretext.New(host, options(conf, view)...)
	if err := st.Mount(ctx, loop); err != nil {
		return err
	}
	defer st.Teardown()

	err := loop.RunUntil(ctx, func() bool {
		return st.State() != spheretext.StateAwaitingTypeface
	})
	if err != nil {
		return err
	}
	if st.State() == spheretext.StateFailed {
		return st.Err()
	}

	host.AddSink(render.NewPNGSink(conf.Out))

	start := host.Frames()
	want := uint64(conf.Frames)
	err = loop.RunUntil(ctx, func() bool {
		return host.Frames()-start >= want
	})
	if err != nil {
		return err
	}
	spheretext.Logger().Info("frames written", "dir", conf.Out, "count", conf.Frames, "spheres", st.Pool().Len())
	return nil
}

// runServer streams frames to websocket clients until ctx is done.
func runServer(ctx context.Context, conf config.Config) error {
	loop := anim.NewLoop(conf.FPS)
	defer loop.Close()

	view := scene.NewViewport(conf.Width, conf.Height)
	var st *spheretext.SphereText
	hub := wsview.NewHub(
		wsview.WithTextHandler(func(s string) {
			loop.Post(func() {
				if err := st.SetText(s); err != nil {
					spheretext.Logger().Warn("set text", "text", s, "err", err)
				}
			})
		}),
		wsview.WithResizeHandler(view.Resize),
	)
	defer hub.Close()

	host := wsview.NewHost(hub, conf.Width, conf.Height)
	st = spheretext.New(host, options(conf, view)...)
	if err := st.Mount(ctx, loop); err != nil {
		return err
	}
	defer st.Teardown()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: conf.Serve, Handler: mux}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	spheretext.Logger().Info("serving", "addr", conf.Serve, "path", "/ws")

	loopErr := make(chan error, 1)
	go func() {
		loopErr <- loop.Run(ctx)
	}()

	select {
	case err := <-errc:
		loop.Close()
		<-loopErr
		return err
	case err := <-loopErr:
		_ = srv.Shutdown(context.Background())
		return err
	}
}
