// imgview shows an image, or an animated plot, in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"time"

	"git.sr.ht/~rockorager/imgview"
	"git.sr.ht/~rockorager/imgview/internal/config"
	"git.sr.ht/~rockorager/imgview/log"
	"git.sr.ht/~rockorager/imgview/plot"
	"git.sr.ht/~rockorager/imgview/vxfw/imageview"
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"
)

func main() {
	var (
		cfgPath  string
		file     string
		gray     bool
		sixel    bool
		interval time.Duration
		level    string
		logFile  string
	)
	flag.StringVar(&cfgPath, "config", "", "path to a TOML config file")
	flag.StringVar(&file, "file", "", "image to show instead of the plot")
	flag.BoolVar(&gray, "gray", false, "show the image in grayscale")
	flag.BoolVar(&sixel, "sixel", false, "write one frame as sixel to stdout and exit")
	flag.DurationVar(&interval, "interval", 100*time.Millisecond, "time between plot frames")
	flag.StringVar(&level, "v", "", "log level (error, warn, info, debug, trace)")
	flag.StringVar(&logFile, "log", "", "write logs to this file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Flags given on the command line win over the config file and env
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = file
		case "gray":
			cfg.Gray = gray
		case "sixel":
			cfg.Sixel = sixel
		case "interval":
			cfg.Interval = interval
		case "v":
			cfg.LogLevel = level
		case "log":
			cfg.LogFile = logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	frame, err := loadFrame(cfg)
	if err != nil {
		return err
	}

	if cfg.Sixel || !term.IsTerminal(int(os.Stdout.Fd())) {
		return writeSixel(os.Stdout, frame)
	}

	app, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		return fmt.Errorf("couldn't create app: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.File == "" {
		go animate(ctx, app, cfg.Interval)
	}

	return app.Run(newModel(frame))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func setupLogging(cfg config.Config) (io.Closer, error) {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	if cfg.LogFile == "" {
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// loadFrame returns the first frame to show: the configured file, or the plot
// at its initial damping
func loadFrame(cfg config.Config) (imgview.Buffer, error) {
	if cfg.File == "" {
		return plot.Frame(plot.NewOscillator().Factor()), nil
	}
	f, err := os.Open(cfg.File)
	if err != nil {
		return imgview.Buffer{}, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return imgview.Buffer{}, fmt.Errorf("decode %s: %w", cfg.File, err)
	}
	log.Info("loaded %s image %s (%d x %d)", format, cfg.File, img.Bounds().Dx(), img.Bounds().Dy())
	return imgview.BufferFromImage(img, cfg.Gray), nil
}

func writeSixel(w io.Writer, frame imgview.Buffer) error {
	view := imgview.New(nil, imgview.Options{})
	view.Update(frame)
	if !view.HasImage() {
		return fmt.Errorf("nothing to show")
	}
	sp := &imgview.SixelPainter{W: w}
	view.Paint(sp)
	if sp.Err != nil {
		return sp.Err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// animate renders a new plot every interval and posts it to the app. Frames
// are rendered here; the view is only touched on the UI goroutine
func animate(ctx context.Context, app *vxfw.App, interval time.Duration) {
	osc := plot.NewOscillator()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c := osc.Advance()
			log.Trace("plot frame with C = %.2f", c)
			app.PostEvent(imageview.UpdateEvent{Buffer: plot.Frame(c)})
		}
	}
}
