package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2/app"

	"LocalPaint/internal/board"
	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	lpnet "LocalPaint/internal/net"
	"LocalPaint/internal/render"
	"LocalPaint/internal/state"
	"LocalPaint/internal/store"
	"LocalPaint/internal/ui"
)

func main() {
	args := os.Args[1:]
	var err error
	switch {
	case len(args) > 0 && args[0] == "render":
		err = runRender(args[1:])
	case len(args) > 0 && args[0] == "discover":
		err = runDiscover(args[1:])
	default:
		err = runPaint(args)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runPaint(args []string) error {
	fs := flag.NewFlagSet("localpaint", flag.ExitOnError)
	cfg, err := config.Load(fs, args)
	if err != nil {
		return err
	}

	a := app.NewWithID(config.AppID)
	snaps := store.NewSnapshots(store.NewPrefs(a.Preferences()), cfg.Storage.Key)
	b := board.New(cfg.BoardOptions(), snaps)

	link := ""
	if cfg.Share.Enabled {
		w, h := b.Size()
		hub := lpnet.NewHub(w, h, b.Background())
		b.OnSegment = hub.Append
		b.OnReset = hub.Reset

		srv, err := lpnet.Serve(hub, cfg.Share.Port, cfg.Share.Advertise)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("[SHARE] Shutdown: %v", err)
			}
		}()
		link = srv.Link()
		log.Printf("[SHARE] Viewers can open %s", link)
	}

	ui.RunApp(a, cfg, b, link)
	return nil
}

// runRender replays a saved segment log to an image file without a window.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "Saved segment log (JSON)")
	out := fs.String("out", export.FileName, "Output file (.jpeg or .pdf)")
	cfg, err := config.Load(fs, args)
	if err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("render: -in is required")
	}

	n, err := renderLog(cfg, *in, *out)
	if err != nil {
		return err
	}
	log.Printf("Rendered %d segments to %s", n, *out)
	return nil
}

// renderLog draws the segment log at in onto a fresh canvas and writes it
// to out as PDF or JPEG depending on the extension.
func renderLog(cfg config.Config, in, out string) (int, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	segs, err := store.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("render %s: %w", in, err)
	}
	bg, err := state.NormalizeHex(cfg.Brush.Background)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(out)
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	defer f.Close()

	w, h := cfg.CanvasSize()
	switch strings.ToLower(filepath.Ext(out)) {
	case ".pdf":
		err = export.WritePDF(f, w, h, bg, segs)
	default:
		err = export.WriteJPEG(f, render.Render(w, h, bg, segs).Image(), cfg.Export.Quality)
	}
	if err != nil {
		return 0, err
	}
	return len(segs), f.Close()
}

// runDiscover lists canvas mirrors advertised on the LAN.
func runDiscover(args []string) error {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	timeout := fs.Duration("timeout", 3*time.Second, "How long to listen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	found := 0
	err := lpnet.Browse(*timeout, func(addr string) {
		found++
		fmt.Printf("http://%s/snapshot.jpeg\n", addr)
	})
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}
	if found == 0 {
		log.Println("No shared canvases found")
	}
	return nil
}
