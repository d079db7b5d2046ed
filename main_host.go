//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"lumen/app"
	"lumen/hal"
)

func main() {
	var cfg hal.HeadlessConfig
	var page string
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Step rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.StringVar(&page, "page", "clock", "Start page: clock, quote, bounce, fractal.")
	flag.Parse()

	start, err := parsePage(page)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{StartPage: start})
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parsePage(s string) (app.Page, error) {
	switch s {
	case "clock":
		return app.PageClock, nil
	case "quote":
		return app.PageQuote, nil
	case "bounce":
		return app.PageBounce, nil
	case "fractal":
		return app.PageFractal, nil
	}
	return 0, fmt.Errorf("unknown page %q", s)
}
