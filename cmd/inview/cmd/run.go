package cmd

import (
	"flag"
	"fmt"

	"github.com/go-drift/inview/cmd/inview/internal/config"
	"github.com/go-drift/inview/pkg/display"
	"github.com/go-drift/inview/pkg/errors"
	"github.com/go-drift/inview/pkg/geometry"
	"github.com/go-drift/inview/pkg/visibility"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Replay a scroll timeline and print visibility events",
		Long: `Load a scene (inview.yaml in the current directory by default, or the
built-in demo scene when no file exists), subscribe the four synthetic
visibility events on every node, then replay the scroll timeline and
print each event as it fires.`,
		Usage: "inview run [-c scene.yaml] [-verbose]",
		Run:   runScene,
	})
}

func runScene(args []string) error {
	flags := flag.NewFlagSet("run", flag.ContinueOnError)
	scenePath := flags.String("c", "", "scene file (default: ./inview.yaml, falling back to the demo scene)")
	verbose := flags.Bool("verbose", false, "log stack traces for handler failures")
	if err := flags.Parse(args); err != nil {
		return err
	}

	errors.SetHandler(&errors.LogHandler{Verbose: *verbose})

	var cfg *config.Config
	var err error
	if *scenePath != "" {
		cfg, err = config.Load(*scenePath)
	} else {
		cfg, err = config.LoadOptional(".")
	}
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "cmd.run",
			Kind: errors.KindConfig,
			Err:  err,
		})
		return err
	}

	surface := display.NewSurface(cfg.Viewport.Size())
	if !cfg.Content.Size().IsEmpty() {
		surface.SetContentSize(cfg.Content.Size())
	}
	observer := visibility.NewObserver(surface, visibility.Options{
		MaxChecksPerSecond: cfg.MaxChecksPerSecond,
	})

	for _, nc := range cfg.Nodes {
		node := display.NewNode(nc.Name)
		node.SetFrame(nc.Frame())
		surface.Root().AppendChild(node)
		for _, kind := range visibility.Kinds() {
			observer.On(node, kind.String(), printEvent)
		}
	}

	fmt.Printf("scene: %d nodes, viewport %gx%g, %d timeline steps\n",
		len(cfg.Nodes), cfg.Viewport.Width, cfg.Viewport.Height, len(cfg.Timeline))

	surface.Load()
	for _, step := range cfg.Timeline {
		fmt.Printf("scroll -> (%g, %g)\n", step.X, step.Y)
		surface.ScrollTo(geometry.Offset{X: step.X, Y: step.Y})
	}
	return nil
}

func printEvent(ev *display.Event) {
	change, _ := ev.Detail.(visibility.Change)
	fmt.Printf("  %-9s %-12s visible=%v\n", ev.Name, ev.Target.Name, change.Visible)
}
