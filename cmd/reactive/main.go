// Command reactive runs the audio-reactive dataflow engine offline: it
// analyzes a WAV file into spectral frames, instantiates a preset network,
// and prints the computed parameter value per frame.
//
// Examples:
//
//	reactive analyze track.wav
//	reactive analyze -preset bass-pulse -fps 30 track.wav
//	reactive kinds
//	reactive presets
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-reactive/analyzer"
	"github.com/cwbudde/algo-reactive/engine"
	"github.com/cwbudde/algo-reactive/graph"
	"github.com/cwbudde/algo-reactive/internal/cli"
	"github.com/cwbudde/algo-reactive/internal/wavio"
	"github.com/cwbudde/algo-reactive/nodes"
	"github.com/cwbudde/algo-reactive/presets"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze a WAV file and evaluate a preset network per frame"`
	Kinds   KindsCmd   `cmd:"" help:"List registered node kinds and their port signatures"`
	Presets PresetsCmd `cmd:"" help:"List built-in preset templates"`
}

// AnalyzeCmd runs the offline analyzer and evaluates one preset network.
type AnalyzeCmd struct {
	File      string  `arg:"" type:"existingfile" help:"WAV file to analyze"`
	Preset    string  `default:"beat-gate" help:"Preset template to instantiate"`
	Parameter string  `default:"value" help:"Parameter id to bind the network to"`
	FFTSize   int     `default:"2048" help:"FFT size (power of two)"`
	FPS       float64 `default:"60" help:"Output frame rate"`
	Start     float64 `default:"0" help:"Export window start time in seconds"`
	Duration  float64 `default:"0" help:"Export window duration in seconds (0 = full file)"`
	Debug     bool    `help:"Enable debug logging"`
}

// Run implements the analyze subcommand.
func (c *AnalyzeCmd) Run() error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pcm, sampleRate, err := wavio.ReadMono(c.File)
	if err != nil {
		return err
	}

	frames, err := analyzer.Analyze(ctx, pcm,
		analyzer.WithSampleRate(sampleRate),
		analyzer.WithFFTSize(c.FFTSize),
		analyzer.WithFPS(c.FPS),
		analyzer.WithRange(c.Start, c.Duration),
	)
	if err != nil {
		return err
	}

	reg := nodes.NewRegistry()
	net, err := presets.Instantiate(reg, c.Preset, c.Parameter, graph.TypeNumber)
	if err != nil {
		return err
	}

	eng := engine.New(reg, engine.WithLogger(log))
	eng.Bind(c.Parameter, net, 0.0)

	fmt.Println(cli.TitleStyle.Render("reactive analyze"))
	cli.PrintKV("file", c.File)
	cli.PrintKV("sample rate", sampleRate)
	cli.PrintKV("frames", len(frames))
	cli.PrintKV("preset", c.Preset)
	fmt.Println()

	source := engine.NewOfflineSource(frames)
	for {
		f, err := source.NextFrame(ctx)
		if errors.Is(err, engine.ErrEndOfStream) {
			break
		}
		if err != nil {
			return err
		}

		values := eng.EvaluateFrame(f)
		fmt.Printf("%.4f\t%v\n", f.Time, values[c.Parameter])
	}
	return nil
}

// KindsCmd lists the node kind registry.
type KindsCmd struct{}

// Run implements the kinds subcommand.
func (c *KindsCmd) Run() error {
	reg := nodes.NewRegistry()
	for _, name := range reg.Names() {
		kind, _ := reg.Lookup(name)

		fmt.Println(cli.TitleStyle.Render(name))
		for _, p := range kind.Inputs {
			cli.PrintKV("  in  "+p.ID, p.Type)
		}
		for _, p := range kind.Outputs {
			cli.PrintKV("  out "+p.ID, p.Type)
		}
	}
	return nil
}

// PresetsCmd lists the built-in preset templates.
type PresetsCmd struct{}

// Run implements the presets subcommand.
func (c *PresetsCmd) Run() error {
	for _, id := range presets.IDs() {
		tpl, _ := presets.Lookup(id)
		cli.PrintKV(id, tpl.Name)
	}
	return nil
}

func main() {
	var args CLI
	ctx := kong.Parse(&args,
		kong.Name("reactive"),
		kong.Description("Audio-reactive dataflow computation engine"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run()
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
