package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/circuit"
	"gonum.org/v1/plot/vg"
)

type Count struct {
	Verbose bool     `short:"v" desc:"Verbose output"`
	Inputs  []string `index:"*" desc:"Input files, reads from stdin if empty"`
}

type List struct {
	Verbose bool     `short:"v" desc:"Verbose output"`
	Inputs  []string `index:"*" desc:"Input files, reads from stdin if empty"`
}

type Trace struct {
	Output string `short:"o" desc:"Output file"`
	Input  string `index:"0" desc:"Input file, reads from stdin if empty"`
}

type Plot struct {
	Width  float64 `default:"15" desc:"Width in centimeters"`
	Height float64 `default:"15" desc:"Height in centimeters"`
	Output string  `short:"o" default:"circuit.svg" desc:"Output file, the extension selects the image format"`
	Open   bool    `desc:"Open the output file in the browser"`
	Input  string  `index:"0" desc:"Input file, reads from stdin if empty"`
}

type GeoJSON struct {
	Output string `short:"o" desc:"Output file"`
	Input  string `index:"0" desc:"Input file, reads from stdin if empty"`
}

func main() {
	root := argp.NewCmd(&Count{}, "Circuit verifier that finds crossing wires in a layer of an on-chip circuit")
	root.AddCmd(&List{}, "list", "List pairs of crossing wires")
	root.AddCmd(&Trace{}, "trace", "Write a JSONP trace of the verification for the visualizer")
	root.AddCmd(&Plot{}, "plot", "Plot wires and crossings")
	root.AddCmd(&GeoJSON{}, "geojson", "Write wires and crossings as GeoJSON")
	root.Parse()
	root.PrintHelp()
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func readLayers(inputs []string) ([]*circuit.Layer, error) {
	if len(inputs) == 0 {
		return circuit.ParseLayers(os.Stdin)
	}

	layers := []*circuit.Layer{}
	for _, input := range inputs {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		ls, err := circuit.ParseLayers(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		layers = append(layers, ls...)
	}
	return layers, nil
}

func readLayer(input string) (*circuit.Layer, error) {
	if input == "" || input == "-" {
		return circuit.ParseLayer(os.Stdin)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	layer, err := circuit.ParseLayer(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return layer, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func createOutput(output string) (io.WriteCloser, error) {
	if output == "" || output == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(output)
}

func (cmd *Count) Run() error {
	// TRACE=list or TRACE=jsonp selects another output mode
	switch strings.ToLower(os.Getenv("TRACE")) {
	case "list":
		return (&List{Verbose: cmd.Verbose, Inputs: cmd.Inputs}).Run()
	case "jsonp":
		if 1 < len(cmd.Inputs) {
			fmt.Println("ERROR: trace accepts a single input file")
			return argp.ShowUsage
		}
		trace := &Trace{}
		if len(cmd.Inputs) == 1 {
			trace.Input = cmd.Inputs[0]
		}
		return trace.Run()
	}

	log := newLogger(cmd.Verbose)
	t := time.Now()
	layers, err := readLayers(cmd.Inputs)
	if err != nil {
		return err
	}
	log.Info("parsed layers", "layers", len(layers), "duration", time.Since(t))

	t = time.Now()
	counts, err := circuit.CountLayers(context.Background(), layers)
	if err != nil {
		return err
	}
	log.Info("verified layers", "duration", time.Since(t))

	for _, n := range counts {
		fmt.Println(n)
	}
	return nil
}

func (cmd *List) Run() error {
	log := newLogger(cmd.Verbose)
	t := time.Now()
	layers, err := readLayers(cmd.Inputs)
	if err != nil {
		return err
	}
	log.Info("parsed layers", "layers", len(layers), "duration", time.Since(t))

	t = time.Now()
	results, err := circuit.ListLayers(context.Background(), layers)
	if err != nil {
		return err
	}
	log.Info("verified layers", "duration", time.Since(t))

	for i, rs := range results {
		if 0 < i {
			fmt.Println()
		}
		log.Info("crossings", "layer", i, "count", rs.Len())
		if _, err := rs.WriteTo(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *Trace) Run() error {
	layer, err := readLayer(cmd.Input)
	if err != nil {
		return err
	}

	trace := circuit.Trace{}
	if _, err := circuit.NewVerifier(layer, circuit.WithTracer(&trace)).Crossings(); err != nil {
		return err
	}

	w, err := createOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer w.Close()
	return circuit.WriteJSONP(w, layer, trace)
}

func (cmd *Plot) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	layer, err := readLayer(cmd.Input)
	if err != nil {
		return err
	}

	rs, err := circuit.NewVerifier(layer).Crossings()
	if err != nil {
		return err
	}

	p, err := layer.Plot(rs)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(cmd.Width)*vg.Centimeter, vg.Length(cmd.Height)*vg.Centimeter, cmd.Output); err != nil {
		return err
	}

	if cmd.Open {
		return browser.OpenFile(cmd.Output)
	}
	return nil
}

func (cmd *GeoJSON) Run() error {
	layer, err := readLayer(cmd.Input)
	if err != nil {
		return err
	}

	rs, err := circuit.NewVerifier(layer).Crossings()
	if err != nil {
		return err
	}

	fc := layer.GeoJSON()
	fc.Features = append(fc.Features, rs.GeoJSON().Features...)
	b, err := json.Marshal(fc)
	if err != nil {
		return err
	}

	w, err := createOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
