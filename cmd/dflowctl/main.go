// Command dflowctl builds a small demo pipeline (a counter and a string
// source feeding a joiner into a sink), runs it to completion, and prints
// the graph's render alongside the sink's collected output.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/birdayz/dflow"
	"github.com/birdayz/dflow/nodes"
	"github.com/birdayz/dflow/render"
)

func main() {
	ticks := flag.Int("ticks", 5, "number of values the sink collects before the pipeline closes")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	g := dflow.NewGraph()

	counter := g.CreateNode(nodes.NewCounter("counter", 0, 1))
	strs := g.CreateNode(nodes.NewStringAppender("strings", "v"))
	joiner := g.CreateNode(nodes.NewJoiner("joiner"))
	sink := g.CreateNode(nodes.NewSink[string]("sink", *ticks))

	must(g.Connect(counter, joiner, 0))
	must(g.Connect(strs, joiner, 1))
	must(g.Connect(joiner, sink, 0))

	if !g.IsValid() {
		fmt.Fprintln(os.Stderr, "pipeline graph is not valid")
		os.Exit(1)
	}

	fmt.Print(render.Dump(g))

	p := dflow.New(g, dflow.WithLogger(logger), dflow.WithName("dflowctl"), dflow.WithTickTimeout(time.Second))

	ctx := context.Background()
	if err := p.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "run failed:", err)
		os.Exit(1)
	}

	sinkNode, _ := g.GetNode(sink)
	fmt.Println("collected:", sinkNode.(*nodes.Sink[string]).Values)
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect failed:", err)
		os.Exit(1)
	}
}
