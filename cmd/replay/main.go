// Command replay steps the playground headless through a scripted intent
// sequence and prints the player's motion frame by frame.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

func main() {
	scenarioPath := flag.String("scenario", "cmd/replay/scenarios/double_jump.yaml", "scenario YAML file")
	every := flag.Int("every", 1, "print every Nth frame")
	asYAML := flag.Bool("yaml", false, "emit frames as YAML instead of a table")
	flag.Parse()

	data, err := os.ReadFile(*scenarioPath)
	if err != nil {
		log.Fatalf("replay: read scenario: %v", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	frames, err := Run(sc)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	if *asYAML {
		out, err := yaml.Marshal(sample(frames, *every))
		if err != nil {
			log.Fatalf("replay: marshal frames: %v", err)
		}
		_, _ = os.Stdout.Write(out)
		return
	}
	if err := writeTable(os.Stdout, sample(frames, *every)); err != nil {
		log.Fatalf("replay: %v", err)
	}
}

func sample(frames []Frame, every int) []Frame {
	if every <= 1 {
		return frames
	}
	out := make([]Frame, 0, len(frames)/every+1)
	for i, f := range frames {
		if i%every == 0 || i == len(frames)-1 {
			out = append(out, f)
		}
	}
	return out
}

func writeTable(w io.Writer, frames []Frame) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "frame\tx\ty\tvx\tvy\tjumps\tcanJump\tcanDash\tdashing\tfallFaster\tairborne\tintents")
	for _, f := range frames {
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.3f\t%.3f\t%d\t%t\t%t\t%t\t%t\t%t\t%s\n",
			f.Frame, f.X, f.Y, f.VX, f.VY,
			f.State.JumpsRemaining, f.State.CanJump, f.State.CanDash, f.Dashing,
			f.State.FallFaster, f.State.Airborne, f.Intents)
	}
	return tw.Flush()
}
