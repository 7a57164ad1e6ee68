package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mikenye/sweep2d/linesegment"
	"github.com/mikenye/sweep2d/point"
	"github.com/urfave/cli/v3"
)

// intersectionOutput is the JSON shape of one reported intersection.
type intersectionOutput struct {
	First    int         `json:"first"`
	Second   int         `json:"second"`
	Relation string      `json:"relation"`
	Start    point.Point `json:"start"`
	End      point.Point `json:"end"`
}

func main() {
	cmd := &cli.Command{
		Name:      "segintersections",
		Usage:     "Reads line segments as JSON and outputs all pairwise intersections and their relations as JSON",
		UsageText: "segintersections [--input <file>] [--naive]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path of the JSON segments file, or '-' for stdin",
				Value:    "-",
				Aliases:  []string{"i"},
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "naive",
				Usage:    "Use the brute-force O(n^2) algorithm instead of the sweep",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func readSegments(path string) ([]linesegment.LineSegment, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	var segments []linesegment.LineSegment
	if err := json.Unmarshal(b, &segments); err != nil {
		return nil, fmt.Errorf("parsing segments: %w", err)
	}
	return segments, nil
}

func app(_ context.Context, cmd *cli.Command) error {

	segments, err := readSegments(cmd.String("input"))
	if err != nil {
		return err
	}

	var intersections []linesegment.Intersection
	if cmd.Bool("naive") {
		intersections, err = linesegment.FindIntersectionsNaive(segments)
	} else {
		intersections, err = linesegment.FindIntersections(segments)
	}
	if err != nil {
		return err
	}

	output := make([]intersectionOutput, 0, len(intersections))
	for _, intersection := range intersections {
		output = append(output, intersectionOutput{
			First:    intersection.FirstSegmentID,
			Second:   intersection.SecondSegmentID,
			Relation: intersection.Relation.String(),
			Start:    intersection.Start,
			End:      intersection.End,
		})
	}
	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
