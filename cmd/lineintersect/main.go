package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/intersect"
)

type Find struct {
	IgnoreEndpoints bool   `short:"e" desc:"Ignore intersections at the shared endpoints of both segments"`
	First           bool   `short:"1" desc:"Stop at the first intersection found"`
	Pairwise        bool   `desc:"Test all segment pairs instead of sweeping"`
	Input           string `index:"0" desc:"Input file with one x1,y1,x2,y2 segment per line (default stdin)"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Line segment intersection tool by Taco de Wolff")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Find) Run() error {
	r := os.Stdin
	if cmd.Input != "" {
		var err error
		if r, err = os.Open(cmd.Input); err != nil {
			return err
		}
		defer r.Close()
	}

	lines, err := readLines(r)
	if err != nil {
		return err
	}

	var rs intersect.Results
	if cmd.Pairwise {
		rs = intersect.PairwiseIntersections(lines, cmd.IgnoreEndpoints)
	} else {
		rs, err = intersect.New().
			IgnoreEndpointIntersections(cmd.IgnoreEndpoints).
			StopAtFirstIntersection(cmd.First).
			Lines(lines...).
			Compute()
		if err != nil {
			return err
		}
	}

	for _, z := range rs {
		fmt.Println(z)
	}
	fmt.Println(len(rs), "intersections between", len(lines), "segments")
	return nil
}

func readLines(r io.Reader) ([]intersect.Line, error) {
	var lines []intersect.Line
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		cols := strings.Split(row, ",")
		if len(cols) != 4 {
			return nil, fmt.Errorf("line %d: expected x1,y1,x2,y2 but got %q", i, row)
		}
		var coords [4]float64
		for j, col := range cols {
			f, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", i, err)
			}
			coords[j] = f
		}
		lines = append(lines, intersect.Line{
			Start: intersect.Point{X: coords[0], Y: coords[1]},
			End:   intersect.Point{X: coords[2], Y: coords[3]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
