// Command carve animates maze carving in the terminal, one step per tick,
// and can save the result as a PNG image.
package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"image/png"
	"math/rand/v2"
	"os"
	"time"

	"github.com/yalue/image_utils"

	"github.com/mzegla/maze-carver/internal/maze"
	"github.com/mzegla/maze-carver/internal/mazeimg"
)

func run() int {
	var rows, cols int
	var seed uint64
	var tick time.Duration
	var quiet bool
	var outFilename string
	flag.IntVar(&rows, "rows", 20,
		"The height of the maze, in grid cells.")
	flag.IntVar(&cols, "cols", 20,
		"The width of the maze, in grid cells.")
	flag.Uint64Var(&seed, "seed", 0,
		"If nonzero, the random seed to carve with.")
	flag.DurationVar(&tick, "tick", 25*time.Millisecond,
		"The delay between animation frames.")
	flag.BoolVar(&quiet, "quiet", false,
		"If set, skips the animation and carves the maze at once.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of a .png file to which the finished maze will be saved.")
	flag.Parse()

	if rows < 1 || cols < 1 {
		fmt.Println("rows and cols must be at least 1.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}

	grid, err := maze.New(rows, cols, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		fmt.Printf("Failed creating grid: %s\n", err)
		return 1
	}

	if quiet {
		steps := grid.Run()
		fmt.Printf("Carved a %dx%d maze in %d steps (seed %d).\n",
			rows, cols, steps, seed)
	} else {
		fmt.Print("\x1b[2J")
		for {
			fmt.Print("\x1b[H")
			fmt.Print(grid.String())
			if grid.Step() == maze.StepDone {
				break
			}
			time.Sleep(tick)
		}
		fmt.Print("\x1b[H")
		fmt.Print(grid.String())
		fmt.Printf("Done in %d steps (seed %d).\n", grid.Steps(), seed)
	}

	if outFilename != "" {
		pic := image_utils.ToRGBA(mazeimg.New(grid))
		f, err := os.Create(outFilename)
		if err != nil {
			fmt.Printf("Error creating output file %s: %s\n", outFilename, err)
			return 1
		}
		defer f.Close()
		if err := png.Encode(f, pic); err != nil {
			fmt.Printf("Error writing image to %s: %s\n", outFilename, err)
			return 1
		}
		fmt.Printf("Image %s written OK.\n", outFilename)
	}
	return 0
}

func main() {
	os.Exit(run())
}
