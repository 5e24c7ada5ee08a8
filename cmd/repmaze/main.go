// Command repmaze analyzes, solves and searches repeated-block port mazes.
//
// Usage:
//
//	repmaze report [-max-cycles N] [-samples N]
//	repmaze solve [-max-coord N] <nterm> <maze_string>
//	repmaze search [-max-coord N] [-max-iter N] [-seed N] <nterm>
//	repmaze --version
//
// Without arguments, repmaze prints the doubling-machine analysis report.
// Report and result content goes to stdout; progress logging goes to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/repmaze/maze"
	"github.com/katalvlaran/repmaze/minsky"
	"github.com/katalvlaran/repmaze/quizmaster"
	"github.com/katalvlaran/repmaze/solver"
)

const version = "0.1.0"

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
	os.Exit(run(os.Args[1:]))
}

// run dispatches the subcommand and returns the process exit code.
func run(args []string) int {
	if len(args) == 0 {
		return cmdReport(nil)
	}
	switch args[0] {
	case "--version", "-v":
		fmt.Printf("repmaze v%s\n", version)
		return 0
	case "report":
		return cmdReport(args[1:])
	case "solve":
		return cmdSolve(args[1:])
	case "search":
		return cmdSearch(args[1:])
	default:
		usage()
		return 1
	}
}

func usage() {
	fmt.Fprint(os.Stderr,
		"Usage:\n"+
			"  repmaze report [-max-cycles N] [-samples N]\n"+
			"  repmaze solve [-max-coord N] <nterm> <maze_string>\n"+
			"  repmaze search [-max-coord N] [-max-iter N] [-seed N] <nterm>\n"+
			"  repmaze --version\n")
}

// cmdReport prints the doubling-machine vs. counter-pump comparison report.
func cmdReport(args []string) int {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	maxCycles := fs.Int("max-cycles", 29, "inclusive upper bound of the table's k range")
	samples := fs.Int("samples", 5, "number of leading k values to print maze strings for")
	_ = fs.Parse(args)

	opts := minsky.ReportOptions{MaxCycles: *maxCycles, SampleMazes: *samples}
	if err := minsky.WriteReport(os.Stdout, opts); err != nil {
		slog.Error("report failed", "err", err)
		return 1
	}
	return 0
}

// cmdSolve parses a maze string and prints its shortest walk.
func cmdSolve(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	maxCoord := fs.Int("max-coord", 1000, "coordinate bound of the explored box")
	_ = fs.Parse(args)
	if fs.NArg() < 2 {
		usage()
		return 1
	}

	nterm, err := strconv.Atoi(fs.Arg(0))
	if err != nil || nterm < 2 {
		slog.Error("nterm must be an integer >= 2", "got", fs.Arg(0))
		return 1
	}

	m, err := maze.Parse(nterm, fs.Arg(1))
	if err != nil {
		slog.Error("failed to parse maze string", "err", err)
		return 1
	}

	fmt.Printf("Maze: %s\n", m)

	res, err := solver.Solve(m, solver.WithMaxCoord(*maxCoord))
	if errors.Is(err, solver.ErrNoPath) {
		fmt.Printf("No path found (max-coord=%d)\n", *maxCoord)
		return 0
	}
	if err != nil {
		slog.Error("solve failed", "err", err)
		return 1
	}

	fmt.Printf("Path length: %d\n", res.Length)
	fmt.Printf("Path: %s\n\n", res.PathString())
	fmt.Println(m.Table())
	fmt.Println(res.GridString())
	fmt.Print(res.AnnotatedString(m))
	return 0
}

// cmdSearch runs the quizmaster hill climb and prints the best maze found.
func cmdSearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	maxCoord := fs.Int("max-coord", 1000, "coordinate bound of the explored box")
	maxIter := fs.Int("max-iter", 1000000, "number of flip attempts")
	seed := fs.Int64("seed", 0, "RNG seed (0 selects the fixed default)")
	_ = fs.Parse(args)
	if fs.NArg() < 1 {
		usage()
		return 1
	}

	nterm, err := strconv.Atoi(fs.Arg(0))
	if err != nil || nterm < 2 {
		slog.Error("nterm must be an integer >= 2", "got", fs.Arg(0))
		return 1
	}

	fmt.Printf("Search: nterm=%d max-coord=%d max-iter=%d seed=%d\n",
		nterm, *maxCoord, *maxIter, *seed)

	out, err := quizmaster.Search(nterm,
		quizmaster.WithMaxCoord(*maxCoord),
		quizmaster.WithMaxIterations(*maxIter),
		quizmaster.WithSeed(*seed),
		quizmaster.WithLogger(slog.Default()),
	)
	if errors.Is(err, quizmaster.ErrNoPathFound) {
		fmt.Println("No maze with a valid path found.")
		return 0
	}
	if err != nil {
		slog.Error("search failed", "err", err)
		return 1
	}

	fmt.Println("\n=== Best result ===")
	fmt.Printf("Path length: %d\n", out.Length)
	fmt.Printf("Maze: %s\n\n", out.Best)
	fmt.Println(out.Best.Table())

	res := &solver.Result{Path: out.Path, Length: out.Length}
	fmt.Printf("\nPath: %s\n\n", res.PathString())
	fmt.Println(res.GridString())
	fmt.Print(res.AnnotatedString(out.Best))
	return 0
}
