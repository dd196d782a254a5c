package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	outDir     string
	format     string
	depth      int
	shadowRays int
	workers    int
	seed       int64
	list       bool
	help       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, renders the chosen scene and writes the output files
func run(args []string, stdout, stderr io.Writer) error {
	opts, flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.help {
		printHelp(stdout, flags)
		return nil
	}
	if opts.list {
		return listScenes(stdout)
	}

	logger := log.New(stderr, "", log.LstdFlags)

	s, err := createScene(opts.sceneName)
	if err != nil {
		return err
	}
	logger.Printf("Loaded scene %q: %d surfaces, %d lights\n", opts.sceneName, s.GetPrimitiveCount(), len(s.Lights))

	config := s.SamplingConfig
	config.MaxDepth = opts.depth
	config.ShadowRays = opts.shadowRays
	config.Workers = opts.workers
	config.Seed = opts.seed

	raytracer := renderer.NewRaytracer(s, logger)
	defer raytracer.Close()
	raytracer.SetSamplingConfig(config)
	buffer, stats := raytracer.Render()
	logger.Printf("Average luminance %.3f\n", renderer.CalculateAverageLuminance(buffer))

	outDir := opts.outDir
	if outDir == "" {
		outDir = filepath.Join("output", sceneBaseName(opts.sceneName))
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	base := filepath.Join(outDir, "render_"+time.Now().Format("20060102_150405"))
	if opts.format == "ppm" || opts.format == "both" {
		if err := loaders.SavePPM(base+".ppm", buffer); err != nil {
			return err
		}
		logger.Printf("Render saved as %s.ppm\n", base)
	}
	if opts.format == "png" || opts.format == "both" {
		if err := loaders.SavePNG(base+".png", buffer); err != nil {
			return err
		}
		logger.Printf("Render saved as %s.png\n", base)
	}

	fmt.Fprintf(stdout, "Rendered %s in %v\n", opts.sceneName, stats.Elapsed.Round(time.Millisecond))
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&opts.sceneName, "scene", "default", "Built-in scene name or path to a scene file")
	flags.StringVar(&opts.outDir, "out", "", "Output directory (default output/<scene>)")
	flags.StringVar(&opts.format, "format", "ppm", "Output format: 'ppm', 'png' or 'both'")
	flags.IntVar(&opts.depth, "depth", scene.DefaultMaxDepth, "Maximum reflection/refraction depth")
	flags.IntVar(&opts.shadowRays, "shadow-rays", 1, "Shadow rays per light; more than 1 gives soft shadows")
	flags.IntVar(&opts.workers, "workers", 0, "Render workers (0 = one per CPU)")
	flags.Int64Var(&opts.seed, "seed", scene.DefaultSeed, "Random seed for soft shadows")
	flags.BoolVar(&opts.list, "list", false, "List available scenes")
	flags.BoolVar(&opts.help, "help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return opts, flags, err
	}

	switch opts.format {
	case "ppm", "png", "both":
	default:
		return opts, flags, fmt.Errorf("unknown output format %q", opts.format)
	}
	if opts.depth < 0 || opts.depth > scene.MaxDepthLimit {
		return opts, flags, fmt.Errorf("depth %d is not within [0, %d]", opts.depth, scene.MaxDepthLimit)
	}
	if opts.shadowRays < 1 {
		return opts, flags, fmt.Errorf("shadow-rays must be at least 1, got %d", opts.shadowRays)
	}
	if opts.sceneName == "" {
		return opts, flags, fmt.Errorf("scene name is empty")
	}

	return opts, flags, nil
}

// createScene returns a built-in scene by name, or loads a scene file
func createScene(name string) (*scene.Scene, error) {
	return scene.Load(name)
}

// sceneBaseName turns a scene name or file path into a directory name
func sceneBaseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func listScenes(stdout io.Writer) error {
	scenes, err := scene.ListAllScenes("scenes")
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Fprintf(stdout, "  %-24s %s\n", info.ID, info.Description)
	}
	return nil
}

func printHelp(stdout io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(stdout, "Whitted Raytracer")
	fmt.Fprintln(stdout, "Usage: raytracer [options]")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Options:")
	flags.SetOutput(stdout)
	flags.PrintDefaults()
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Fprintf(stdout, "  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(stdout, "  <file>     - Path to a scene file")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Output will be saved to output/<scene>/render_<timestamp>.<format>")
}
