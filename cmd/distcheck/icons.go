package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hayeah/distcheck"
)

// iconSizes are the pixel sizes every icon theme directory expects.
var iconSizes = []int{16, 22, 32, 48, 64, 128}

// IconsCmd defines the command-line arguments for the icons subcommand
type IconsCmd struct {
	Source   string `arg:"positional" help:"SVG source file (default from .distcheck.toml, else icon.svg)"`
	ID       string `arg:"--id" help:"SVG object id to export"`
	Name     string `arg:"--name" help:"Base name of the exported PNG files (default: the object id)"`
	Renderer string `arg:"--renderer" help:"Vector rasterizer binary (default: inkscape)"`
	DryRun   bool   `arg:"--dry-run" help:"Print the export commands without running them"`
}

// renderJob is one invocation of the rasterizer.
type renderJob struct {
	Size   int
	Dir    string
	Output string
	Args   []string
}

// IconsRunner encapsulates the state and behavior for the icons subcommand
type IconsRunner struct {
	Args     IconsCmd
	RootPath string
	Renderer string
	Source   string
	ID       string
	Name     string
}

// NewIconsRunner creates and initializes a new IconsRunner, merging
// flag values with config-file defaults.
func NewIconsRunner(cmd IconsCmd, rootPath string) (*IconsRunner, error) {
	cfg, err := distcheck.LoadConfig(rootPath)
	if err != nil {
		return nil, err
	}

	source := firstNonEmpty(cmd.Source, cfg.Icons.Source, "icon.svg")
	id := firstNonEmpty(cmd.ID, cfg.Icons.ID, "icon")
	return &IconsRunner{
		Args:     cmd,
		RootPath: rootPath,
		Renderer: firstNonEmpty(cmd.Renderer, cfg.Icons.Renderer, "inkscape"),
		Source:   source,
		ID:       id,
		Name:     firstNonEmpty(cmd.Name, cfg.Icons.Name, id),
	}, nil
}

// jobs builds one render invocation per icon size, writing each bitmap
// to <size>x<size>/<name>.png under the root path.
func (r *IconsRunner) jobs() []renderJob {
	jobs := make([]renderJob, 0, len(iconSizes))
	for _, size := range iconSizes {
		dir := filepath.Join(r.RootPath, fmt.Sprintf("%dx%d", size, size))
		output := filepath.Join(dir, r.Name+".png")
		jobs = append(jobs, renderJob{
			Size:   size,
			Dir:    dir,
			Output: output,
			Args: []string{
				"--export-type=png",
				"--export-id=" + r.ID,
				fmt.Sprintf("--export-width=%d", size),
				fmt.Sprintf("--export-height=%d", size),
				"--export-filename=" + output,
				r.Source,
			},
		})
	}
	return jobs
}

// Run executes the icons subcommand
func (r *IconsRunner) Run() error {
	for _, job := range r.jobs() {
		if r.Args.DryRun {
			fmt.Println(r.Renderer, strings.Join(job.Args, " "))
			continue
		}

		if err := os.MkdirAll(job.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", job.Dir, err)
		}

		slog.Debug("exporting icon", "size", job.Size, "output", job.Output)
		cmd := exec.Command(r.Renderer, job.Args...)
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("failed to export %s: %w", job.Output, err)
		}
	}
	return nil
}

// firstNonEmpty returns the first non-empty string among its arguments.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
