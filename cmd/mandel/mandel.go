package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/willbeason/mandel-sweep/pkg/render"
)

const flagDir = "dir"

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandel SIZE SAMPLES",
		Short: "Render a Mandelbrot set coloured across a sweep of exponents",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCmd,
	}

	cmd.Flags().String(flagDir, ".", "directory to write the image to")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parsing size: %w", err)
	}
	if size < 1 {
		return fmt.Errorf("size must be positive, got %d", size)
	}

	samples, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parsing samples: %w", err)
	}
	if samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", samples)
	}

	dir, err := cmd.Flags().GetString(flagDir)
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	path, err := render.Render(cmd.Context(), dir, size, samples)
	if err != nil {
		return err
	}

	log.Printf("wrote %s", path)
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
