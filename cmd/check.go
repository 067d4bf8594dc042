package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saherflow/flowportal/internal/assets"
	"github.com/saherflow/flowportal/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every hero image loads",
	Long: `Resolves the configured slide set and tries to load each image. Slides that
fail will show the fallback image on the page; check reports them and exits
non-zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		slides, err := resolveSlides(cfg)
		if err != nil {
			return err
		}

		prober := assets.NewProber(cfg.Slideshow.AssetDir, progress.NewReporter())
		results, err := prober.Probe(cmd.Context(), slides)
		if err != nil {
			return fmt.Errorf("checking slides: %w", err)
		}

		failed := 0
		for _, r := range results {
			if r.OK {
				if verbose {
					fmt.Fprintf(os.Stderr, "  ok   [%d] %s\n", r.Index, r.Ref)
				}
				continue
			}
			failed++
			fmt.Fprintf(os.Stderr, "  FAIL [%d] %s: %v\n", r.Index, r.Ref, r.Err)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d slides would show the fallback image", failed, len(results))
		}
		fmt.Fprintf(os.Stderr, "All %d slides loaded\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
