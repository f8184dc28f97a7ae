package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"zeroenh/internal/logging"
	"zeroenh/internal/prompt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	enhanceSeed      uint32
	enhanceIntensity string
	enhanceProfile   string
	enhanceMaxWords  int
	enhancePrefix    string
	enhanceSuffix    string
	enhanceFile      string
	enhanceJSON      bool
)

// enhanceCmd runs the enhancement pipeline on one prompt or a file of them
var enhanceCmd = &cobra.Command{
	Use:   "enhance [prompt]",
	Short: "Enhance a prompt deterministically",
	Long: `Enhances a prompt by classifying its phrases into vocabulary categories
and filling the missing ones from the profile's pools. The seed and the
prompt fully determine the result; re-running with the same inputs
reproduces it exactly.

Examples:
  zeroenh enhance "a cat" --seed 42
  zeroenh enhance "cyberpunk samurai, neon lighting" -i strong -p cinematic
  zeroenh enhance -f prompts.txt --seed 7 --json`,
	Args: cobra.ArbitraryArgs,
	RunE: runEnhance,
}

func runEnhance(cmd *cobra.Command, args []string) error {
	intensity, err := resolveIntensity(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("max-words") && enhanceMaxWords < 1 {
		return fmt.Errorf("--max-words must be at least 1")
	}

	reg := loadRegistry()
	profileName := enhanceProfile
	if profileName == "" {
		profileName = cfg.DefaultProfile
	}
	prof, err := reg.Get(profileName)
	if err != nil {
		return err
	}

	opts := prompt.Options{
		MaxWords: resolveMaxWords(cmd),
		Prefix:   enhancePrefix,
		Suffix:   enhanceSuffix,
	}

	if enhanceFile != "" {
		return enhanceBatch(cmd, prof, intensity, opts)
	}

	text := strings.Join(args, " ")
	runID := uuid.NewString()[:8]
	runLog := logging.WithRun(logging.CategoryCLI, runID).WithField("profile", prof.Name)
	runLog.Info("enhance %q seed=%d intensity=%s", text, enhanceSeed, intensity)

	start := time.Now()
	res := prompt.Run(text, enhanceSeed, intensity, prof, opts)
	logging.AuditWithRun(runID).RunComplete(prof.Name, enhanceSeed, string(intensity),
		len(strings.Fields(res.Output)), time.Since(start).Milliseconds())

	if enhanceJSON {
		return printRunJSON(cmd, res)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	return nil
}

// resolveIntensity falls back to the configured default when the flag is
// not set.
func resolveIntensity(cmd *cobra.Command) (prompt.Intensity, error) {
	s := enhanceIntensity
	if !cmd.Flags().Changed("intensity") {
		s = cfg.DefaultIntensity
		if s == "" {
			s = string(prompt.IntensityModerate)
		}
	}
	return prompt.ParseIntensity(s)
}

func resolveMaxWords(cmd *cobra.Command) int {
	if cmd.Flags().Changed("max-words") {
		return enhanceMaxWords
	}
	return cfg.DefaultMaxWords
}

// enhanceBatch enhances every prompt in the file, one per line. Blank
// lines and # comments are skipped. Runs execute concurrently; output
// keeps input order.
func enhanceBatch(cmd *cobra.Command, prof *prompt.Profile, intensity prompt.Intensity, opts prompt.Options) error {
	var in io.Reader
	if enhanceFile == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(enhanceFile)
		if err != nil {
			return fmt.Errorf("open prompt file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var prompts []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prompts = append(prompts, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read prompt file: %w", err)
	}

	start := time.Now()
	results := make([]prompt.Result, len(prompts))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, text := range prompts {
		g.Go(func() error {
			results[i] = prompt.Run(text, enhanceSeed, intensity, prof, opts)
			return nil
		})
	}
	_ = g.Wait()

	logger.Debug("batch enhanced", zap.Int("prompts", len(results)))
	logging.Audit().BatchComplete(prof.Name, len(results), time.Since(start).Milliseconds())

	if enhanceJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, res := range results {
		fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	}
	return nil
}

func printRunJSON(cmd *cobra.Command, res prompt.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
