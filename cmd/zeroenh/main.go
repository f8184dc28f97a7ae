package main

import (
	"fmt"
	"os"

	"zeroenh/cmd/zeroenh/config"
	"zeroenh/internal/logging"
	"zeroenh/internal/prompt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	profilesDir string

	// Logger
	logger *zap.Logger
	cfg    config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "zeroenh",
	Short: "zeroenh - deterministic prompt enhancement without a model in the loop",
	Long: `zeroenh turns sparse image prompts into fully dressed ones using pure
hash arithmetic instead of an LLM.

Input phrases are classified into vocabulary categories, missing
categories are filled from profile pools, and anti-pairing constraints
keep contradictory combinations out. Every choice derives from the
prompt, the seed, and the intensity alone: the same inputs always
produce the same output, on any machine.

Vocabularies live in profiles. The builtin default covers general image
generation; drop JSON or YAML files into the profiles directory to add
your own, including ones that extend the default.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cfg, err = config.Load(); err != nil {
			logger.Debug("config load failed, using defaults", zap.Error(err))
		}

		if cwd, err := os.Getwd(); err == nil {
			if err := logging.Initialize(cwd); err != nil {
				logger.Warn("file logging unavailable", zap.Error(err))
			}
			if err := logging.InitAudit(); err != nil {
				logger.Warn("audit log unavailable", zap.Error(err))
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAudit()
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// resolveProfilesDir picks the profile directory: flag, then environment,
// then config.
func resolveProfilesDir() string {
	if profilesDir != "" {
		return profilesDir
	}
	if env := os.Getenv("ZEROENH_PROFILES"); env != "" {
		return env
	}
	if cfg.ProfilesDir != "" {
		return cfg.ProfilesDir
	}
	return "profiles"
}

// loadRegistry builds a registry over the resolved profile directory.
func loadRegistry() *prompt.Registry {
	reg := prompt.NewRegistry(resolveProfilesDir())
	if err := reg.Reload(); err != nil {
		logger.Warn("profile reload failed", zap.Error(err))
	}
	return reg
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&profilesDir, "profiles-dir", "", "Directory with profile files (overrides config)")

	enhanceCmd.Flags().Uint32Var(&enhanceSeed, "seed", 0, "Deterministic seed")
	enhanceCmd.Flags().StringVarP(&enhanceIntensity, "intensity", "i", "", "Fill intensity: minimal, light, moderate, full")
	enhanceCmd.Flags().StringVarP(&enhanceProfile, "profile", "p", "", "Profile name (default from config)")
	enhanceCmd.Flags().IntVar(&enhanceMaxWords, "max-words", 0, "Word budget for the enhanced prompt")
	enhanceCmd.Flags().StringVar(&enhancePrefix, "prefix", "", "Text prepended outside the word budget")
	enhanceCmd.Flags().StringVar(&enhanceSuffix, "suffix", "", "Text appended outside the word budget")
	enhanceCmd.Flags().StringVarP(&enhanceFile, "file", "f", "", "Read prompts from a file, one per line (- for stdin)")
	enhanceCmd.Flags().BoolVar(&enhanceJSON, "json", false, "Emit the full run trace as JSON")

	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
