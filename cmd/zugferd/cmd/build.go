package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rezonia/zugferd/internal/output"
	"github.com/rezonia/zugferd/pkg/zugferd"
)

var (
	outputFile string
	timeout    time.Duration
)

var buildCmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Build documents from YAML descriptions",
	Long: `Build one document per YAML description and print it.

The profile comes from --profile, ZUGFERD_PROFILE or the description's own
profile key, in that order. Values the profile does not define are dropped
and listed on stderr; with --strict the build fails instead.

Directories are searched for .yaml and .yml files.

Examples:
  zugferd build invoice.yaml
  zugferd build invoice.yaml --profile basic --strict
  zugferd build descriptions/ -f yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("profile", "p", "", "Profile to build with (env: ZUGFERD_PROFILE)")
	buildCmd.Flags().Bool("strict", false, "Fail on values the profile does not support (env: ZUGFERD_STRICT)")
	buildCmd.Flags().StringP("format", "f", "json", fmt.Sprintf("Output format %v (env: ZUGFERD_FORMAT)", output.Formats()))
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	buildCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Build timeout per description")

	for _, name := range []string{"profile", "strict", "format"} {
		_ = viper.BindPFlag(name, buildCmd.Flags().Lookup(name))
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no descriptions found")
	}
	if outputFile != "" && len(files) > 1 {
		return fmt.Errorf("--output needs a single description, got %d", len(files))
	}

	gen, err := zugferd.NewGenerator(zugferd.GeneratorOptions{
		Profile: viper.GetString("profile"),
		Strict:  viper.GetBool("strict"),
		Format:  viper.GetString("format"),
		Logger:  slog.Default(),
	})
	if err != nil {
		return err
	}

	var writer = cmd.OutOrStdout()
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	for _, file := range files {
		slog.Debug("building document", "file", file)
		if err := buildFile(cmd.Context(), gen, file, writer, cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func buildFile(ctx context.Context, gen *zugferd.Generator, file string, out, diag io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := gen.GenerateFile(ctx, file)
	if err != nil {
		return err
	}
	if _, err := out.Write(result.Document); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if !strings.HasSuffix(string(result.Document), "\n") {
		fmt.Fprintln(out)
	}
	return output.WriteSkips(diag, result.Skipped)
}

// collectFiles expands globs and walks directories for descriptions.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", match)
			}
			if !info.IsDir() {
				files = append(files, match)
				continue
			}

			err = filepath.WalkDir(match, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isDescription(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	return files, nil
}

func isDescription(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
