package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	mlang "github.com/msto63/mLang"
	"github.com/msto63/mLang/config"
	"github.com/msto63/mLang/parser"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "mlangc",
	Short: "mLang compiler",
	Long: `mlangc is the command line front end of the mLang compiler.

Commands:
  build    - Compile an mLang source file
  tokens   - Dump the token stream of a source file
  ast      - Dump the syntax tree of a source file
  version  - Show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRun,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError("mlangc", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./mlangc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// initRun loads the configuration and applies the logging settings
// before any subcommand runs
func initRun(cmd *cobra.Command, args []string) error {
	var err error

	switch {
	case cfgFile != "":
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	case fileExists("mlangc.toml"):
		cfg, err = config.Load("mlangc.toml")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	default:
		// No config file; environment variables still apply
		cfg, err = config.LoadFromString("", config.FormatTOML)
		if err != nil {
			return err
		}
	}

	log.SetLevel(logrus.WarnLevel)
	if level := cfg.GetString("log.level"); level != "" {
		if parsed, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(parsed)
		}
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if cfg.GetString("log.format") == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if cfg.Has("output.color") && !cfg.GetBool("output.color", true) {
		noColor = true
	}

	return nil
}

// newEngine creates an mLang engine wired to the CLI logger
func newEngine(collectTokens bool) (*mlang.Engine, error) {
	return mlang.NewEngine(mlang.Options{
		Logger:        log,
		CollectTokens: collectTokens,
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func printError(msg string, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Token.Line > 0 {
		position := fmt.Sprintf("line %d, column %d", syntaxErr.Token.Line, syntaxErr.Token.Column)
		fmt.Fprintf(os.Stderr, "%s %v (%s)\n", render(errorStyle, "Error:"), err, render(positionStyle, position))
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", render(errorStyle, "Error:"), msg, err)
}
