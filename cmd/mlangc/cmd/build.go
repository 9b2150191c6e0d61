package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	buildOptimization     int
	buildOutput           string
	buildKeepIntermediate bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compiles an mLang source file",
	Long: `Compiles an mLang source file.

The current toolchain runs the compiler front end: the source is
tokenized and parsed into a syntax tree. The code generation stages
hook in behind this command as they land.

Examples:
  mlangc build main.ml
  mlangc build main.ml -O3 -o main`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().IntVarP(&buildOptimization, "optimization-level", "O", 2, "Optimization level (0-3)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file name")
	buildCmd.Flags().BoolVar(&buildKeepIntermediate, "keep-intermediate", false, "Keep intermediate build artifacts")
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Flags win over the config file
	if !cmd.Flags().Changed("optimization-level") {
		buildOptimization = cfg.GetInt("build.optimization", buildOptimization)
	}
	if buildOutput == "" {
		buildOutput = cfg.GetString("build.output", defaultOutputName(path))
	}
	if !cmd.Flags().Changed("keep-intermediate") {
		buildKeepIntermediate = cfg.GetBool("build.keep-intermediate", buildKeepIntermediate)
	}

	engine, err := newEngine(false)
	if err != nil {
		return err
	}

	result, err := engine.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Println(render(headingStyle, "mlangc build"))
	fmt.Printf("  %s %s\n", render(successStyle, "[+]"), path)
	fmt.Printf("      items:        %d\n", result.ItemCount())
	fmt.Printf("      duration:     %v\n", result.Duration)
	fmt.Printf("      target:       %s\n", buildOutput)
	fmt.Printf("      optimization: %d\n", buildOptimization)
	fmt.Println()
	fmt.Println(render(mutedStyle, "Front end finished; code generation is not wired up yet."))

	return nil
}

// defaultOutputName derives the output file name from the source path
func defaultOutputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".bin"
}
