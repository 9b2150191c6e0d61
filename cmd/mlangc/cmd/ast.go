package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mLang/ast"
)

var astCheck bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Dumps the syntax tree of a source file",
	Long: `Parses an mLang source file and dumps its syntax tree.

With --check the tree is additionally run through the structural
validator and any findings are reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().BoolVar(&astCheck, "check", false, "Validate the syntax tree after parsing")
}

func runAST(cmd *cobra.Command, args []string) error {
	path := args[0]

	engine, err := newEngine(false)
	if err != nil {
		return err
	}

	result, err := engine.ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Println(render(headingStyle, "AST: ") + path)
	fmt.Println()
	fmt.Print(ast.ASTToString(result.Program))

	if astCheck {
		fmt.Println()
		findings := ast.ValidateAST(result.Program)
		if len(findings) == 0 {
			fmt.Printf("  %s tree is structurally valid\n", render(successStyle, "[+]"))
			return nil
		}
		for _, finding := range findings {
			fmt.Printf("  %s %v\n", render(errorStyle, "[-]"), finding)
		}
		return fmt.Errorf("%d validation finding(s)", len(findings))
	}

	return nil
}
