package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mLang/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dumps the token stream of a source file",
	Long: `Dumps the token stream of an mLang source file.

Each line shows the source position and the token as the parser sees
it. On a lexical error the tokens up to the failure are printed before
the error is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	engine, err := newEngine(true)
	if err != nil {
		return err
	}

	result, tokErr := engine.Tokenize(path, string(content))

	fmt.Println(render(headingStyle, "Tokens: ") + path)
	fmt.Println()

	if result != nil {
		for _, tok := range result.Tokens {
			position := fmt.Sprintf("%4d:%-4d", tok.Line, tok.Column)
			fmt.Printf("  %s  %s\n", render(positionStyle, position), render(tokenTypeStyle, tok.String()))
		}
		fmt.Println()
		fmt.Printf("  %d token(s)\n", countLexical(result.Tokens))
	}

	return tokErr
}

// countLexical counts the tokens the lexer produced from source text,
// leaving out the synthetic end-of-input token
func countLexical(tokens []parser.Token) int {
	n := len(tokens)
	if n > 0 && tokens[n-1].Type == parser.TokenEOF {
		n--
	}
	return n
}
