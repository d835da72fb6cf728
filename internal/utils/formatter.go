package utils

import (
	"fmt"
	"go/parser"
	"go/token"

	"golang.org/x/tools/imports"
)

// FormatGoSource formats Go source and sorts its import block the way
// goimports does. filename is used for error positions only.
func FormatGoSource(filename string, source []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, source, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		// Report a syntax error in preference to the formatter's message
		fset := token.NewFileSet()
		if _, parseErr := parser.ParseFile(fset, filename, source, parser.ParseComments); parseErr != nil {
			return nil, fmt.Errorf("invalid Go syntax: %w", parseErr)
		}
		return nil, err
	}
	return formatted, nil
}
