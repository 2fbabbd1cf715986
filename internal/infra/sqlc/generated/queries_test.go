//go:build unit

package sqlc_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var (
	namedArg      = regexp.MustCompile(`sqlc\.n?arg\((\w+)\)`)
	expandedCols  = regexp.MustCompile(`SELECT [a-z_]+(?:, [a-z_]+)+ FROM`)
	expandedRetng = regexp.MustCompile(`RETURNING [a-z_]+(?:, [a-z_]+)+\n`)
)

// TestGeneratedQueriesMatchSources fails when a query file was edited
// without running sqlc generate.
func TestGeneratedQueriesMatchSources(t *testing.T) {
	want := sourceQueries(t, "../queries")
	got := generatedQueries(t, ".")

	require.NotEmpty(t, want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated queries out of date (-source +generated):\n%s", diff)
	}
}

func sourceQueries(t *testing.T, dir string) map[string]string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	require.NoError(t, err)

	out := make(map[string]string)
	for _, file := range files {
		raw, err := os.ReadFile(file)
		require.NoError(t, err)

		blocks := strings.Split(string(raw), "-- name: ")
		for _, block := range blocks[1:] {
			header, body, _ := strings.Cut(block, "\n")
			body = strings.TrimSuffix(strings.TrimSpace(body), ";")
			name := strings.Fields(header)[0]
			out[name] = "-- name: " + strings.TrimSpace(header) + "\n" + numberArgs(body) + "\n"
		}
	}
	return out
}

// numberArgs mirrors sqlc: named args become positional in order of first use.
func numberArgs(body string) string {
	positions := make(map[string]int)
	return namedArg.ReplaceAllStringFunc(body, func(m string) string {
		name := namedArg.FindStringSubmatch(m)[1]
		if _, ok := positions[name]; !ok {
			positions[name] = len(positions) + 1
		}
		return fmt.Sprintf("$%d", positions[name])
	})
}

func generatedQueries(t *testing.T, dir string) map[string]string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "*.sql.go"))
	require.NoError(t, err)

	out := make(map[string]string)
	fset := token.NewFileSet()
	for _, file := range files {
		f, err := parser.ParseFile(fset, file, nil, 0)
		require.NoError(t, err)

		ast.Inspect(f, func(n ast.Node) bool {
			lit, ok := n.(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING || !strings.HasPrefix(lit.Value, "`-- name: ") {
				return true
			}
			text, err := strconv.Unquote(lit.Value)
			require.NoError(t, err)

			text = expandedCols.ReplaceAllString(text, "SELECT * FROM")
			text = expandedRetng.ReplaceAllString(text, "RETURNING *\n")
			name := strings.Fields(strings.TrimPrefix(text, "-- name: "))[0]
			out[name] = text
			return true
		})
	}
	return out
}
