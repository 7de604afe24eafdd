package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/TypeTerrors/loadenv"
)

func table(m map[string]string) loadenv.Table {
	t := make(loadenv.Table, len(m))
	for k, v := range m {
		t[k] = loadenv.Coerce(v)
	}
	return t
}

func TestGenerateGoCode_FieldTypesFollowCoercion(t *testing.T) {
	values := table(map[string]string{
		"DB_HOST":  "localhost",
		"DB_PORT":  "5432",
		"RATIO":    "0.75",
		"_VERSION": "1",
	})

	code, err := generateGoCode("config", "Config", values)
	if err != nil {
		t.Fatalf("gofmt failed on generated code: %v\n\n%s", err, code)
	}
	src := string(code)

	for _, want := range []string{
		"type Config struct",
		"DbHost  string  `env:\"DB_HOST\"`",
		"DbPort  int     `env:\"DB_PORT\"`",
		"Ratio   float64 `env:\"RATIO\"`",
		"Version int     `env:\"_VERSION\"`",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected generated code to contain %q\n\n%s", want, src)
		}
	}

	assertGeneratedGoParses(t, src)
}

func TestGenerateGoCode_CollidingNames(t *testing.T) {
	values := table(map[string]string{
		"API_KEY": "a",
		"API-KEY": "b",
		"9LIVES":  "c",
	})

	code, err := generateGoCode("config", "Config", values)
	if err != nil {
		t.Fatalf("gofmt failed on generated code: %v\n\n%s", err, code)
	}
	src := string(code)
	if !strings.Contains(src, "ApiKey2") {
		t.Fatalf("expected second API key field to be renamed\n\n%s", src)
	}
	if !strings.Contains(src, "Field9lives") {
		t.Fatalf("expected digit-leading key to be prefixed\n\n%s", src)
	}
	assertGeneratedGoParses(t, src)
}

func TestRender(t *testing.T) {
	values := table(map[string]string{"A": "123", "B": "hello world"})

	tests := []struct {
		format string
		want   string
	}{
		{"yaml", "A: 123\nB: hello world\n"},
		{"json", "{\n  \"A\": 123,\n  \"B\": \"hello world\"\n}\n"},
		{"dotenv", "A=123\nB=\"hello world\"\n"},
	}
	for _, tt := range tests {
		got, err := render(values, tt.format)
		if err != nil {
			t.Fatalf("render %s: %v", tt.format, err)
		}
		if got != tt.want {
			t.Fatalf("render %s = %q, want %q", tt.format, got, tt.want)
		}
	}

	if _, err := render(values, "toml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func assertGeneratedGoParses(t *testing.T, code string) {
	t.Helper()

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated.go", code, parser.AllErrors); err != nil {
		t.Fatalf("failed to parse generated code: %v\n\n%s", err, code)
	}
}

func TestGenerateGoCode_PaddedNumbersStayStrings(t *testing.T) {
	values := table(map[string]string{
		"PADDED": " 12",
		"PLAIN":  "12",
	})

	code, err := generateGoCode("config", "Config", values)
	if err != nil {
		t.Fatalf("gofmt failed on generated code: %v\n\n%s", err, code)
	}
	src := string(code)
	if !strings.Contains(src, "Padded string `env:\"PADDED\"`") {
		t.Fatalf("expected padded number to generate a string field\n\n%s", src)
	}
	if !strings.Contains(src, "Plain  int    `env:\"PLAIN\"`") {
		t.Fatalf("expected plain number to generate an int field\n\n%s", src)
	}
	assertGeneratedGoParses(t, src)
}
