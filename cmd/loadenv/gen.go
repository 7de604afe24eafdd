package main

import (
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/TypeTerrors/loadenv"
)

// generateGoCode builds a gofmt'd Go struct with one env-tagged field per
// key in values. Field types follow loadenv.Coerce. If gofmt fails the
// unformatted source is returned with the error.
func generateGoCode(pkgName, typeName string, values loadenv.Table) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by loadenv gen-go; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)

	fmt.Fprintf(&b, "type %s struct {\n", typeName)
	used := make(map[string]bool)
	for _, key := range values.Keys() {
		fieldName := uniqueName(toExportedName(key), used)
		fmt.Fprintf(&b, "    %s %s `env:\"%s\"`\n", fieldName, goType(values[key]), key)
	}
	b.WriteString("}\n")

	code := b.String()
	formatted, err := format.Source([]byte(code))
	if err != nil {
		return []byte(code), err
	}
	return formatted, nil
}

// goType picks the field type for v. Numbers with surrounding whitespace
// stay strings since the env parser does not trim them.
func goType(v loadenv.Value) string {
	if v.Str != strings.TrimSpace(v.Str) {
		return "string"
	}
	switch v.Kind {
	case loadenv.KindInt:
		return "int"
	case loadenv.KindFloat:
		return "float64"
	default:
		return "string"
	}
}

func uniqueName(name string, used map[string]bool) string {
	if used[name] {
		i := 2
		for used[name+strconv.Itoa(i)] {
			i++
		}
		name += strconv.Itoa(i)
	}
	used[name] = true
	return name
}

// toExportedName converts an environment key like "DB_HOST" or
// "http-client" into an exported Go field name like "DbHost" or
// "HttpClient". It splits on underscores, hyphens, spaces and dots.
func toExportedName(key string) string {
	splitFn := func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	}
	parts := strings.FieldsFunc(key, splitFn)
	if len(parts) == 0 {
		return "Field"
	}
	for i, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		if r == utf8.RuneError {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + strings.ToLower(p[size:])
	}
	name := strings.Join(parts, "")
	// Identifiers cannot start with a digit.
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsDigit(r) {
		name = "Field" + name
	}
	return name
}
