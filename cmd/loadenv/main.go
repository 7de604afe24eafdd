package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TypeTerrors/loadenv"
	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
)

// main is the entry point for the loadenv CLI. It supports both an
// interactive mode powered by the Charmbracelet huh library as well as
// traditional subcommands. If no subcommand is provided, an interactive
// menu will be shown by default.
func main() {
	if len(os.Args) <= 1 {
		runInteractive()
		return
	}
	sub := os.Args[1]
	switch sub {
	case "print":
		runPrint(os.Args[2:])
	case "paths":
		runPaths(os.Args[2:])
	case "gen-go":
		runGenGo(os.Args[2:])
	case "interactive", "menu":
		runInteractive()
	default:
		// Unknown subcommand. Assume interactive to avoid memorizing flags.
		runInteractive()
	}
}

// runInteractive presents a menu using the huh library to collect user
// input and delegates to the matching subcommand with synthesized
// arguments. Without a TTY it falls back to print with defaults.
func runInteractive() {
	if !isTerminal() {
		runPrint([]string{})
		return
	}

	var action string
	sel := huh.NewSelect[string]().
		Title("What would you like to do?").
		Options(
			huh.NewOption("Print loaded environment", "print"),
			huh.NewOption("List config files in load order", "paths"),
			huh.NewOption("Generate Go config struct", "gen-go"),
		).
		Value(&action)
	if err := sel.Run(); err != nil {
		log.Fatalf("menu error: %v", err)
	}

	var root string
	rootInput := huh.NewInput().
		Title("Application root (optional, blank to detect)").
		Value(&root)
	if err := rootInput.Run(); err != nil {
		log.Fatalf("failed to read root: %v", err)
	}

	var project string
	projectInput := huh.NewInput().
		Title("Project under configs/ (optional)").
		Value(&project)
	if err := projectInput.Run(); err != nil {
		log.Fatalf("failed to read project: %v", err)
	}

	var envName string = os.Getenv(loadenv.EnvNameVar)
	envInput := huh.NewInput().
		Title("Environment name for .env.<ENV> (optional)").
		Value(&envName)
	if err := envInput.Run(); err != nil {
		log.Fatalf("failed to read environment name: %v", err)
	}

	args := storeArgs(root, project, envName)

	switch action {
	case "print":
		var format string = "yaml"
		formatSel := huh.NewSelect[string]().
			Title("Output format").
			Options(
				huh.NewOption("YAML", "yaml"),
				huh.NewOption("JSON", "json"),
				huh.NewOption("dotenv", "dotenv"),
			).
			Value(&format)
		if err := formatSel.Run(); err != nil {
			log.Fatalf("failed to choose format: %v", err)
		}
		var all bool
		allConfirm := huh.NewConfirm().
			Title("Include the whole environment?").
			Value(&all)
		if err := allConfirm.Run(); err != nil {
			log.Fatalf("failed to choose scope: %v", err)
		}
		args = append(args, "-format", format)
		if all {
			args = append(args, "-all")
		}
		runPrint(args)
	case "paths":
		runPaths(args)
	case "gen-go":
		var pkgName string = "config"
		pkgInput := huh.NewInput().
			Title("Go package name for generated code").
			Value(&pkgName)
		if err := pkgInput.Run(); err != nil {
			log.Fatalf("failed to read package name: %v", err)
		}
		var typeName string = "Config"
		typeInput := huh.NewInput().
			Title("Name of Go struct").
			Value(&typeName)
		if err := typeInput.Run(); err != nil {
			log.Fatalf("failed to read struct name: %v", err)
		}
		var outPath string
		outInput := huh.NewInput().
			Title("Output file path (optional, leave blank to print)").
			Value(&outPath)
		if err := outInput.Run(); err != nil {
			log.Fatalf("failed to read output path: %v", err)
		}
		args = append(args, "-pkg", pkgName, "-type", typeName)
		if outPath != "" {
			args = append(args, "-o", outPath)
		}
		runGenGo(args)
	}
}

func storeArgs(root, project, envName string) []string {
	var args []string
	if root != "" {
		args = append(args, "-root", root)
	}
	if project != "" {
		args = append(args, "-project", project)
	}
	args = append(args, "-env", envName)
	return args
}

// isTerminal reports whether we are attached to something that can run
// the interactive menu. It approximates by checking TERM.
func isTerminal() bool {
	if term := os.Getenv("TERM"); term == "" || term == "dumb" {
		return false
	}
	return true
}

// storeFlags are the flags shared by every subcommand that loads.
type storeFlags struct {
	root      string
	project   string
	envName   string
	ignoreEnv bool
	debugName string
	noGit     bool
}

func (f *storeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.root, "root", "", "Application root (default: APP_ROOT_PATH or nearest go.mod)")
	fs.StringVar(&f.project, "project", "", "Project sub-directory of configs/")
	fs.StringVar(&f.envName, "env", os.Getenv(loadenv.EnvNameVar), "Environment name for .env.<ENV> overlays")
	fs.BoolVar(&f.ignoreEnv, "ignore-env", false, "Skip .env.<ENV> overlays")
	fs.StringVar(&f.debugName, "debug", loadenv.DefaultDebugName, "Debug channel name (enable with DEBUG=<name>)")
	fs.BoolVar(&f.noGit, "no-git", false, "Do not record git commit and branch")
}

func (f *storeFlags) store() *loadenv.Store {
	opts := []loadenv.StoreOption{loadenv.WithEnvironment(f.envName)}
	if f.root != "" {
		opts = append(opts, loadenv.WithRoot(f.root))
	}
	if f.noGit {
		opts = append(opts, loadenv.WithoutMetadata())
	}
	return loadenv.New(opts...)
}

func (f *storeFlags) loadOptions() []loadenv.Option {
	opts := []loadenv.Option{
		loadenv.WithProject(f.project),
		loadenv.WithDebugName(f.debugName),
	}
	if f.ignoreEnv {
		opts = append(opts, loadenv.WithIgnoreEnv())
	}
	return opts
}

// runPrint implements the "print" subcommand. It loads the config files
// into the process environment and prints the result.
func runPrint(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	var (
		sf     storeFlags
		format string
		all    bool
	)
	sf.register(fs)
	fs.StringVar(&format, "format", "yaml", "Output format: yaml, json or dotenv")
	fs.BoolVar(&all, "all", false, "Print the whole environment, not only keys from config files")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	s := sf.store()
	if err := s.Load(sf.loadOptions()...); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}
	values := s.Values()
	if !all {
		values = values.Subset(s.LoadedKeys())
	}

	out, err := render(values, format)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Print(out)
}

// render formats values as yaml, json or dotenv text.
func render(values loadenv.Table, format string) (string, error) {
	switch format {
	case "yaml", "yml":
		out, err := yaml.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal environment to YAML: %w", err)
		}
		return string(out), nil
	case "json":
		out, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal environment to JSON: %w", err)
		}
		return string(out) + "\n", nil
	case "dotenv", "env":
		raw := make(map[string]string, len(values))
		for k, v := range values {
			raw[k] = v.Str
		}
		out, err := godotenv.Marshal(raw)
		if err != nil {
			return "", fmt.Errorf("failed to marshal environment to dotenv: %w", err)
		}
		return out + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q (expected yaml, json or dotenv)", format)
	}
}

// runPaths implements the "paths" subcommand. It lists the files a load
// would try, highest priority first, without loading them.
func runPaths(args []string) {
	fs := flag.NewFlagSet("paths", flag.ExitOnError)
	var sf storeFlags
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}
	s := sf.store()
	root, err := s.Root()
	if err != nil {
		log.Fatalf("failed to resolve application root: %v", err)
	}
	paths, err := s.Resolve(sf.loadOptions()...)
	if err != nil {
		log.Fatalf("failed to resolve config files: %v", err)
	}
	fmt.Printf("%-7s %s\n", "root", root)
	for _, p := range paths {
		mark := "missing"
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			mark = "found"
		}
		fmt.Printf("%-7s %s\n", mark, p)
	}
}

// runGenGo implements the "gen-go" subcommand. It loads the config files
// and emits a Go struct with env tags for every key they set.
func runGenGo(args []string) {
	fs := flag.NewFlagSet("gen-go", flag.ExitOnError)
	var (
		sf       storeFlags
		pkgName  string
		typeName string
		outPath  string
	)
	sf.register(fs)
	fs.StringVar(&pkgName, "pkg", "config", "Go package name for generated code")
	fs.StringVar(&typeName, "type", "Config", "Name of the generated struct type")
	fs.StringVar(&outPath, "o", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("failed to parse flags: %v", err)
	}

	// The generated struct describes the files, not this process.
	sf.noGit = true
	s := sf.store()
	if err := s.Load(sf.loadOptions()...); err != nil {
		log.Fatalf("failed to load environment: %v", err)
	}
	values := s.Values().Subset(s.LoadedKeys())

	formatted, err := generateGoCode(pkgName, typeName, values)
	if err != nil {
		log.Printf("warning: gofmt failed: %v (printing unformatted code)", err)
	}
	if outPath == "" {
		fmt.Print(string(formatted))
		return
	}
	if err := os.WriteFile(outPath, formatted, 0o644); err != nil {
		log.Fatalf("failed to write output file %s: %v", outPath, err)
	}
	log.Printf("generated Go config struct at %s", outPath)
}
