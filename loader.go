// Package loadenv loads .env files from an application's configs/
// directory into the process environment.
//
// Files are read from <root>/configs/. An overlay named after the APP_ENV
// environment variable and an optional project sub-directory are layered
// on top of the base file. The first file to set a key wins, and keys
// already in the environment are never overwritten:
//
//	configs/<project>/.env.<APP_ENV>
//	configs/<project>/.env
//	configs/.env.<APP_ENV>
//	configs/.env
//
// Only the first Load in a process takes effect. Restore puts the
// environment back the way it was before that load and allows loading
// again.
//
// Basic usage:
//
//	func main() {
//	    if err := loadenv.Load(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    port, _ := loadenv.Values().Int("PORT")
//	    fmt.Println("listening on", port)
//	}
//
// Typed configuration:
//
//	type Config struct {
//	    Port     int    `env:"PORT" envDefault:"8080"`
//	    Database string `env:"DATABASE_URL,required"`
//	}
//
//	cfg, err := loadenv.BindTo[Config](loadenv.Default())
package loadenv

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// EnvNameVar holds the environment name that selects .env.<ENV> overlays.
const EnvNameVar = "APP_ENV"

// RootDirKey is set to the application root after every load.
const RootDirKey = "ROOT_DIR"

// State is the load state of a Store.
type State int

const (
	Unloaded State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "unloaded"
}

// Store loads .env files into an Environ at most once until restored.
type Store struct {
	mu sync.Mutex

	env        Environ
	root       string
	envName    string
	envNameSet bool
	logger     *slog.Logger
	metadata   MetadataSource

	state    State
	snapshot map[string]string
	values   Table
	loaded   []string
}

// New returns a Store in the Unloaded state. Unless WithEnvironment is
// given, the environment name is the value of APP_ENV at this call.
func New(opts ...StoreOption) *Store {
	s := &Store{
		env:      OSEnv{},
		metadata: GitMetadata{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.envNameSet {
		s.envName, _ = s.env.LookupEnv(EnvNameVar)
	}
	return s
}

// State reports whether the store has loaded.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// EnvName returns the environment name used for overlays.
func (s *Store) EnvName() string {
	return s.envName
}

// Values returns the coerced environment captured by the last load, or nil
// when the store is Unloaded.
func (s *Store) Values() Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values
}

// LoadedKeys returns the sorted keys the last load took from config files.
func (s *Store) LoadedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.loaded...)
}

// Root returns the resolved application root.
func (s *Store) Root() (string, error) {
	return resolveRoot(s.root, s.env.LookupEnv)
}

// LoadNamed is Load with only a debug channel name.
func (s *Store) LoadNamed(debugName string) error {
	return s.Load(WithDebugName(debugName))
}

// Load merges the config files into the environment. It does nothing if
// the store is already Loaded.
//
// An unusable project returns ErrInvalidArgument before anything is read.
// A file that exists but cannot be parsed returns ErrParse; the
// environment is rolled back and the store stays Unloaded. Files that
// are missing or cannot be read are skipped.
func (s *Store) Load(opts ...Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Loaded {
		return nil
	}

	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := debugLogger(s.logger, o.DebugName)

	root, paths, err := s.resolve(o)
	if err != nil {
		return err
	}

	snapshot := s.env.Snapshot()

	var loaded []string
	for _, path := range paths {
		keys, err := loadDotenv(s.env, path)
		if err != nil {
			if errors.Is(err, errNotLoadable) {
				log.Debug("could not load environment", slog.String("path", path), slog.String("error", err.Error()))
				continue
			}
			s.rollback(log, snapshot)
			return fmt.Errorf("load dotenv %s: %w", path, err)
		}
		log.Debug("loaded environment", slog.String("path", path), slog.Int("keys", len(keys)))
		loaded = append(loaded, keys...)
	}

	if s.metadata != nil {
		meta, err := s.metadata.Metadata(root)
		if err != nil {
			log.Debug("could not load git information", slog.String("error", err.Error()))
		}
		for k, v := range meta {
			if err := s.env.Setenv(k, v); err != nil {
				log.Debug("could not record metadata", slog.String("key", k), slog.String("error", err.Error()))
			}
		}
	}

	if err := s.env.Setenv(RootDirKey, root); err != nil {
		s.rollback(log, snapshot)
		return fmt.Errorf("set %s: %w", RootDirKey, err)
	}

	sort.Strings(loaded)
	s.values = coerceAll(s.env.Snapshot())
	s.loaded = loaded
	s.snapshot = snapshot
	s.state = Loaded

	log.Debug("environment", slog.Any("env", s.values))
	return nil
}

func (s *Store) rollback(log *slog.Logger, snapshot map[string]string) {
	if err := s.env.Replace(snapshot); err != nil {
		log.Debug("rollback failed", slog.String("error", err.Error()))
	}
}

// environ returns a copy of the store's environment.
func (s *Store) environ() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env.Snapshot()
}

// Resolve returns the files Load would try for opts, highest priority
// first.
func (s *Store) Resolve(opts ...Option) ([]string, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(&o)
	}
	_, paths, err := s.resolve(o)
	return paths, err
}

func (s *Store) resolve(o LoadOptions) (string, []string, error) {
	project, err := normalizeProject(o.Project)
	if err != nil {
		return "", nil, err
	}
	root, err := resolveRoot(s.root, s.env.LookupEnv)
	if err != nil {
		return "", nil, err
	}
	dir := filepath.Join(root, ConfigDir)

	overlay := !o.IgnoreEnv && s.envName != ""
	var names []string
	if project != "" {
		if overlay {
			names = append(names, filepath.Join(project, ".env."+s.envName))
		}
		names = append(names, filepath.Join(project, ".env"))
	}
	if overlay {
		names = append(names, ".env."+s.envName)
	}
	names = append(names, ".env")

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return root, paths, nil
}

func normalizeProject(project string) (string, error) {
	project = strings.TrimRight(project, "/")
	if project == "" {
		return "", nil
	}
	if !filepath.IsLocal(project) {
		return "", fmt.Errorf("%w: project %q must be a relative path inside %s", ErrInvalidArgument, project, ConfigDir)
	}
	return filepath.Clean(project), nil
}

// Restore puts the environment back to its state before the first
// successful Load and returns the store to Unloaded. It does nothing if
// the store is Unloaded.
func (s *Store) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Unloaded {
		return nil
	}
	if err := s.env.Replace(s.snapshot); err != nil {
		return fmt.Errorf("restore environment: %w", err)
	}
	s.snapshot = nil
	s.values = nil
	s.loaded = nil
	s.state = Unloaded
	return nil
}

// Reset returns the store to Unloaded without touching the environment.
// The next Load snapshots the environment as it is then.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.values = nil
	s.loaded = nil
	s.state = Unloaded
}

var defaultStore = New()

// Default returns the process-wide Store backed by the process environment.
// Its environment name is APP_ENV as seen at program start.
func Default() *Store { return defaultStore }

// Load calls Load on the default store.
func Load(opts ...Option) error { return defaultStore.Load(opts...) }

// LoadNamed calls LoadNamed on the default store.
func LoadNamed(debugName string) error { return defaultStore.LoadNamed(debugName) }

// Restore calls Restore on the default store.
func Restore() error { return defaultStore.Restore() }

// Values calls Values on the default store.
func Values() Table { return defaultStore.Values() }
