// options.go
package loadenv

import "log/slog"

// DefaultDebugName is the debug channel used when none is given.
const DefaultDebugName = "loadenv"

// LoadOptions controls a single call to Load.
type LoadOptions struct {
	// DebugName names the debug channel the load reports through.
	DebugName string
	// IgnoreEnv skips the environment-specific .env.<ENV> overlays.
	IgnoreEnv bool
	// Project is an optional sub-directory of configs/ holding its own
	// .env files. Trailing slashes are ignored.
	Project string
}

// Option configures a call to Load.
//
// Example:
//
//	err := loadenv.Load(
//	    loadenv.WithProject("billing"),
//	    loadenv.WithIgnoreEnv(),
//	)
type Option func(*LoadOptions)

func defaultLoadOptions() LoadOptions {
	return LoadOptions{
		DebugName: DefaultDebugName,
	}
}

// WithDebugName sets the debug channel name.
//
// The default is "loadenv". Output is shown when the DEBUG environment
// variable enables the name, for example DEBUG=loadenv or DEBUG=*.
func WithDebugName(name string) Option {
	return func(o *LoadOptions) {
		if name != "" {
			o.DebugName = name
		}
	}
}

// WithIgnoreEnv skips configs/.env.<ENV> and configs/<project>/.env.<ENV>.
func WithIgnoreEnv() Option {
	return func(o *LoadOptions) {
		o.IgnoreEnv = true
	}
}

// WithProject loads configs/<project>/.env (and its overlay) ahead of the
// root files, so project keys take priority.
//
// Example:
//
//	// configs/billing/.env:  DB_NAME=billing
//	// configs/.env:          DB_NAME=app
//	err := loadenv.Load(loadenv.WithProject("billing"))
//	// DB_NAME == "billing"
func WithProject(project string) Option {
	return func(o *LoadOptions) {
		o.Project = project
	}
}

// WithOptions copies every field of opts. It is the struct form of the
// other options.
func WithOptions(opts LoadOptions) Option {
	return func(o *LoadOptions) {
		*o = opts
		if o.DebugName == "" {
			o.DebugName = DefaultDebugName
		}
	}
}

// StoreOption configures a Store at construction.
type StoreOption func(*Store)

// WithEnviron makes the store read and write env instead of the process
// environment.
func WithEnviron(env Environ) StoreOption {
	return func(s *Store) {
		if env != nil {
			s.env = env
		}
	}
}

// WithRoot sets the application root. configs/ is resolved under it.
//
// Without it the root is APP_ROOT_PATH, else the nearest directory at or
// above the working directory that holds a go.mod, else the working
// directory.
func WithRoot(dir string) StoreOption {
	return func(s *Store) {
		s.root = dir
	}
}

// WithEnvironment sets the environment name used for .env.<ENV> overlays,
// instead of the value of APP_ENV at construction.
func WithEnvironment(name string) StoreOption {
	return func(s *Store) {
		s.envName = name
		s.envNameSet = true
	}
}

// WithLogger sends debug output to l instead of the DEBUG-controlled
// stderr logger.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

// WithMetadata replaces the source of version-control metadata.
func WithMetadata(m MetadataSource) StoreOption {
	return func(s *Store) {
		s.metadata = m
	}
}

// WithoutMetadata disables recording of version-control metadata.
func WithoutMetadata() StoreOption {
	return func(s *Store) {
		s.metadata = nil
	}
}
