// bind.go
package loadenv

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Bind loads s if needed and fills the struct pointed to by v from its
// environment. Fields are tagged the caarlos0/env way:
//
//	type Config struct {
//	    Port    int      `env:"PORT" envDefault:"8080"`
//	    Secret  string   `env:"SECRET,required"`
//	    Origins []string `env:"ORIGINS" envSeparator:","`
//	}
func Bind(s *Store, v any) error {
	opts, err := bindOptions(s)
	if err != nil {
		return err
	}
	if err := env.ParseWithOptions(v, opts); err != nil {
		return fmt.Errorf("bind environment: %w", err)
	}
	return nil
}

// BindTo is Bind returning a new T.
func BindTo[T any](s *Store) (T, error) {
	var zero T
	opts, err := bindOptions(s)
	if err != nil {
		return zero, err
	}
	cfg, err := env.ParseAsWithOptions[T](opts)
	if err != nil {
		return zero, fmt.Errorf("bind environment: %w", err)
	}
	return cfg, nil
}

func bindOptions(s *Store) (env.Options, error) {
	if err := s.Load(); err != nil {
		return env.Options{}, err
	}
	return env.Options{Environment: s.environ()}, nil
}
