// Package env provides a convenient way to convert environment
// variables into Go data. It is similar in design to package
// flag: variables are registered first, then filled in by Parse.
package env

import (
	"context"
	"os"
	"strconv"
	"time"

	"chain-shielded/errors"
	"chain-shielded/log"
)

var funcs []func() error

// Int returns a new int pointer.
// When Parse is called,
// env var name will be parsed
// and the resulting value
// will be assigned to the returned location.
func Int(name string, value int) *int {
	p := new(int)
	IntVar(p, name, value)
	return p
}

// IntVar defines an int var with the specified
// name and default value. The argument p points
// to an int variable in which to store the
// value of the environment var.
func IntVar(p *int, name string, value int) {
	*p = value
	register(name, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	})
}

// Bool returns a new bool pointer.
// Parsing uses strconv.ParseBool.
func Bool(name string, value bool) *bool {
	p := new(bool)
	BoolVar(p, name, value)
	return p
}

// BoolVar defines a bool var with the specified
// name and default value.
func BoolVar(p *bool, name string, value bool) {
	*p = value
	register(name, func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	})
}

// Duration returns a new time.Duration pointer.
// Parsing uses time.ParseDuration.
func Duration(name string, value time.Duration) *time.Duration {
	p := new(time.Duration)
	DurationVar(p, name, value)
	return p
}

// DurationVar defines a time.Duration var with the specified
// name and default value.
func DurationVar(p *time.Duration, name string, value time.Duration) {
	*p = value
	register(name, func(s string) error {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*p = v
		return nil
	})
}

// String returns a new string pointer.
// When Parse is called,
// env var name will be assigned
// to the returned location.
func String(name string, value string) *string {
	p := new(string)
	StringVar(p, name, value)
	return p
}

// StringVar defines a string with the
// specified name and default value.
func StringVar(p *string, name string, value string) {
	*p = value
	register(name, func(s string) error {
		*p = s
		return nil
	})
}

// register adds a parse step for name.
// Unset or empty variables keep their default.
// A parse failure leaves the default in place.
func register(name string, set func(string) error) {
	funcs = append(funcs, func() error {
		s := os.Getenv(name)
		if s == "" {
			return nil
		}
		return errors.Wrap(set(s), name)
	})
}

// ParseErr parses known env vars
// and assigns the values to the variables
// that were previously registered.
// It returns the first error encountered,
// after attempting every variable.
func ParseErr() error {
	var first error
	for _, f := range funcs {
		if err := f(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Parse is like ParseErr, but if any value cannot be parsed
// it logs the error and exits the process with status 1.
func Parse() {
	if err := ParseErr(); err != nil {
		log.Fatalkv(context.Background(), log.KeyError, err)
	}
}
