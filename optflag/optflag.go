// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package optflag registers pflag flags whose unset state is observable as
// an empty Optional rather than a default value.
package optflag

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"gopkg.microglot.org/optional.go"
)

// ErrNilParse is returned by Set when the Value was constructed without a
// parse function.
var ErrNilParse = errors.New("optflag: nil parse function")

// Value adapts an Optional-backed target to the pflag.Value interface. A
// flag that is never set leaves the target empty; setting the flag parses
// the argument and stores the result as a present value.
type Value[T any] struct {
	target   *optional.Optional[T]
	parse    func(string) (T, error)
	typeName string
}

var _ pflag.Value = &Value[string]{}

// New builds a Value that parses flag arguments with parse and stores them
// in target. A nil target is replaced with an internal one, reachable
// through Optional.
func New[T any](target *optional.Optional[T], parse func(string) (T, error), typeName string) *Value[T] {
	if target == nil {
		target = new(optional.Optional[T])
	}
	return &Value[T]{
		target:   target,
		parse:    parse,
		typeName: typeName,
	}
}

func (v *Value[T]) String() string {
	if v.target == nil {
		return ""
	}
	return optional.Handle(*v.target, func(val T) string {
		return fmt.Sprintf("%v", val)
	}, func() string {
		return ""
	})
}

func (v *Value[T]) Set(s string) error {
	if v.parse == nil {
		return ErrNilParse
	}
	parsed, err := v.parse(s)
	if err != nil {
		return err
	}
	if v.target == nil {
		v.target = new(optional.Optional[T])
	}
	*v.target = optional.Some(parsed)
	return nil
}

func (v *Value[T]) Type() string {
	return v.typeName
}

// Optional returns the backing target.
func (v *Value[T]) Optional() *optional.Optional[T] {
	return v.target
}

// String registers a string flag on fs. The returned Optional stays empty
// until the flag is set on the command line.
func String(fs *pflag.FlagSet, name string, usage string) *optional.Optional[string] {
	target := new(optional.Optional[string])
	fs.Var(New(target, func(s string) (string, error) {
		return s, nil
	}, "string"), name, usage)
	return target
}

// Int registers an int flag on fs. The returned Optional stays empty until
// the flag is set on the command line.
func Int(fs *pflag.FlagSet, name string, usage string) *optional.Optional[int] {
	target := new(optional.Optional[int])
	fs.Var(New(target, strconv.Atoi, "int"), name, usage)
	return target
}

// Bool registers a bool flag on fs. Passing the flag with no argument sets
// the target to a present true, matching pflag bool behavior.
func Bool(fs *pflag.FlagSet, name string, usage string) *optional.Optional[bool] {
	target := new(optional.Optional[bool])
	flag := fs.VarPF(New(target, strconv.ParseBool, "bool"), name, "", usage)
	flag.NoOptDefVal = "true"
	return target
}

// Duration registers a time.Duration flag on fs. The returned Optional stays
// empty until the flag is set on the command line.
func Duration(fs *pflag.FlagSet, name string, usage string) *optional.Optional[time.Duration] {
	target := new(optional.Optional[time.Duration])
	fs.Var(New(target, time.ParseDuration, "duration"), name, usage)
	return target
}
