// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package errors provides the wrapped-error type used across this module,
// modeled on magistrala's pkg/errors.
package errors

import (
	"encoding/json"
	"fmt"
)

// Error specifies an API that must be fulfilled by error type.
type Error interface {
	// Error implements the error interface.
	Error() string

	// Msg returns the error message.
	Msg() string

	// Err returns the wrapped error.
	Err() Error
}

var _ Error = (*customError)(nil)

type customError struct {
	msg string
	err Error
}

func (ce *customError) Error() string {
	if ce == nil {
		return ""
	}
	if ce.err != nil {
		return fmt.Sprintf("%s: %s", ce.msg, ce.err.Error())
	}
	return ce.msg
}

func (ce *customError) Msg() string {
	return ce.msg
}

func (ce *customError) Err() Error {
	return ce.err
}

func (ce *customError) MarshalJSON() ([]byte, error) {
	var val string
	if ce.err != nil {
		val = ce.err.Msg()
	}
	return json.Marshal(&struct {
		Err string `json:"error"`
		Msg string `json:"message"`
	}{
		Err: val,
		Msg: ce.msg,
	})
}

// New returns an Error that formats as the given text.
func New(text string) Error {
	return &customError{msg: text, err: nil}
}

// Wrap returns an Error that wraps err with wrapper. If wrapper is nil, nil
// is returned. If err is nil, wrapper is returned unwrapped.
func Wrap(wrapper error, err error) Error {
	if wrapper == nil {
		return nil
	}
	if err == nil {
		return cast(wrapper)
	}
	return &customError{msg: cast(wrapper).Msg(), err: cast(err)}
}

// Contains inspects whether ce, or any error wrapped underneath it, matches
// e in full (e's own Error() string, wrapped chain included) so a wrapper
// sharing only its outermost message with e is not mistaken for containing
// it.
func Contains(ce error, e error) bool {
	if ce == nil || e == nil {
		return ce == e
	}
	cerr := cast(ce)
	if cerr.Msg() == e.Error() {
		return true
	}
	if cerr.Err() == nil {
		return false
	}
	return Contains(cerr.Err(), e)
}

// Unwrap splits the outermost wrapped error from the remainder of the
// chain, mirroring magistrala's sdk Unwrap helper.
func Unwrap(err error) (error, error) {
	ce := cast(err)
	if ce.Err() == nil {
		return nil, ce
	}
	return ce.Err(), New(ce.Msg())
}

func cast(err error) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return &customError{msg: err.Error(), err: nil}
}
