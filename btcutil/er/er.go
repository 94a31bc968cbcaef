// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package er provides the error values used throughout hposd.  Errors carry
// an optional ErrorCode so callers can match on what went wrong without
// comparing message strings, and an optional stack trace which is captured
// only when ENABLE_STACKTRACE is set in the environment.
package er

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
)

var stacktraceDisabled = []string{"No stack, ENABLE_STACKTRACE not set"}

type err struct {
	e      error
	code   *ErrorCode
	bstack []byte
	stack  []string
}

// R is the error type returned by hposd functions.  A nil R means success.
type R interface {
	Message() string
	Stack() []string
	String() string
	Wrapped0() error
	Code() *ErrorCode
	Native() error
}

func (e err) Stack() []string {
	if e.stack == nil {
		if e.bstack != nil {
			e.stack = strings.Split(string(e.bstack), "\n")
		} else {
			e.stack = stacktraceDisabled
		}
	}
	return e.stack
}

func (e err) Message() string {
	return e.e.Error()
}

func (e err) String() string {
	if e.bstack != nil {
		return fmt.Sprintf("%s\n%s", e.e.Error(), strings.Join(e.Stack(), "\n"))
	}
	return e.e.Error()
}

func (e err) Wrapped0() error {
	return e.e
}

func (e err) Code() *ErrorCode {
	return e.code
}

func (e err) Native() error {
	return errors.New(e.String())
}

func captureStack() []byte {
	if os.Getenv("ENABLE_STACKTRACE") == "" {
		return nil
	}
	return debug.Stack()
}

// Wrapped returns the underlying Go error, or nil.
func Wrapped(err R) error {
	if err == nil {
		return nil
	}
	return err.Wrapped0()
}

func New(s string) R {
	return err{
		e:      errors.New(s),
		bstack: captureStack(),
	}
}

func Errorf(format string, a ...interface{}) R {
	return err{
		e:      fmt.Errorf(format, a...),
		bstack: captureStack(),
	}
}

// E converts a native Go error into an R, nil stays nil.
func E(e error) R {
	if e == nil {
		return nil
	}
	return err{
		e:      e,
		bstack: captureStack(),
	}
}

// ErrorType groups related error codes, typically one per package.
type ErrorType struct {
	Name  string
	codes []*ErrorCode
}

// NewErrorType creates a new error type, the name should be the package
// qualified name of the variable it is assigned to.
func NewErrorType(name string) *ErrorType {
	return &ErrorType{Name: name}
}

// GenericErrorType is for codes which do not warrant a type of their own.
var GenericErrorType = NewErrorType("er.GenericErrorType")

// ErrorCode identifies one specific failure.
type ErrorCode struct {
	Type   *ErrorType
	Ident  string
	Detail string
}

// CodeWithDetail registers a new code under the type.  Detail is the
// human readable default message.
func (t *ErrorType) CodeWithDetail(ident, detail string) *ErrorCode {
	c := &ErrorCode{
		Type:   t,
		Ident:  ident,
		Detail: detail,
	}
	t.codes = append(t.codes, c)
	return c
}

// Code registers a code which has no default detail message.
func (t *ErrorType) Code(ident string) *ErrorCode {
	return t.CodeWithDetail(ident, "")
}

// Codes returns the codes registered on the type, in registration order.
func (t *ErrorType) Codes() []*ErrorCode {
	return append([]*ErrorCode(nil), t.codes...)
}

func (c *ErrorCode) String() string {
	return c.Ident
}

func (c *ErrorCode) message(info string) string {
	switch {
	case c.Detail == "" && info == "":
		return c.Ident
	case c.Detail == "":
		return c.Ident + ": " + info
	case info == "":
		return c.Ident + ": " + c.Detail
	}
	return c.Ident + ": " + c.Detail + ": " + info
}

// Default creates an error of this code with only the default detail.
func (c *ErrorCode) Default() R {
	return c.New("", nil)
}

// New creates an error of this code.  Info is appended to the detail
// message and cause, if non-nil, is appended after it.
func (c *ErrorCode) New(info string, cause R) R {
	msg := c.message(info)
	if cause != nil {
		msg += ": " + cause.Message()
	}
	return err{
		e:      errors.New(msg),
		code:   c,
		bstack: captureStack(),
	}
}

// Is tells whether the error was created from this code.
func (c *ErrorCode) Is(e R) bool {
	return e != nil && e.Code() == c
}
