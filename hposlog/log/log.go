// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hybridpos/hposd/btcutil/er"
	"github.com/hybridpos/hposd/hposconfig/version"
)

// Flags to modify Backend's behavior.
const (
	// Llongfile modifies the logger output to include full path and line number
	// of the logging callsite, e.g. /a/b/c/main.go:123.
	Llongfile uint32 = 1 << iota

	// Lshortfile modifies the logger output to include filename and line number
	// of the logging callsite, e.g. main.go:123.  Overrides Llongfile.
	Lshortfile

	Lcolor

	Llongdate
)

// Level is the level at which a logger is configured.  All messages sent
// to a level which is below the current level are filtered.
type Level uint32

// Level constants.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelCritical
	LevelOff
	LevelInvalid
)

// levelStrs defines the human-readable names for each logging level.
var levelStrs = [...]string{"TRC", "DBG", "INF", "WRN", "ERR", "CRT", "OFF"}

// LevelFromString returns a level based on the input string s.  If the input
// can't be interpreted as a valid log level, the info level and false is
// returned.
func LevelFromString(s string) (l Level, ok bool) {
	switch strings.ToLower(s) {
	case "trace", "trc":
		return LevelTrace, true
	case "debug", "dbg":
		return LevelDebug, true
	case "info", "inf":
		return LevelInfo, true
	case "warn", "wrn":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	case "critical", "crt":
		return LevelCritical, true
	case "off":
		return LevelOff, true
	default:
		return LevelInfo, false
	}
}

// SetLogLevels parses a debug level specification and applies it.  The
// specification is either a single level for everything, or a comma
// separated list of file=level pairs, optionally with one bare level which
// then applies to every file not listed, e.g. "info,params.go=trace".
func SetLogLevels(debugLevel string) er.R {
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		lvl, ok := LevelFromString(debugLevel)
		if !ok {
			return er.Errorf("The specified debug level [%v] is invalid", debugLevel)
		}
		b.lock.Lock()
		defer b.lock.Unlock()
		b.lvl = lvl
		return nil
	}

	glvl := LevelInvalid
	m := make(map[string]Level)
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			lvl, ok := LevelFromString(logLevelPair)
			if !ok {
				return er.Errorf("The specified debug level contains an "+
					"invalid subsystem/level pair [%v]", logLevelPair)
			}
			glvl = lvl
			continue
		}

		fields := strings.Split(logLevelPair, "=")
		fileName, logLevel := fields[0], fields[1]

		lvl, ok := LevelFromString(logLevel)
		if !ok {
			return er.Errorf("The specified debug level [%v] is invalid", logLevel)
		}
		m[fileName] = lvl
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	if glvl != LevelInvalid {
		b.lvl = glvl
	}
	b.lmap = m
	return nil
}

// String returns the tag of the logger used in log messages, or "OFF" if
// the level will not produce any log output.
func (l Level) String() string {
	if l >= LevelOff {
		return "OFF"
	}
	return levelStrs[l]
}

const defaultFlags = Lshortfile | Lcolor
const defaultLevel = LevelInfo

// flagsFromEnv reads the LOGFLAGS list, unknown words are skipped and an
// empty list means the default flags.
func flagsFromEnv(env string) uint32 {
	names := map[string]uint32{
		"none":      0,
		"longfile":  Llongfile,
		"shortfile": Lshortfile,
		"color":     Lcolor,
		"longdate":  Llongdate,
	}
	flags := uint32(0)
	hasFlags := false
	for _, f := range strings.Split(env, ",") {
		if flag, ok := names[f]; ok {
			flags |= flag
			hasFlags = true
		}
	}
	if !hasFlags {
		return defaultFlags
	}
	return flags
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 120)
		return &b
	},
}

const (
	reset    = "\x1b[0m"
	bright   = "\x1b[1m"
	dim      = "\x1b[2m"
	fgBlack  = "\x1b[30m"
	fgRed    = "\x1b[31m"
	fgYellow = "\x1b[33m"
	fgBlue   = "\x1b[34m"
	fgCyan   = "\x1b[36m"
	fgWhite  = "\x1b[37m"
	bgRed    = "\x1b[41m"
)

var levelColors = map[Level]string{
	LevelDebug:    dim + fgWhite,
	LevelWarn:     bright + fgYellow,
	LevelError:    bright + fgRed,
	LevelCritical: bright + fgBlack + bgRed,
}

// Height colors a block height, negative heights mean "none yet".
func Height(h int32) string {
	out := "none"
	if h > -1 {
		out = strconv.FormatInt(int64(h), 10)
	}
	return fgYellow + out + reset
}

// Hash colors a block or transaction hash.
func Hash(str string) string {
	return fgCyan + str + reset
}

// Network colors a network name.
func Network(name string) string {
	return bright + fgBlue + name + reset
}

// IpAddr colors a peer address.
func IpAddr(addr string) string {
	return bright + fgRed + addr + reset
}

// appendHeader writes 'unixtime [LVL] file:line ' to buf, or the time as
// 'YYYY-MM-DD hh:mm:ss.sss' with Llongdate.  It returns whether a color was
// opened which must be reset after the message.
func appendHeader(flags uint32, buf []byte, t time.Time, lvl Level, file string, line int) ([]byte, bool) {
	color, hasColor := levelColors[lvl]
	hasColor = hasColor && flags&Lcolor != 0
	if hasColor {
		buf = append(buf, color...)
	}
	if flags&Llongdate != 0 {
		buf = t.AppendFormat(buf, "2006-01-02 15:04:05.000")
	} else {
		buf = strconv.AppendInt(buf, t.Unix(), 10)
	}
	buf = append(buf, " ["...)
	buf = append(buf, lvl.String()...)
	buf = append(buf, "] "...)
	if flags&(Lshortfile|Llongfile) != 0 {
		buf = append(buf, file...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(line), 10)
		buf = append(buf, ' ')
	}
	return buf, hasColor
}

// callsite returns the file name to print, the base name levels are keyed
// by and the line of the logging call.  It is called from doLog, which is
// called from the exported level functions.
func callsite(flag uint32) (string, string, int) {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "???", "", 0
	}
	short := filepath.Base(file)
	if flag&Lshortfile != 0 {
		file = short
	}
	return file, short, line
}

// backend serializes writes from every goroutine.
type backend struct {
	wlock sync.Mutex
	w     io.Writer
	flag  uint32

	lock sync.RWMutex
	lvl  Level
	lmap map[string]Level
}

func (b *backend) enabled(lvl Level, shortFile string) bool {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if fileLvl, ok := b.lmap[shortFile]; ok {
		return lvl >= fileLvl
	}
	return lvl >= b.lvl
}

var b *backend

func init() {
	b = &backend{
		w:    os.Stdout,
		flag: flagsFromEnv(os.Getenv("LOGFLAGS")),
		lvl:  defaultLevel,
		lmap: make(map[string]Level),
	}
	if hposlog := os.Getenv("HPOSLOG"); hposlog != "" {
		if err := SetLogLevels(hposlog); err != nil {
			Errorf("Error setting log level from HPOSLOG: %s", err.String())
		}
	}
}

// SetOutput redirects all log output, it is meant for main packages and tests.
func SetOutput(w io.Writer) {
	b.wlock.Lock()
	b.w = w
	b.wlock.Unlock()
}

func doLog(lvl Level, format string, args ...interface{}) {
	file, shortFile, line := callsite(b.flag)
	if !b.enabled(lvl, shortFile) {
		return
	}

	bufp := bufferPool.Get().(*[]byte)
	buf, hasColor := appendHeader(b.flag, (*bufp)[:0], time.Now(), lvl, file, line)
	buf = fmt.Appendf(buf, format, args...)
	if hasColor {
		buf = append(buf, reset...)
	}
	buf = append(buf, '\n')

	b.wlock.Lock()
	b.w.Write(buf)
	b.wlock.Unlock()
	*bufp = buf[:0]
	bufferPool.Put(bufp)
}

func Tracef(format string, args ...interface{}) {
	doLog(LevelTrace, format, args...)
}

func Debugf(format string, args ...interface{}) {
	doLog(LevelDebug, format, args...)
}

func Infof(format string, args ...interface{}) {
	doLog(LevelInfo, format, args...)
}

func Warnf(format string, args ...interface{}) {
	doLog(LevelWarn, format, args...)
}

func Errorf(format string, args ...interface{}) {
	doLog(LevelError, format, args...)
}

func Criticalf(format string, args ...interface{}) {
	doLog(LevelCritical, format, args...)
}

// WarnIfPrerelease tells the user when the binary was not built from a
// release tag.
func WarnIfPrerelease() {
	if version.IsCustom() || version.IsDirty() {
		Warnf("THIS IS A DEVELOPMENT VERSION OF %s, THINGS MAY BREAK",
			strings.ToUpper(version.UserAgentName()))
	} else if version.IsPrerelease() {
		Infof("This is a pre-release version of %s", version.UserAgentName())
	}
}
