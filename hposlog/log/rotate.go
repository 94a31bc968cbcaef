// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jrick/logrotate/rotator"

	"github.com/hybridpos/hposd/btcutil/er"
)

var (
	rotatorLock sync.Mutex
	logRotator  *rotator.Rotator
)

// logWriter outputs to both standard output and the log rotator.
type logWriter struct {
	stdout io.Writer
	r      *rotator.Rotator
}

func (w logWriter) Write(p []byte) (n int, err error) {
	if w.stdout != nil {
		w.stdout.Write(p)
	}
	return w.r.Write(p)
}

// InitLogRotator makes the logger also write to logFile, rolling it over
// every 10 MB and keeping 3 old files.  Log output keeps going to standard
// output unless quiet is set.
func InitLogRotator(logFile string, quiet bool) er.R {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if errr := os.MkdirAll(logDir, 0700); errr != nil {
			return er.Errorf("failed to create log directory: %v", errr)
		}
	}
	r, errr := rotator.New(logFile, 10*1024, false, 3)
	if errr != nil {
		return er.Errorf("failed to create file rotator: %v", errr)
	}

	rotatorLock.Lock()
	defer rotatorLock.Unlock()
	if logRotator != nil {
		logRotator.Close()
	}
	logRotator = r
	w := logWriter{r: r}
	if !quiet {
		w.stdout = os.Stdout
	}
	SetOutput(w)
	return nil
}

// CloseLogRotator stops writing to the log file and sends output back to
// standard output.
func CloseLogRotator() {
	rotatorLock.Lock()
	defer rotatorLock.Unlock()
	if logRotator == nil {
		return
	}
	SetOutput(os.Stdout)
	logRotator.Close()
	logRotator = nil
}
