// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"loud", LevelInfo, false},
	}

	for i, test := range tests {
		got, ok := LevelFromString(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("LevelFromString #%d (%s)\n got: %v %v want: %v %v",
				i, test.in, got, ok, test.want, test.ok)
		}
	}
}

func TestSetLogLevels(t *testing.T) {
	defer SetLogLevels("info")
	defer SetOutput(os.Stdout)

	var buf bytes.Buffer
	SetOutput(&buf)

	if err := SetLogLevels("warn"); err != nil {
		t.Fatalf("SetLogLevels: %v", err)
	}
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden 1") {
		t.Fatalf("info message written at warn level: %q", out)
	}
	if !strings.Contains(out, "[WRN] log_test.go:") || !strings.Contains(out, "shown 2") {
		t.Fatalf("warn message missing: %q", out)
	}

	buf.Reset()
	if err := SetLogLevels("error,log_test.go=trace"); err != nil {
		t.Fatalf("SetLogLevels: %v", err)
	}
	Tracef("per file %s", "override")
	if !strings.Contains(buf.String(), "per file override") {
		t.Fatalf("per file level ignored: %q", buf.String())
	}

	for _, bad := range []string{"loud", "info,log_test.go=loud", "loud,x.go=info"} {
		if err := SetLogLevels(bad); err == nil {
			t.Errorf("SetLogLevels(%q) accepted an invalid level", bad)
		}
	}
}

func TestLogRotator(t *testing.T) {
	defer CloseLogRotator()
	logFile := filepath.Join(t.TempDir(), "logs", "hposd.log")
	if err := InitLogRotator(logFile, true); err != nil {
		t.Fatalf("InitLogRotator: %v", err)
	}
	Warnf("written to %s", "the file")
	CloseLogRotator()

	content, errr := os.ReadFile(logFile)
	if errr != nil {
		t.Fatalf("ReadFile: %v", errr)
	}
	if !strings.Contains(string(content), "written to the file") {
		t.Errorf("InitLogRotator\n got: %q want: message in file", content)
	}
}

func TestAppendHeader(t *testing.T) {
	ts := time.Date(2017, 9, 1, 10, 20, 30, 456e6, time.UTC)
	tests := []struct {
		flags uint32
		lvl   Level
		want  string
		color bool
	}{
		{Lshortfile, LevelInfo, "1504261230 [INF] params.go:12 ", false},
		{Llongdate, LevelWarn, "2017-09-01 10:20:30.456 [WRN] ", false},
		{Lshortfile | Lcolor, LevelError, bright + fgRed + "1504261230 [ERR] params.go:12 ", true},
		{Lcolor, LevelInfo, "1504261230 [INF] ", false},
	}

	for i, test := range tests {
		got, color := appendHeader(test.flags, nil, ts, test.lvl, "params.go", 12)
		if string(got) != test.want || color != test.color {
			t.Errorf("appendHeader #%d\n got: %q %v want: %q %v",
				i, got, color, test.want, test.color)
		}
	}
}

func TestHeight(t *testing.T) {
	if got := Height(-1); got != fgYellow+"none"+reset {
		t.Errorf("Height(-1)\n got: %q", got)
	}
	if got := Height(3000); got != fgYellow+"3000"+reset {
		t.Errorf("Height(3000)\n got: %q", got)
	}
}
