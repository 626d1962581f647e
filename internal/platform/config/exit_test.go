package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCodeOne(t *testing.T) {
	var stderr bytes.Buffer
	code := -1
	prevStderr, prevExit := exitStderr, exitFunc
	exitStderr = &stderr
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() {
		exitStderr, exitFunc = prevStderr, prevExit
	})

	Exitf("fatal: %s", "something broke")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := stderr.String(); got != "fatal: something broke\n" {
		t.Fatalf("stderr = %q, want %q", got, "fatal: something broke\n")
	}
}
