package monitoring

import "testing"

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) { got = format })
	Logf("hello %d")
	if got != "hello %d" {
		t.Errorf("custom logger saw %q, want %q", got, "hello %d")
	}
}

func TestSetLoggerNil(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	SetLogger(nil)
	if Logf == nil {
		t.Fatal("Logf is nil after SetLogger(nil)")
	}
	Logf("must not panic")
}
