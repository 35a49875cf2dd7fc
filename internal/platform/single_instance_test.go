package platform

import (
	"errors"
	"testing"
)

func TestAcquireSingleInstance_SecondAcquireFails(t *testing.T) {
	guard, err := AcquireSingleInstance("canvassmith-test")
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	if guard.Address() == "" {
		t.Fatal("guard should report a bound address")
	}

	_, err = AcquireSingleInstance("canvassmith-test")
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestAcquireSingleInstance_ReleaseAllowsReacquire(t *testing.T) {
	guard, err := AcquireSingleInstance("canvassmith-test-2")
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	again, err := AcquireSingleInstance("canvassmith-test-2")
	if err != nil {
		t.Fatalf("reacquire after release failed: %v", err)
	}
	_ = again.Release()
}

func TestPortFromName_Deterministic(t *testing.T) {
	if portFromName("canvassmith") != portFromName("canvassmith") {
		t.Fatal("port derivation must be deterministic")
	}
	port := portFromName("canvassmith")
	if port < 20000 || port > 39999 {
		t.Fatalf("port %d outside expected range", port)
	}
}
