package data

import (
	"sync"
	"testing"
	"time"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/logging"
	"github.com/dermalens/triage-api/triage"
)

func newTestEngine(t *testing.T) *triage.Engine {
	t.Helper()

	kb, err := knowledge.New(knowledge.DefaultTuning())
	if err != nil {
		t.Fatalf("Failed to build knowledge base: %v", err)
	}
	return triage.NewEngine(kb)
}

func TestNewEngineContainer(t *testing.T) {
	logging.InitLogger("")

	ec := NewEngineContainer()

	if ec.GetEngine() != nil {
		t.Error("NewEngineContainer should have no engine installed")
	}
	if !ec.GetLastReloaded().IsZero() {
		t.Error("NewEngineContainer should have zero last reloaded time")
	}
	if ec.IsReloading() {
		t.Error("NewEngineContainer should not be reloading")
	}
}

func TestUpdateEngine(t *testing.T) {
	logging.InitLogger("")

	ec := NewEngineContainer()
	engine := newTestEngine(t)

	before := time.Now()
	ec.UpdateEngine(engine)

	if ec.GetEngine() != engine {
		t.Error("Expected installed engine after update")
	}

	lastReloaded := ec.GetLastReloaded()
	if lastReloaded.Before(before) {
		t.Error("Last reloaded time should be set by UpdateEngine")
	}
}

func TestEngineSwap(t *testing.T) {
	logging.InitLogger("")

	ec := NewEngineContainer()
	first := newTestEngine(t)
	second := newTestEngine(t)

	ec.UpdateEngine(first)
	ec.UpdateEngine(second)

	if ec.GetEngine() != second {
		t.Error("Expected second engine after swap")
	}
}

func TestBeginEndReload(t *testing.T) {
	logging.InitLogger("")

	ec := NewEngineContainer()

	if !ec.BeginReload() {
		t.Error("First BeginReload should succeed")
	}
	if !ec.IsReloading() {
		t.Error("IsReloading should report true during reload")
	}
	if ec.BeginReload() {
		t.Error("Concurrent BeginReload should fail")
	}

	ec.EndReload()

	if ec.IsReloading() {
		t.Error("IsReloading should report false after EndReload")
	}
	if !ec.BeginReload() {
		t.Error("BeginReload after EndReload should succeed")
	}
	ec.EndReload()
}

func TestServerStartTime(t *testing.T) {
	logging.InitLogger("")

	ec := NewEngineContainer()

	if !ec.GetServerStartTime().IsZero() {
		t.Error("Server start time should be zero before set")
	}

	now := time.Now()
	ec.SetServerStartTime(now)

	if !ec.GetServerStartTime().Equal(now) {
		t.Error("Server start time should round-trip")
	}
}

func TestConcurrentAccess(t *testing.T) {
	logging.InitLogger("")

	ec := NewEngineContainer()
	engine := newTestEngine(t)
	ec.UpdateEngine(engine)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ec.GetEngine() == nil {
				t.Error("Engine should stay available during concurrent reads")
			}
			_ = ec.GetLastReloaded()
			_ = ec.IsReloading()
		}()
	}

	// Swap engines while readers are running
	for i := 0; i < 10; i++ {
		ec.UpdateEngine(newTestEngine(t))
	}

	wg.Wait()

	if ec.GetEngine() == nil {
		t.Error("Engine should be installed after concurrent swaps")
	}
}
