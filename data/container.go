// Package data provides thread-safe storage for the assembled scoring
// engine. The EngineContainer swaps engines atomically so a tuning reload
// never disturbs in-flight requests.
package data

import (
	"sync/atomic"
	"time"

	"github.com/dermalens/triage-api/interfaces"
	"github.com/dermalens/triage-api/logging"
	"github.com/dermalens/triage-api/triage"
)

// Compile-time check to ensure EngineContainer implements EngineStore
var _ interfaces.EngineStore = (*EngineContainer)(nil)

// EngineContainer holds the current engine behind an atomic pointer for
// zero-downtime replacement.
type EngineContainer struct {
	engine          atomic.Value // *triage.Engine
	lastReloaded    atomic.Value // time.Time
	reloading       atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewEngineContainer creates an empty container. GetEngine returns nil until
// the first UpdateEngine call; main installs the initial engine before the
// server starts serving.
func NewEngineContainer() *EngineContainer {
	ec := &EngineContainer{}
	ec.lastReloaded.Store(time.Time{})
	ec.serverStartTime.Store(time.Time{})
	return ec
}

// GetEngine returns the current engine, or nil before the first install.
func (ec *EngineContainer) GetEngine() *triage.Engine {
	if v := ec.engine.Load(); v != nil {
		if engine, ok := v.(*triage.Engine); ok {
			return engine
		}
	}

	logging.Warn("Engine is not installed yet")
	return nil
}

// GetLastReloaded returns the timestamp of the last engine install.
func (ec *EngineContainer) GetLastReloaded() time.Time {
	if v := ec.lastReloaded.Load(); v != nil {
		if lastReloaded, ok := v.(time.Time); ok {
			return lastReloaded
		}
	}

	logging.Warn("Could not get the last reloaded value")
	return time.Time{}
}

// IsReloading returns true if a tuning reload is currently in progress
func (ec *EngineContainer) IsReloading() bool {
	return ec.reloading.Load()
}

// SetServerStartTime sets the server start time
func (ec *EngineContainer) SetServerStartTime(startTime time.Time) {
	ec.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (ec *EngineContainer) GetServerStartTime() time.Time {
	if v := ec.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateEngine atomically swaps in a new engine.
func (ec *EngineContainer) UpdateEngine(engine *triage.Engine) {
	ec.engine.Store(engine)
	ec.lastReloaded.Store(time.Now())
}

// BeginReload marks the start of a tuning reload.
// Returns true if the reload can proceed, false if another is in progress.
func (ec *EngineContainer) BeginReload() bool {
	return ec.reloading.CompareAndSwap(false, true)
}

// EndReload marks the end of a tuning reload.
func (ec *EngineContainer) EndReload() {
	ec.reloading.Store(false)
}
