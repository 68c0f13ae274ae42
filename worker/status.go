package worker

import (
	"ceam-backend/models"
	"sync"
	"time"
)

// StatusManager keeps the latest table bootstrap and catalog reload outcomes in memory
type StatusManager struct {
	mu         sync.RWMutex
	running    bool
	setup      *models.ExecutionResult
	lastReload *models.ReloadResult
}

func NewStatusManager() *StatusManager {
	return &StatusManager{}
}

func (sm *StatusManager) SetRunning(running bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.running = running
}

// StartSetup resets the bootstrap result to a running state
func (sm *StatusManager) StartSetup(env string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setup = &models.ExecutionResult{
		Status:        models.StatusRunning,
		StartTime:     time.Now(),
		Environment:   env,
		TablesCreated: make([]models.TableStatus, 0),
	}
}

// AddTable records the outcome for one table
func (sm *StatusManager) AddTable(name, status string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.setup == nil {
		return
	}
	sm.setup.TablesCreated = append(sm.setup.TablesCreated, models.TableStatus{
		Name:      name,
		Status:    status,
		CreatedAt: time.Now(),
	})
}

// SetRetryCount stores the highest retry count seen so far
func (sm *StatusManager) SetRetryCount(retries int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.setup != nil && retries > sm.setup.RetryCount {
		sm.setup.RetryCount = retries
	}
}

// FinishSetup closes the bootstrap result. A nil err marks it completed.
func (sm *StatusManager) FinishSetup(err error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.setup == nil {
		return
	}
	end := time.Now()
	sm.setup.EndTime = &end
	sm.setup.Duration = end.Sub(sm.setup.StartTime)
	if err != nil {
		sm.setup.Status = models.StatusFailed
		sm.setup.Success = false
		sm.setup.ErrorMessage = err.Error()
		return
	}
	sm.setup.Status = models.StatusCompleted
	sm.setup.Success = true
}

// SkipSetup marks the bootstrap as not needed
func (sm *StatusManager) SkipSetup(env string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setup = &models.ExecutionResult{
		Status:        models.StatusSkipped,
		Success:       true,
		StartTime:     time.Now(),
		Environment:   env,
		TablesCreated: make([]models.TableStatus, 0),
	}
}

func (sm *StatusManager) RecordReload(result *models.ReloadResult) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	r := *result
	sm.lastReload = &r
}

// IsSetupCompleted reports whether the bootstrap finished successfully
func (sm *StatusManager) IsSetupCompleted() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.setup != nil && sm.setup.Success &&
		(sm.setup.Status == models.StatusCompleted || sm.setup.Status == models.StatusSkipped)
}

// Health returns a copy of the current state
func (sm *StatusManager) Health() models.WorkerHealth {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	health := models.WorkerHealth{Running: sm.running}
	if sm.setup != nil {
		setup := *sm.setup
		setup.TablesCreated = append([]models.TableStatus(nil), sm.setup.TablesCreated...)
		health.Setup = &setup
	}
	if sm.lastReload != nil {
		reload := *sm.lastReload
		health.LastReload = &reload
	}
	return health
}
