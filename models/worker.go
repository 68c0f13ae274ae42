package models

import "time"

// WorkerConfig holds configuration for the background worker
type WorkerConfig struct {
	// Cron schedule for catalog reloads
	CronSchedule string `json:"cron_schedule"`

	// Retry settings for table bootstrap
	MaxRetries        int           `json:"max_retries"`
	RetryDelay        time.Duration `json:"retry_delay"`
	BackoffMultiplier float64       `json:"backoff_multiplier"`

	// Environment settings
	Environment    string   `json:"environment"`
	RequiredTables []string `json:"required_tables"`

	// Feature flags
	SetupTables bool `json:"setup_tables"`
	DryRun      bool `json:"dry_run"`
}

// WorkerStatus represents the current status of a worker job
type WorkerStatus string

const (
	StatusIdle      WorkerStatus = "idle"
	StatusRunning   WorkerStatus = "running"
	StatusCompleted WorkerStatus = "completed"
	StatusFailed    WorkerStatus = "failed"
	StatusSkipped   WorkerStatus = "skipped"
)

// ExecutionResult holds the result of the table bootstrap
type ExecutionResult struct {
	Success       bool          `json:"success"`
	Status        WorkerStatus  `json:"status"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       *time.Time    `json:"end_time,omitempty"`
	Duration      time.Duration `json:"duration"`
	TablesCreated []TableStatus `json:"tables_created"`
	ErrorMessage  string        `json:"error_message,omitempty"`
	RetryCount    int           `json:"retry_count"`
	Environment   string        `json:"environment"`
}

// TableStatus represents table creation status
type TableStatus struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"` // CREATED, EXISTS, FAILED
	CreatedAt time.Time `json:"created_at"`
}

// ReloadResult is the outcome of one catalog reload
type ReloadResult struct {
	Status     WorkerStatus `json:"status"`
	Events     int          `json:"events"`
	Articles   int          `json:"articles"`
	ReloadedAt time.Time    `json:"reloaded_at"`
	Error      string       `json:"error,omitempty"`
}

// WorkerHealth is reported on the health endpoint
type WorkerHealth struct {
	Running    bool             `json:"running"`
	Setup      *ExecutionResult `json:"setup,omitempty"`
	LastReload *ReloadResult    `json:"last_reload,omitempty"`
}
