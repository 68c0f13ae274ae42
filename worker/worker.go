package worker

import (
	"ceam-backend/infrastructure"
	"ceam-backend/models"
	"ceam-backend/repository"
	"ceam-backend/utils/logger"
	"context"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

const setupTimeout = 15 * time.Minute

// CatalogReloader re-reads the event and news catalog
type CatalogReloader interface {
	Reload() (*repository.Catalog, error)
}

// Worker runs the scheduled catalog reload and the one-shot table setup
type Worker struct {
	config       *models.Config
	workerConfig *models.WorkerConfig
	logger       logger.Logger
	catalog      CatalogReloader
	tables       TableAPI
	cronJob      *cron.Cron
	status       *StatusManager
	ownerID      string

	mu       sync.Mutex
	started  bool
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewWorker builds a worker. tables may be nil, in which case no table setup runs.
func NewWorker(cfg *models.Config, catalog CatalogReloader, tables TableAPI, log logger.Logger) (*Worker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "localhost"
	}

	workerConfig := &models.WorkerConfig{
		CronSchedule:      cfg.CatalogReloadSchedule,
		MaxRetries:        5,
		RetryDelay:        2 * time.Second,
		BackoffMultiplier: 2.0,
		Environment:       cfg.AppEnv,
		RequiredTables:    cfg.Tables,
		SetupTables:       tables != nil && cfg.DeliveryLogEnabled,
		DryRun:            os.Getenv("INFRASTRUCTURE_DRY_RUN") == "true",
	}

	if err := validateWorkerConfig(workerConfig); err != nil {
		return nil, fmt.Errorf("invalid worker configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		config:       cfg,
		workerConfig: workerConfig,
		logger:       log,
		catalog:      catalog,
		tables:       tables,
		cronJob:      cron.New(),
		status:       NewStatusManager(),
		ownerID:      fmt.Sprintf("worker-%s-%s", hostname, uuid.New().String()[:8]),
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

func validateWorkerConfig(config *models.WorkerConfig) error {
	if config.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}
	if config.RetryDelay <= 0 {
		return fmt.Errorf("retry delay must be positive")
	}
	if config.BackoffMultiplier < 1.0 {
		return fmt.Errorf("backoff multiplier must be at least 1.0")
	}

	if config.CronSchedule != "" {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
		if _, err := parser.Parse(config.CronSchedule); err != nil {
			return fmt.Errorf("invalid cron schedule '%s': %w", config.CronSchedule, err)
		}
	}

	if config.SetupTables {
		if len(config.RequiredTables) == 0 {
			return fmt.Errorf("at least one required table must be specified")
		}
		known := infrastructure.SchemaNames()
		for _, t := range config.RequiredTables {
			if !slices.Contains(known, t) {
				return fmt.Errorf("no schema for required table %q", t)
			}
		}
	}
	return nil
}

// OwnerID identifies this worker instance in logs
func (w *Worker) OwnerID() string {
	return w.ownerID
}

// Start schedules the catalog reload and launches table setup in the background
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return fmt.Errorf("worker is already running")
	}

	select {
	case <-w.ctx.Done():
		return fmt.Errorf("worker context is cancelled, cannot start")
	default:
	}

	w.logger.Infof("Starting worker %s", w.ownerID)

	if w.workerConfig.CronSchedule != "" {
		if err := w.cronJob.AddFunc(w.workerConfig.CronSchedule, w.scheduledReload); err != nil {
			return fmt.Errorf("failed to add cron job: %w", err)
		}
		w.logger.Infof("Catalog reload scheduled: %s", w.workerConfig.CronSchedule)
	}
	w.cronJob.Start()
	w.started = true
	w.status.SetRunning(true)

	if w.workerConfig.SetupTables {
		w.wg.Add(1)
		go w.runOnceSetup()
	} else {
		w.status.SkipSetup(w.workerConfig.Environment)
	}

	return nil
}

// runOnceSetup runs table setup with a timeout and never lets a panic escape
func (w *Worker) runOnceSetup() {
	defer w.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("table setup panicked: %v", r)
			w.logger.Error(err)
			w.status.FinishSetup(err)
		}
	}()

	ctx, cancel := context.WithTimeout(w.ctx, setupTimeout)
	defer cancel()

	if err := w.setupTables(ctx); err != nil {
		w.logger.Errorf("Table setup failed, delivery records will not be written: %v", err)
	}
}

func (w *Worker) scheduledReload() {
	select {
	case <-w.ctx.Done():
		return
	default:
	}
	w.ReloadCatalog()
}

// ReloadCatalog re-reads the catalog now. A failed reload keeps the previous snapshot.
func (w *Worker) ReloadCatalog() *models.ReloadResult {
	result := &models.ReloadResult{ReloadedAt: time.Now()}

	catalog, err := w.catalog.Reload()
	if err != nil {
		result.Status = models.StatusFailed
		result.Error = err.Error()
		w.logger.Errorf("Catalog reload failed, keeping previous catalog: %v", err)
	} else {
		result.Status = models.StatusCompleted
		result.Events = len(catalog.Events)
		result.Articles = len(catalog.Articles)
		w.logger.Debugf("Catalog reloaded: %d events, %d articles", result.Events, result.Articles)
	}

	w.status.RecordReload(result)
	return result
}

// Health returns the worker state for the admin endpoint
func (w *Worker) Health() models.WorkerHealth {
	return w.status.Health()
}

// WaitForSetup blocks until table setup finishes or ctx is done
func (w *Worker) WaitForSetup(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels running work and stops the scheduler. It is safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		w.cancel()
		w.cronJob.Stop()
		w.wg.Wait()

		w.mu.Lock()
		w.started = false
		w.mu.Unlock()
		w.status.SetRunning(false)
		w.logger.Info("Worker stopped")
	})
}
