package worker

import (
	"ceam-backend/infrastructure"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/smithy-go"
)

// Table outcomes recorded in the bootstrap result
const (
	TableCreated = "CREATED"
	TableExists  = "EXISTS"
	TableFailed  = "FAILED"
	TableDryRun  = "DRY_RUN"
)

// TableAPI is the part of the DynamoDB client the bootstrap needs
type TableAPI interface {
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}

// tableNames returns the prefixed names of the required tables
func (w *Worker) tableNames() []string {
	names := make([]string, 0, len(w.workerConfig.RequiredTables))
	for _, t := range w.workerConfig.RequiredTables {
		names = append(names, w.config.DynamoDBTablePrefix+"_"+t)
	}
	return names
}

// setupTables makes sure every required table exists. Tables are processed one at a time.
func (w *Worker) setupTables(ctx context.Context) error {
	w.status.StartSetup(w.workerConfig.Environment)
	w.logger.Info("Starting table setup...")

	for _, name := range w.tableNames() {
		if w.workerConfig.DryRun {
			w.logger.Infof("Dry run, not touching table %s", name)
			w.status.AddTable(name, TableDryRun)
			continue
		}

		outcome, err := w.ensureTableWithRetry(ctx, name)
		if err != nil {
			w.status.AddTable(name, TableFailed)
			w.status.FinishSetup(err)
			w.logger.Errorf("Failed to set up table %s: %v", name, err)
			return err
		}
		w.status.AddTable(name, outcome)
		w.logger.Infof("Table %s ready (%s)", name, outcome)
	}

	w.status.FinishSetup(nil)
	w.logger.Info("Table setup completed")
	return nil
}

// ensureTableWithRetry retries ensureTable with exponential backoff
func (w *Worker) ensureTableWithRetry(ctx context.Context, name string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= w.workerConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := w.calculateRetryDelay(attempt - 1)
			w.logger.Warnf("Retrying table setup for %s in %v (attempt %d/%d): %v",
				name, delay, attempt+1, w.workerConfig.MaxRetries+1, lastErr)
			w.status.SetRetryCount(attempt)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		outcome, err := w.ensureTable(ctx, name)
		if err == nil {
			return outcome, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("failed to set up table %s after %d attempts: %w", name, w.workerConfig.MaxRetries+1, lastErr)
}

func (w *Worker) ensureTable(ctx context.Context, name string) (string, error) {
	_, err := w.tables.DescribeTable(ctx, name)
	if err == nil {
		return TableExists, nil
	}
	if !isTableNotFoundError(err) {
		return "", fmt.Errorf("failed to describe table: %w", err)
	}

	input, err := infrastructure.GetTables(name)
	if err != nil {
		return "", err
	}
	if err := w.tables.CreateTable(ctx, input); err != nil {
		// another instance got there first
		if isResourceInUseError(err) {
			return TableExists, nil
		}
		return "", fmt.Errorf("failed to create table: %w", err)
	}
	return TableCreated, nil
}

// calculateRetryDelay applies the backoff multiplier retryCount times, capped at one hour
func (w *Worker) calculateRetryDelay(retryCount int) time.Duration {
	delay := float64(w.workerConfig.RetryDelay)
	for range retryCount {
		delay *= w.workerConfig.BackoffMultiplier
	}
	if maxDelay := float64(time.Hour); delay > maxDelay {
		delay = maxDelay
	}
	return time.Duration(delay)
}

func apiErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func isTableNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if apiErrorCode(err) == "ResourceNotFoundException" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "ResourceNotFoundException") ||
		strings.Contains(msg, "Requested resource not found")
}

func isResourceInUseError(err error) bool {
	return err != nil && apiErrorCode(err) == "ResourceInUseException"
}
