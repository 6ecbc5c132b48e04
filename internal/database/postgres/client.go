package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"github.com/psgtech/campus-portal-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Client wraps a pgx connection pool with observability
type Client struct {
	pool *pgxpool.Pool
}

// NewClient wraps an already connected pool
func NewClient(pool *pgxpool.Pool) *Client {
	return &Client{pool: pool}
}

// Close closes the connection pool
func (c *Client) Close() {
	if c.pool != nil {
		c.pool.Close()
		logger.Info("PostgreSQL connection pool closed")
	}
}

// Pool returns the underlying connection pool for advanced usage
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

// Ping checks if the database connection is alive
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// track starts a span for a store operation. The returned func records
// metrics and the call log and must be called exactly once with the
// operation's final error.
func (c *Client) track(ctx context.Context, operation string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "postgres."+operation,
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", operation),
	)

	return ctx, func(err error) {
		defer span.End()

		duration := metrics.MeasureDuration(start)
		status := "success"
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrNotFound):
			status = "not_found"
		default:
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		metrics.DBOperationDuration.WithLabelValues(operation, status).Observe(duration)
		metrics.DBOperationTotal.WithLabelValues(operation, status).Inc()

		if status == "error" {
			logger.LogAPICall("postgres", operation, status, duration, zap.Error(err))
			return
		}
		logger.LogAPICall("postgres", operation, status, duration)
	}
}
