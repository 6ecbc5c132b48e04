package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/psgtech/campus-portal-api/internal/models"
)

// ListEvents returns every event ordered by date ascending
func (c *Client) ListEvents(ctx context.Context) (events []models.Event, err error) {
	ctx, done := c.track(ctx, "listEvents")
	defer func() { done(err) }()

	rows, err := c.pool.Query(ctx,
		"SELECT title, date, description, registration_link FROM events ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	events, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		var e models.Event
		err := row.Scan(&e.Title, &e.Date, &e.Description, &e.RegistrationLink)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}
	return events, nil
}

// ListTeachers returns every teacher-role user with profile data when present
func (c *Client) ListTeachers(ctx context.Context) (teachers []models.Teacher, err error) {
	ctx, done := c.track(ctx, "listTeachers")
	defer func() { done(err) }()

	query := `
		SELECT u.id, u.email, ti.qualification, ti.class_handling, ti.achievements, ti.picture
		FROM users u
		LEFT JOIN teacher_info ti ON u.id = ti.user_id
		WHERE u.user_type = 'teacher'
		ORDER BY u.id
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teachers: %w", err)
	}

	teachers, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Teacher, error) {
		var t models.Teacher
		err := row.Scan(&t.ID, &t.Email, &t.Qualification, &t.ClassHandling, &t.Achievements, &t.Picture)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan teachers: %w", err)
	}
	return teachers, nil
}

// AssociationTableExists reports whether public.association_members is present
func (c *Client) AssociationTableExists(ctx context.Context) (exists bool, err error) {
	ctx, done := c.track(ctx, "associationTableExists")
	defer func() { done(err) }()

	err = c.pool.QueryRow(ctx,
		"SELECT to_regclass('public.association_members') IS NOT NULL",
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check association table: %w", err)
	}
	return exists, nil
}

// ListAssociationMembers returns every association member row ordered by name
func (c *Client) ListAssociationMembers(ctx context.Context) (members []models.Row, err error) {
	ctx, done := c.track(ctx, "listAssociationMembers")
	defer func() { done(err) }()

	rows, err := c.pool.Query(ctx, "SELECT * FROM association_members ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to query association members: %w", err)
	}

	members, err = pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to scan association members: %w", err)
	}
	return members, nil
}
