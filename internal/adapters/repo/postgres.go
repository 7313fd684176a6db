package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lp-forge/internal/domain"
	"lp-forge/internal/infra/metrics"
)

// Postgres реализует репозитории на основе pgxpool.
type Postgres struct {
	pool *pgxpool.Pool
}

var (
	_ domain.ProfileRepo = (*Postgres)(nil)
	_ domain.ProjectRepo = (*Postgres)(nil)
	_ domain.AuditRepo   = (*Postgres)(nil)
	_ domain.MetricRepo  = (*Postgres)(nil)
)

// NewPostgres создаёт адаптер БД.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) connCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (p *Postgres) connCtxWithParent(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return p.connCtx()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, 5*time.Second)
}

// GetProfile возвращает профиль с тарифом и дневными счётчиками.
func (p *Postgres) GetProfile(ctx context.Context, userID int64) (domain.Profile, error) {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	var (
		profile domain.Profile
		resetAt sql.NullTime
	)
	start := time.Now()
	err := p.pool.QueryRow(ctx, `
SELECT user_id, plan_type, is_admin,
       COALESCE(company_name,''), COALESCE(company_achievements,''), COALESCE(contact_info,''),
       COALESCE(personal_name,''), COALESCE(personal_bio,''), COALESCE(personal_achievements,''),
       daily_generation_count, daily_project_count, daily_generation_reset_at,
       created_at, updated_at
FROM profiles WHERE user_id=$1
`, userID).Scan(
		&profile.UserID, &profile.Plan, &profile.IsAdmin,
		&profile.Snapshot.CompanyName, &profile.Snapshot.CompanyAchievements, &profile.Snapshot.ContactInfo,
		&profile.Snapshot.PersonalName, &profile.Snapshot.PersonalBio, &profile.Snapshot.PersonalAchievements,
		&profile.DailyGenerationCount, &profile.DailyProjectCount, &resetAt,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	metrics.ObserveNetworkRequest("postgres", "profiles_get", "profiles", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	if resetAt.Valid {
		ts := resetAt.Time
		profile.ResetAt = &ts
	}
	return profile, nil
}

// ResetUsageWindow обнуляет счётчики истёкшего окна. Обновление условное,
// поэтому два параллельных сброса не затирают друг друга.
func (p *Postgres) ResetUsageWindow(ctx context.Context, userID int64, now time.Time) error {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	start := time.Now()
	_, err := p.pool.Exec(ctx, `
UPDATE profiles
SET daily_generation_count=0, daily_project_count=0, daily_generation_reset_at=$2, updated_at=now()
WHERE user_id=$1
  AND (daily_generation_reset_at IS NULL OR daily_generation_reset_at < $3)
`, userID, now, now.Add(-24*time.Hour))
	metrics.ObserveNetworkRequest("postgres", "profiles_reset_window", "profiles", start, err)
	return err
}

// IncrementUsage атомарно увеличивает дневные счётчики. Инкремент на
// уровне строки переживает гонку параллельных запросов пользователя.
func (p *Postgres) IncrementUsage(ctx context.Context, userID int64, withProject bool) (int, int, error) {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	projectDelta := 0
	if withProject {
		projectDelta = 1
	}

	var genCount, projectCount int
	start := time.Now()
	err := p.pool.QueryRow(ctx, `
UPDATE profiles
SET daily_generation_count = daily_generation_count + 1,
    daily_project_count = daily_project_count + $2,
    updated_at = now()
WHERE user_id=$1
RETURNING daily_generation_count, daily_project_count
`, userID, projectDelta).Scan(&genCount, &projectCount)
	metrics.ObserveNetworkRequest("postgres", "profiles_increment_usage", "profiles", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrProfileNotFound
		}
		return 0, 0, err
	}
	return genCount, projectCount, nil
}

// SaveProject сохраняет сгенерированный лендинг.
func (p *Postgres) SaveProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	if project.PublicID == "" {
		project.PublicID = uuid.NewString()
	}

	start := time.Now()
	err := p.pool.QueryRow(ctx, `
INSERT INTO projects (public_id, user_id, service_name, purpose, language, html)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at
`, project.PublicID, project.UserID, project.ServiceName, project.Purpose, project.Language, project.HTML).
		Scan(&project.ID, &project.CreatedAt)
	metrics.ObserveNetworkRequest("postgres", "projects_insert", "projects", start, err)
	if err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

// RecordGeneration пишет запись журнала попытки генерации.
func (p *Postgres) RecordGeneration(ctx context.Context, record domain.AuditRecord) error {
	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	var errMsg sql.NullString
	if record.ErrorMessage != "" {
		errMsg = sql.NullString{String: record.ErrorMessage, Valid: true}
	}

	start := time.Now()
	_, err := p.pool.Exec(ctx, `
INSERT INTO generation_audit (id, user_id, success, error_message, plan_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, record.ID, record.UserID, record.Success, errMsg, record.Plan, record.CreatedAt)
	metrics.ObserveNetworkRequest("postgres", "generation_audit_insert", "generation_audit", start, err)
	return err
}

// RecordBusinessMetric сохраняет бизнесовое событие в БД.
func (p *Postgres) RecordBusinessMetric(ctx context.Context, event domain.GenerationEvent) error {
	if event.Event == "" {
		return nil
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	ctx, cancel := p.connCtxWithParent(ctx)
	defer cancel()

	payload := []byte("{}")
	if event.Metadata != nil {
		if data, err := json.Marshal(event.Metadata); err == nil {
			payload = data
		}
	}

	start := time.Now()
	_, err := p.pool.Exec(ctx, `
INSERT INTO business_metrics (event, user_id, metadata, occurred_at)
VALUES ($1, $2, $3, $4)
`, event.Event, event.UserID, payload, event.OccurredAt)
	metrics.ObserveNetworkRequest("postgres", "business_metrics_insert", "business_metrics", start, err)
	return err
}
