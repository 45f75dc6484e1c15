package profile

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Repository errors
var (
	ErrProfileNotExists = errors.New("profile does not exist")
)

// Record is the persisted profile row. Every column is nullable: a record
// is created at sign-up and filled in over time.
type Record struct {
	UserID           int             `db:"user_id"`
	Nickname         sql.NullString  `db:"nickname"`
	Gender           sql.NullString  `db:"gender"`
	Age              sql.NullInt64   `db:"age"`
	BirthDate        sql.NullTime    `db:"birth_date"`
	Nationality      sql.NullString  `db:"nationality"`
	HomeRegion       sql.NullString  `db:"home_region"`
	SelfIntroduction sql.NullString  `db:"self_introduction"`
	Hobbies          pq.StringArray  `db:"hobbies"`
	Personality      pq.StringArray  `db:"personality"`
	PlannedRegions   pq.StringArray  `db:"planned_regions"`
	Occupation       sql.NullString  `db:"occupation"`
	Height           sql.NullFloat64 `db:"height"`
	BodyType         sql.NullString  `db:"body_type"`
	MaritalStatus    sql.NullString  `db:"marital_status"`
	VisitSchedule    sql.NullString  `db:"visit_schedule"`
	TravelCompanion  sql.NullString  `db:"travel_companion"`
	UpdatedAt        sql.NullTime    `db:"updated_at"`
}

// LanguageSkill is one row of profile_language_skills
type LanguageSkill struct {
	Position int            `db:"position"`
	Language sql.NullString `db:"language"`
	Level    sql.NullString `db:"level"`
}

// PostgresRepository reads profile records from PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: sqlx.NewDb(db, "postgres")}
}

// GetRecord retrieves the profile record of a user
func (r *PostgresRepository) GetRecord(ctx context.Context, userID int) (*Record, error) {
	var record Record
	err := r.db.GetContext(ctx, &record, `
        SELECT user_id, nickname, gender, age, birth_date, nationality, home_region,
               self_introduction, hobbies, personality, planned_regions, occupation,
               height, body_type, marital_status, visit_schedule, travel_companion, updated_at
        FROM profiles
        WHERE user_id = $1
    `, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotExists
		}
		return nil, errors.Wrapf(err, "failed to get profile of user %d", userID)
	}
	return &record, nil
}

// GetLanguageSkills retrieves the language rows of a user in display order
func (r *PostgresRepository) GetLanguageSkills(ctx context.Context, userID int) ([]LanguageSkill, error) {
	var skills []LanguageSkill
	err := r.db.SelectContext(ctx, &skills, `
        SELECT position, language, level
        FROM profile_language_skills
        WHERE user_id = $1
        ORDER BY position
    `, userID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get language skills of user %d", userID)
	}
	return skills, nil
}

// Ping checks the connection
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// BirthDateString formats the birth date the way clients send it
func (rec *Record) BirthDateString() string {
	if !rec.BirthDate.Valid {
		return ""
	}
	return rec.BirthDate.Time.Format(time.DateOnly)
}
