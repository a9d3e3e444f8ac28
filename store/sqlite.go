package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	title TEXT NOT NULL,
	bio TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	linkedin_url TEXT NOT NULL DEFAULT '',
	github_url TEXT NOT NULL DEFAULT '',
	resume_url TEXT NOT NULL DEFAULT '',
	avatar_url TEXT NOT NULL DEFAULT '',
	skills TEXT NOT NULL DEFAULT '{}',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	long_description TEXT NOT NULL DEFAULT '',
	image_url TEXT NOT NULL DEFAULT '',
	live_url TEXT NOT NULL DEFAULT '',
	github_url TEXT NOT NULL DEFAULT '',
	technologies TEXT NOT NULL DEFAULT '[]',
	category TEXT NOT NULL DEFAULT 'web',
	featured INTEGER NOT NULL DEFAULT 0,
	display_order INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS experiences (
	id TEXT PRIMARY KEY,
	company TEXT NOT NULL,
	position TEXT NOT NULL,
	description TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	skills TEXT NOT NULL DEFAULT '[]',
	display_order INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	subject TEXT NOT NULL,
	body TEXT NOT NULL,
	is_read INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);
`

// SQLite is the durable Store backed by a single SQLite database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %v: %w", err, ErrUnavailable)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// classify marks err with ErrUnavailable when the database itself cannot be
// reached, so callers can tell connection failures from query failures.
func (s *SQLite) classify(err error) error {
	if err == nil {
		return nil
	}
	if pingErr := s.db.Ping(); pingErr != nil {
		return fmt.Errorf("%v: %w", err, ErrUnavailable)
	}
	return err
}

func (s *SQLite) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	var skills string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, title, bio, email, phone, location, linkedin_url,
		       github_url, resume_url, avatar_url, skills, created_at, updated_at
		FROM profiles LIMIT 1
	`).Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location,
		&p.LinkedinURL, &p.GithubURL, &p.ResumeURL, &p.AvatarURL, &skills,
		&p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", s.classify(err))
	}
	p.Skills = DecodeSkillGroups(skills)
	return &p, nil
}

func (s *SQLite) UpsertProfile(ctx context.Context, p *Profile) (*Profile, error) {
	existing, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.UpdatedAt = now
	if existing == nil {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO profiles (id, name, title, bio, email, phone, location,
				linkedin_url, github_url, resume_url, avatar_url, skills,
				created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location,
			p.LinkedinURL, p.GithubURL, p.ResumeURL, p.AvatarURL,
			EncodeSkillGroups(p.Skills), p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert profile: %w", s.classify(err))
		}
		return p, nil
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	_, err = s.db.ExecContext(ctx, `
		UPDATE profiles SET name = ?, title = ?, bio = ?, email = ?, phone = ?,
			location = ?, linkedin_url = ?, github_url = ?, resume_url = ?,
			avatar_url = ?, skills = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.LinkedinURL,
		p.GithubURL, p.ResumeURL, p.AvatarURL, EncodeSkillGroups(p.Skills),
		p.UpdatedAt, p.ID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", s.classify(err))
	}
	return p, nil
}

const projectColumns = `id, title, description, long_description, image_url,
	live_url, github_url, technologies, category, featured, display_order,
	created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*Project, error) {
	var p Project
	var technologies string
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.LongDescription,
		&p.ImageURL, &p.LiveURL, &p.GithubURL, &technologies, &p.Category,
		&p.Featured, &p.Order, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Technologies = DecodeTags(technologies)
	if p.Technologies == nil {
		p.Technologies = Tags{}
	}
	return &p, nil
}

func (s *SQLite) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+projectColumns+` FROM projects
		ORDER BY featured DESC, display_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", s.classify(err))
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", s.classify(err))
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

func (s *SQLite) GetProject(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", s.classify(err))
	}
	return p, nil
}

func (s *SQLite) CreateProject(ctx context.Context, p *Project) (*Project, error) {
	if p.Order < 0 {
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&p.Order); err != nil {
			return nil, fmt.Errorf("count projects: %w", s.classify(err))
		}
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Technologies == nil {
		p.Technologies = Tags{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, long_description,
			image_url, live_url, github_url, technologies, category, featured,
			display_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Title, p.Description, p.LongDescription, p.ImageURL, p.LiveURL,
		p.GithubURL, EncodeTags(p.Technologies), p.Category, p.Featured,
		p.Order, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", s.classify(err))
	}
	return p, nil
}

func (s *SQLite) UpdateProject(ctx context.Context, p *Project) (*Project, error) {
	p.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE projects SET title = ?, description = ?, long_description = ?,
			image_url = ?, live_url = ?, github_url = ?, technologies = ?,
			category = ?, featured = ?, display_order = ?, updated_at = ?
		WHERE id = ?
	`, p.Title, p.Description, p.LongDescription, p.ImageURL, p.LiveURL,
		p.GithubURL, EncodeTags(p.Technologies), p.Category, p.Featured,
		p.Order, p.UpdatedAt, p.ID)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", s.classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	return p, nil
}

func (s *SQLite) DeleteProject(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", s.classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return nil
}

const experienceColumns = `id, company, position, description, start_date,
	end_date, location, skills, display_order, created_at, updated_at`

func scanExperience(row interface{ Scan(...any) error }) (*Experience, error) {
	var e Experience
	var skills string
	err := row.Scan(&e.ID, &e.Company, &e.Position, &e.Description,
		&e.StartDate, &e.EndDate, &e.Location, &skills, &e.Order,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Skills = DecodeTags(skills)
	if e.Skills == nil {
		e.Skills = Tags{}
	}
	return &e, nil
}

func (s *SQLite) ListExperiences(ctx context.Context) ([]Experience, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+experienceColumns+` FROM experiences
		ORDER BY display_order ASC, start_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", s.classify(err))
	}
	defer rows.Close()

	experiences := []Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", s.classify(err))
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

func (s *SQLite) CreateExperience(ctx context.Context, e *Experience) (*Experience, error) {
	if e.Order < 0 {
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&e.Order); err != nil {
			return nil, fmt.Errorf("count experiences: %w", s.classify(err))
		}
	}
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Skills == nil {
		e.Skills = Tags{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO experiences (id, company, position, description,
			start_date, end_date, location, skills, display_order,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Company, e.Position, e.Description, e.StartDate, e.EndDate,
		e.Location, EncodeTags(e.Skills), e.Order, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert experience: %w", s.classify(err))
	}
	return e, nil
}

func (s *SQLite) UpdateExperience(ctx context.Context, e *Experience) (*Experience, error) {
	e.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE experiences SET company = ?, position = ?, description = ?,
			start_date = ?, end_date = ?, location = ?, skills = ?,
			display_order = ?, updated_at = ?
		WHERE id = ?
	`, e.Company, e.Position, e.Description, e.StartDate, e.EndDate,
		e.Location, EncodeTags(e.Skills), e.Order, e.UpdatedAt, e.ID)
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", s.classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("experience %s: %w", e.ID, ErrNotFound)
	}
	return e, nil
}

func (s *SQLite) DeleteExperience(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete experience: %w", s.classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("experience %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLite) ListMessages(ctx context.Context, page, limit int) ([]Message, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count messages: %w", s.classify(err))
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, subject, body, is_read, created_at
		FROM messages ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?
	`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", s.classify(err))
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body,
			&m.IsRead, &m.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan message: %w", s.classify(err))
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}

func (s *SQLite) CreateMessage(ctx context.Context, name, email, subject, body string) (*Message, error) {
	m := &Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, subject, body, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)
	`, m.ID, m.Name, m.Email, m.Subject, m.Body, m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", s.classify(err))
	}
	return m, nil
}

func (s *SQLite) SetMessageRead(ctx context.Context, id string, read bool) (*Message, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE messages SET is_read = ? WHERE id = ?`, read, id)
	if err != nil {
		return nil, fmt.Errorf("update message: %w", s.classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	var m Message
	err = s.db.QueryRowContext(ctx, `
		SELECT id, name, email, subject, body, is_read, created_at
		FROM messages WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", s.classify(err))
	}
	return &m, nil
}

func (s *SQLite) DeleteMessage(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", s.classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLite) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&stats.Projects); err != nil {
		return nil, fmt.Errorf("count projects: %w", s.classify(err))
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiences`).Scan(&stats.Experiences); err != nil {
		return nil, fmt.Errorf("count experiences: %w", s.classify(err))
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&stats.Messages); err != nil {
		return nil, fmt.Errorf("count messages: %w", s.classify(err))
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE is_read = 0`).Scan(&stats.UnreadMessages); err != nil {
		return nil, fmt.Errorf("count unread messages: %w", s.classify(err))
	}
	return stats, nil
}
