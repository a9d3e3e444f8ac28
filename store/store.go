// Package store defines the portfolio entities and the backing store interface.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable is returned when the database cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// Profile is the singleton record describing the site owner. At most one
// profile row exists; callers get a default stub when none has been written.
type Profile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Bio         string      `json:"bio"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Location    string      `json:"location,omitempty"`
	LinkedinURL string      `json:"linkedinUrl,omitempty"`
	GithubURL   string      `json:"githubUrl,omitempty"`
	ResumeURL   string      `json:"resumeUrl,omitempty"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
	Skills      SkillGroups `json:"skills,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Project is one portfolio entry.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	LiveURL         string    `json:"liveUrl,omitempty"`
	GithubURL       string    `json:"githubUrl,omitempty"`
	Technologies    Tags      `json:"technologies"`
	Category        string    `json:"category,omitempty"`
	Featured        bool      `json:"featured"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Experience is a resume-style employment history entry. Dates are plain
// "2006-01-02" strings; an empty EndDate means the position is current.
type Experience struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate,omitempty"`
	Location    string    `json:"location,omitempty"`
	Skills      Tags      `json:"skills"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Message is a contact-form submission awaiting admin review.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats holds the entity counts shown on the admin dashboard.
type Stats struct {
	Projects       int `json:"projects"`
	Experiences    int `json:"experiences"`
	Messages       int `json:"messages"`
	UnreadMessages int `json:"unreadMessages"`
}

// Store is the interface all backing stores implement. Every method is a
// single independent transaction; there are no cross-entity invariants.
type Store interface {
	// GetProfile returns the singleton profile, or nil if none exists yet.
	GetProfile(ctx context.Context) (*Profile, error)

	// UpsertProfile creates the profile if absent, else updates it in place.
	UpsertProfile(ctx context.Context, p *Profile) (*Profile, error)

	// ListProjects returns all projects, featured first, then by display order.
	ListProjects(ctx context.Context) ([]Project, error)

	// GetProject returns one project by id.
	GetProject(ctx context.Context, id string) (*Project, error)

	// CreateProject assigns a new id and persists the project. A negative
	// Order means "append": it defaults to the current project count.
	CreateProject(ctx context.Context, p *Project) (*Project, error)

	// UpdateProject replaces the stored project with the given id.
	UpdateProject(ctx context.Context, p *Project) (*Project, error)

	// DeleteProject removes a project by id.
	DeleteProject(ctx context.Context, id string) error

	// ListExperiences returns all experiences by display order.
	ListExperiences(ctx context.Context) ([]Experience, error)

	// CreateExperience assigns a new id and persists the experience.
	// A negative Order appends, like CreateProject.
	CreateExperience(ctx context.Context, e *Experience) (*Experience, error)

	// UpdateExperience replaces the stored experience with the given id.
	UpdateExperience(ctx context.Context, e *Experience) (*Experience, error)

	// DeleteExperience removes an experience by id.
	DeleteExperience(ctx context.Context, id string) error

	// ListMessages returns one page of messages, newest first, plus the
	// total message count.
	ListMessages(ctx context.Context, page, limit int) ([]Message, int, error)

	// CreateMessage stores a new unread contact message stamped now.
	CreateMessage(ctx context.Context, name, email, subject, body string) (*Message, error)

	// SetMessageRead flips the read flag on one message.
	SetMessageRead(ctx context.Context, id string, read bool) (*Message, error)

	// DeleteMessage removes a message by id.
	DeleteMessage(ctx context.Context, id string) error

	// GetStats returns entity counts for the admin dashboard.
	GetStats(ctx context.Context) (*Stats, error)

	Close() error
}
