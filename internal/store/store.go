// Package store persists projects to Supabase. Projects are read and
// written wholesale as one row; there is no per-slide schema to drift
// out of sync with the deck.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/nickthelegend/podio-ai/internal/config"
	"github.com/nickthelegend/podio-ai/internal/models"
)

const projectsTable = "projects"

// Store wraps the Supabase client with a read-through cache. Project
// reads during an export hit the cache; writes invalidate it.
type Store struct {
	db    *supa.Client
	cache *gocache.Cache

	supabaseURL string
	supabaseKey string
	bucket      string
}

// New builds a Store. A nil Supabase client is allowed and makes every
// persistence call report unavailability, so the slide pipeline keeps
// working without a database.
func New(db *supa.Client, cfg *config.Config) *Store {
	return &Store{
		db:          db,
		cache:       gocache.New(5*time.Minute, 10*time.Minute),
		supabaseURL: cfg.SupabaseURL,
		supabaseKey: cfg.SupabaseServiceKey,
		bucket:      cfg.StorageBucket,
	}
}

// Available reports whether persistence is configured.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// projectRow is the database shape: slides and brand ride along as JSONB.
type projectRow struct {
	ID        uuid.UUID       `json:"id"`
	UserID    *string         `json:"user_id,omitempty"`
	Topic     string          `json:"topic"`
	Style     string          `json:"style"`
	Format    string          `json:"format"`
	Brand     json.RawMessage `json:"brand,omitempty"`
	Slides    json.RawMessage `json:"slides"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toRow(p models.Project) (projectRow, error) {
	slides, err := json.Marshal(p.Slides)
	if err != nil {
		return projectRow{}, fmt.Errorf("marshalling slides: %w", err)
	}
	row := projectRow{
		ID:        p.ID,
		UserID:    p.UserID,
		Topic:     p.Topic,
		Style:     p.Style,
		Format:    string(p.Format),
		Slides:    slides,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Brand != nil {
		brand, err := json.Marshal(p.Brand)
		if err != nil {
			return projectRow{}, fmt.Errorf("marshalling brand: %w", err)
		}
		row.Brand = brand
	}
	return row, nil
}

func fromRow(row projectRow) (models.Project, error) {
	p := models.Project{
		ID:        row.ID,
		UserID:    row.UserID,
		Topic:     row.Topic,
		Style:     row.Style,
		Format:    models.AspectFormat(row.Format),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.Slides) > 0 {
		if err := json.Unmarshal(row.Slides, &p.Slides); err != nil {
			return models.Project{}, fmt.Errorf("unmarshalling slides: %w", err)
		}
	}
	if len(row.Brand) > 0 {
		var brand models.BrandKit
		if err := json.Unmarshal(row.Brand, &brand); err != nil {
			return models.Project{}, fmt.Errorf("unmarshalling brand: %w", err)
		}
		p.Brand = &brand
	}
	return p, nil
}

// SaveProject upserts the whole project row and refreshes the cache.
func (s *Store) SaveProject(p models.Project) (models.Project, error) {
	if !s.Available() {
		return models.Project{}, fmt.Errorf("persistence is not configured")
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = time.Now()

	row, err := toRow(p)
	if err != nil {
		return models.Project{}, err
	}

	body, _, err := s.db.From(projectsTable).
		Upsert(row, "id", "representation", "").
		Execute()
	if err != nil {
		return models.Project{}, fmt.Errorf("saving project: %w", err)
	}

	var rows []projectRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return models.Project{}, fmt.Errorf("processing save response: %w", err)
	}
	if len(rows) == 0 {
		return models.Project{}, fmt.Errorf("save returned no rows")
	}

	saved, err := fromRow(rows[0])
	if err != nil {
		return models.Project{}, err
	}
	s.cache.Set(saved.ID.String(), saved, gocache.DefaultExpiration)
	config.Log.WithField("project_id", saved.ID).Info("Project saved")
	return saved, nil
}

// GetProject fetches a project, serving repeated reads from the cache.
func (s *Store) GetProject(id uuid.UUID) (models.Project, error) {
	if !s.Available() {
		return models.Project{}, fmt.Errorf("persistence is not configured")
	}

	if v, ok := s.cache.Get(id.String()); ok {
		return v.(models.Project), nil
	}

	body, _, err := s.db.From(projectsTable).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return models.Project{}, fmt.Errorf("fetching project %s: %w", id, err)
	}

	var rows []projectRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return models.Project{}, fmt.Errorf("processing project data: %w", err)
	}
	if len(rows) == 0 {
		return models.Project{}, fmt.Errorf("project %s not found", id)
	}

	p, err := fromRow(rows[0])
	if err != nil {
		return models.Project{}, err
	}
	s.cache.Set(id.String(), p, gocache.DefaultExpiration)
	return p, nil
}

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects() ([]models.Project, error) {
	if !s.Available() {
		return nil, fmt.Errorf("persistence is not configured")
	}

	body, _, err := s.db.From(projectsTable).
		Select("*", "", false).
		Order("updated_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var rows []projectRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("processing project list: %w", err)
	}

	projects := make([]models.Project, 0, len(rows))
	for _, row := range rows {
		p, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// DeleteProject removes a project and drops it from the cache.
func (s *Store) DeleteProject(id uuid.UUID) error {
	if !s.Available() {
		return fmt.Errorf("persistence is not configured")
	}

	_, _, err := s.db.From(projectsTable).
		Delete("", "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}

	s.cache.Delete(id.String())
	config.Log.WithField("project_id", id).Info("Project deleted")
	return nil
}
