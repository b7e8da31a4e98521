package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/folio/internal/cache"
	"github.com/yoockh/folio/internal/models"
	"github.com/yoockh/folio/internal/normalize"
	mongorepo "github.com/yoockh/folio/internal/repositories/mongo"
	"github.com/yoockh/folio/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectService interface {
	// List resolves the displayed projects. It never fails; an unreachable store gives an empty list.
	List(ctx context.Context) []models.Project
	Create(ctx context.Context, body map[string]any) (string, error)
	Update(ctx context.Context, id string, body map[string]any) error
	Delete(ctx context.Context, id string) error
	// Available reports whether writes can reach the store.
	Available() bool
}

type ProjectOption func(*projectService)

// WithCache caches resolved lists in c for ttl. Writes through the service invalidate it.
func WithCache(c cache.Cache, ttl time.Duration) ProjectOption {
	return func(s *projectService) { s.cache = cache.NewProjectList(c, ttl) }
}

// WithClock overrides the timestamp source for created_at/updated_at.
func WithClock(now func() time.Time) ProjectOption {
	return func(s *projectService) { s.now = now }
}

type projectService struct {
	projects   mongorepo.ProjectRepository
	portfolios mongorepo.PortfolioRepository
	cache      *cache.ProjectList
	log        *logrus.Logger
	now        func() time.Time
}

// NewProjectService wires the resolver and CRUD operations. A nil projects
// repository means the store never connected; writes then fail with DB_UNAVAILABLE.
func NewProjectService(projects mongorepo.ProjectRepository, portfolios mongorepo.PortfolioRepository, log *logrus.Logger, opts ...ProjectOption) ProjectService {
	if log == nil {
		log = logrus.New()
	}
	s := &projectService{
		projects:   projects,
		portfolios: portfolios,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type embeddedStatus int

const (
	embeddedEmpty embeddedStatus = iota
	embeddedFound
	embeddedFailed
)

// embeddedLookup is the outcome of reading projects out of the portfolio document.
type embeddedLookup struct {
	status embeddedStatus
	items  []any
	err    error
}

func (s *projectService) lookupEmbedded(ctx context.Context) embeddedLookup {
	if s.portfolios == nil {
		return embeddedLookup{status: embeddedEmpty}
	}
	doc, err := s.portfolios.Latest(ctx)
	if errors.Is(err, utils.ErrNotFound) {
		return embeddedLookup{status: embeddedEmpty}
	}
	if err != nil {
		return embeddedLookup{status: embeddedFailed, err: err}
	}
	items, ok := normalize.AsList(doc["projects"])
	if !ok || len(items) == 0 {
		return embeddedLookup{status: embeddedEmpty}
	}
	return embeddedLookup{status: embeddedFound, items: items}
}

// resolve reports ok=false when the list is a degraded empty result.
func (s *projectService) resolve(ctx context.Context) ([]models.Project, bool) {
	emb := s.lookupEmbedded(ctx)
	switch emb.status {
	case embeddedFound:
		return normalize.Projects(emb.items), true
	case embeddedFailed:
		s.log.WithError(emb.err).Warn("embedded projects lookup failed, falling back to projects collection")
	}

	if s.projects == nil {
		return []models.Project{}, false
	}
	docs, err := s.projects.FindAll(ctx)
	if err != nil {
		s.log.WithError(err).Error("fetch projects collection")
		return []models.Project{}, false
	}
	items := make([]any, len(docs))
	for i, d := range docs {
		items[i] = d
	}
	return normalize.Projects(items), true
}

func (s *projectService) List(ctx context.Context) []models.Project {
	if s.cache != nil {
		cached, hit, err := s.cache.Load(ctx)
		switch {
		case err != nil:
			s.log.WithError(err).Warn("project cache read")
		case hit:
			return cached
		}
	}

	out, ok := s.resolve(ctx)
	if ok && s.cache != nil {
		if err := s.cache.Store(ctx, out); err != nil {
			s.log.WithError(err).Warn("project cache write")
		}
	}
	return out
}

func (s *projectService) Create(ctx context.Context, body map[string]any) (string, error) {
	const op = "ProjectService.Create"

	if s.projects == nil {
		return "", DatabaseUnavailable(op)
	}
	for _, f := range models.RequiredProjectFields {
		if !normalize.Truthy(body[f]) {
			return "", utils.E(utils.CodeInvalidArgument, op, f+" is required", nil)
		}
	}

	now := s.now()
	doc := &models.ProjectDocument{
		Title:        body["title"],
		Category:     body["category"],
		Description:  body["description"],
		Technologies: body["technologies"],
		Image:        valueOr(body, "image", models.DefaultProjectImage),
		GithubURL:    valueOr(body, "github_url", ""),
		LiveURL:      valueOr(body, "live_url", ""),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.projects.Insert(ctx, doc)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "Error adding project: "+err.Error(), err)
	}
	s.invalidate(ctx)
	return id.Hex(), nil
}

func (s *projectService) Update(ctx context.Context, id string, body map[string]any) error {
	const op = "ProjectService.Update"

	if s.projects == nil {
		return DatabaseUnavailable(op)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Invalid project ID", err)
	}

	set := bson.M{}
	for _, f := range models.ProjectFields {
		if v, ok := body[f]; ok && v != nil {
			set[f] = v
		}
	}
	set["updated_at"] = s.now()

	if err := s.projects.Update(ctx, oid, set); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Error updating project: "+err.Error(), err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	const op = "ProjectService.Delete"

	if s.projects == nil {
		return DatabaseUnavailable(op)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Invalid project ID", err)
	}

	if err := s.projects.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Error deleting project: "+err.Error(), err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *projectService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WithError(err).Warn("project cache invalidate")
	}
}

func (s *projectService) Available() bool { return s.projects != nil }

// DatabaseUnavailable is the error every write answers with while the store is unconnected.
func DatabaseUnavailable(op string) error {
	return utils.E(utils.CodeDBUnavailable, op, "Database not connected", nil)
}

// valueOr returns body[key] unless it is missing or null.
func valueOr(body map[string]any, key string, def any) any {
	if v, ok := body[key]; ok && v != nil {
		return v
	}
	return def
}
