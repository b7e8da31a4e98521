package cache

import (
	"context"
	"time"

	"github.com/yoockh/folio/internal/models"
)

// ProjectList caches the resolved project list under ProjectsKey.
type ProjectList struct {
	c   Cache
	ttl time.Duration
}

// NewProjectList returns nil when c is nil, so callers can keep an optional cache
// as a plain pointer. A non-positive ttl falls back to DefaultProjectsTTL.
func NewProjectList(c Cache, ttl time.Duration) *ProjectList {
	if c == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultProjectsTTL
	}
	return &ProjectList{c: c, ttl: ttl}
}

func (p *ProjectList) TTL() time.Duration { return p.ttl }

// Load returns the cached list. A cached null decodes to an empty list.
func (p *ProjectList) Load(ctx context.Context) ([]models.Project, bool, error) {
	var out []models.Project
	hit, err := p.c.GetJSON(ctx, ProjectsKey, &out)
	if err != nil || !hit {
		return nil, false, err
	}
	if out == nil {
		out = []models.Project{}
	}
	return out, true, nil
}

func (p *ProjectList) Store(ctx context.Context, list []models.Project) error {
	return p.c.SetJSON(ctx, ProjectsKey, list, p.ttl)
}

func (p *ProjectList) Invalidate(ctx context.Context) error {
	return p.c.Del(ctx, ProjectsKey)
}
