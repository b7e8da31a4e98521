package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/folio/internal/models"
	"github.com/yoockh/folio/internal/normalize"
	mongorepo "github.com/yoockh/folio/internal/repositories/mongo"
	"github.com/yoockh/folio/internal/utils"
)

type PortfolioService interface {
	// Latest is the raw latest portfolio document; ok=false when absent or unreadable.
	Latest(ctx context.Context) (models.Portfolio, bool)
	// Assemble is Latest (or an empty document) with display defaults and the resolved projects.
	Assemble(ctx context.Context) models.Portfolio
	// Full is Assemble, failing with NOT_FOUND when no portfolio document exists.
	Full(ctx context.Context) (models.Portfolio, error)
	// Probe reports whether a store is configured and, if so, whether a trivial read succeeds.
	Probe(ctx context.Context) (connected bool, err error)
}

type portfolioService struct {
	portfolios mongorepo.PortfolioRepository
	projects   ProjectService
	log        *logrus.Logger
}

func NewPortfolioService(portfolios mongorepo.PortfolioRepository, projects ProjectService, log *logrus.Logger) PortfolioService {
	if log == nil {
		log = logrus.New()
	}
	return &portfolioService{portfolios: portfolios, projects: projects, log: log}
}

func (s *portfolioService) Latest(ctx context.Context) (models.Portfolio, bool) {
	if s.portfolios == nil {
		return nil, false
	}
	doc, err := s.portfolios.Latest(ctx)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			s.log.WithError(err).Error("fetch portfolio")
		}
		return nil, false
	}
	return models.Portfolio(doc), true
}

func (s *portfolioService) Assemble(ctx context.Context) models.Portfolio {
	doc, ok := s.Latest(ctx)
	if !ok {
		doc = models.Portfolio{}
	}
	return s.assemble(ctx, doc)
}

func (s *portfolioService) Full(ctx context.Context) (models.Portfolio, error) {
	const op = "PortfolioService.Full"

	doc, ok := s.Latest(ctx)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, "Portfolio not found", nil)
	}
	return s.assemble(ctx, doc), nil
}

func (s *portfolioService) Probe(ctx context.Context) (bool, error) {
	if s.portfolios == nil {
		return false, nil
	}
	return true, s.portfolios.Probe(ctx)
}

func (s *portfolioService) assemble(ctx context.Context, doc models.Portfolio) models.Portfolio {
	for _, d := range models.PortfolioDefaults {
		if !normalize.Truthy(doc[d.Key]) {
			doc[d.Key] = d.Value
		}
	}
	doc["projects"] = s.projects.List(ctx)
	return doc
}
