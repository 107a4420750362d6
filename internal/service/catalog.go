package service

import (
	"context"

	"github.com/tecaikids/website/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CatalogSource is the part of the backend client the catalog needs.
type CatalogSource interface {
	FetchPrograms(ctx context.Context) ([]models.Program, error)
	FetchProgram(ctx context.Context, pt models.ProgramType) (*models.Program, error)
	FetchStats(ctx context.Context) (models.Stats, error)
}

// Catalog is the read-only data every page section is built from.
type Catalog struct {
	Programs []models.Program
	Stats    models.Stats
}

type CatalogService struct {
	src CatalogSource
	log *zap.Logger
}

func NewCatalogService(src CatalogSource, log *zap.Logger) *CatalogService {
	return &CatalogService{src: src, log: log}
}

// Load fetches programs and stats concurrently and returns them together.
// If either call fails the whole catalog falls back to empty programs and
// empty stats; a partial result is never returned.
func (s *CatalogService) Load(ctx context.Context) Catalog {
	var programs []models.Program
	var stats models.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.src.FetchPrograms(gctx)
		if err != nil {
			return err
		}
		programs = p
		return nil
	})
	g.Go(func() error {
		st, err := s.src.FetchStats(gctx)
		if err != nil {
			return err
		}
		stats = st
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("catalog fetch failed, using defaults", zap.Error(err))
		return Catalog{Programs: []models.Program{}}
	}
	if programs == nil {
		programs = []models.Program{}
	}
	return Catalog{Programs: programs, Stats: stats}
}

// Program looks pt up in programs, asking the backend when it is not listed.
func (s *CatalogService) Program(ctx context.Context, programs []models.Program, pt models.ProgramType) (*models.Program, bool) {
	for i := range programs {
		if programs[i].ProgramType == pt {
			return &programs[i], true
		}
	}
	p, err := s.src.FetchProgram(ctx, pt)
	if err != nil {
		s.log.Debug("program lookup failed", zap.String("program_type", string(pt)), zap.Error(err))
		return nil, false
	}
	return p, true
}
