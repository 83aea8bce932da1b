package service

import (
	"context"

	"github.com/guillenLawn/bodega-backend/repository"
)

type StatsService struct {
	stats repository.EstadisticasRepository
}

func NewStatsService(stats repository.EstadisticasRepository) *StatsService {
	return &StatsService{stats: stats}
}

func (s *StatsService) Resumen(ctx context.Context) (*repository.Estadisticas, error) {
	return s.stats.Resumen(ctx)
}
