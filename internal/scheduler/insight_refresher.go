// Package scheduler runs the periodic industry-insight refresh.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/robfig/cron/v3"
)

type InsightRefresher struct {
	insights *usecase.InsightUsecase
	cron     *cron.Cron
	spec     string
}

// NewInsightRefresher scans for stale insights on the given cron spec. The
// scan itself decides which rows are due, so an hourly spec is fine for a
// 7-day refresh horizon.
func NewInsightRefresher(insights *usecase.InsightUsecase, spec string) *InsightRefresher {
	if spec == "" {
		spec = "@hourly"
	}
	return &InsightRefresher{
		insights: insights,
		cron:     cron.New(),
		spec:     spec,
	}
}

func (s *InsightRefresher) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if err := s.insights.RefreshDueInsights(ctx); err != nil {
			log.Printf("insight refresh run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	return nil
}

func (s *InsightRefresher) Stop() {
	s.cron.Stop()
}
