package service

import (
	"time"

	"venturelens.dev/reportengine/internal/pkg/bininfo"
)

type Health struct {
	startedAt time.Time
	views     *ViewManager
}

func NewHealth(views *ViewManager) *Health {
	return &Health{
		startedAt: time.Now(),
		views:     views,
	}
}

type HealthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	LiveViews int    `json:"liveViews"`
}

func (s *Health) Status() *HealthStatus {
	return &HealthStatus{
		Status:    "ok",
		Version:   bininfo.Version,
		Uptime:    time.Since(s.startedAt).Round(time.Second).String(),
		LiveViews: s.views.Count(),
	}
}
