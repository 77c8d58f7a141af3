package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/xid"
	"go.uber.org/fx"

	"venturelens.dev/reportengine/internal/pkg/capability"
	"venturelens.dev/reportengine/internal/pkg/observability"
	"venturelens.dev/reportengine/internal/pkg/rderr"
	"venturelens.dev/reportengine/internal/pkg/surface"
	"venturelens.dev/reportengine/internal/repo"
)

// View is one live report session: the analysis result it visualizes, the
// canvas slots its client has mounted, and the scheduler/renderer pair that
// keeps the charts in sync with both.
type View struct {
	ID       string
	ResultID string

	Registry  *surface.Registry
	Scheduler *RenderScheduler
	Renderer  *ChartRenderer

	closed atomic.Bool
}

// Closed reports whether the view has been torn down.
func (v *View) Closed() bool {
	return v.closed.Load()
}

// ViewManager creates and tears down views. One view per embedding client;
// the manager survives for the process lifetime and closes every remaining
// view on shutdown.
type ViewManager struct {
	mapper  *Mapper
	caps    *capability.Provider
	results *repo.Result

	mu    sync.RWMutex
	views map[string]*View
}

func NewViewManager(lc fx.Lifecycle, mapper *Mapper, caps *capability.Provider, results *repo.Result) *ViewManager {
	m := &ViewManager{
		mapper:  mapper,
		caps:    caps,
		results: results,
		views:   make(map[string]*View),
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			m.TeardownAll()
			return nil
		},
	})
	return m
}

// Create opens a view over a stored analysis result and kicks off the first
// render pass. The result must already exist in the result store.
func (m *ViewManager) Create(resultID string) (*View, error) {
	if _, ok := m.results.Get(resultID); !ok {
		return nil, rderr.ErrNotFound.Msg("analysis result not found: %s", resultID)
	}
	// a fresh view counts as activity on the result
	m.results.Touch(resultID)

	reg := surface.NewRegistry()
	v := &View{
		ID:       xid.New().String(),
		ResultID: resultID,
		Registry: reg,
	}
	v.Renderer = newChartRenderer(m.mapper, m.caps, reg)
	v.Scheduler = NewRenderScheduler(m.renderFunc(v))

	m.mu.Lock()
	m.views[v.ID] = v
	m.mu.Unlock()
	observability.LiveViews.Inc()

	go m.observe(v)
	v.Scheduler.Request(0)
	return v, nil
}

func (m *ViewManager) renderFunc(v *View) RenderFunc {
	return func() time.Duration {
		if v.Closed() {
			return 0
		}
		res, ok := m.results.Get(v.ResultID)
		if !ok {
			return 0
		}
		return v.Renderer.RenderPass(context.Background(), res)
	}
}

// observe forwards surface events into the scheduler. Events only matter
// while no chart is live yet: mounted charts already carry their geometry,
// so a resize with live instances needs no rebuild.
func (m *ViewManager) observe(v *View) {
	for range v.Registry.Events() {
		if v.Closed() {
			return
		}
		if v.Renderer.LiveCount() == 0 {
			v.Scheduler.Request(0)
		}
	}
}

// Get returns a live view by ID.
func (m *ViewManager) Get(id string) (*View, error) {
	m.mu.RLock()
	v, ok := m.views[id]
	m.mu.RUnlock()
	if !ok || v.Closed() {
		return nil, rderr.ErrNotFound.Msg("view not found: %s", id)
	}
	return v, nil
}

// Count reports the number of open views.
func (m *ViewManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.views)
}

// Rerender schedules a fresh pass on every view bound to a result. Called
// after the stored result changes.
func (m *ViewManager) Rerender(resultID string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.views {
		if v.ResultID == resultID && !v.Closed() {
			v.Scheduler.Request(0)
		}
	}
}

// Teardown closes a view and releases every chart instance it owns.
// Idempotent; closing an unknown view is a no-op error.
func (m *ViewManager) Teardown(id string) error {
	m.mu.Lock()
	v, ok := m.views[id]
	delete(m.views, id)
	m.mu.Unlock()
	if !ok {
		return rderr.ErrNotFound.Msg("view not found: %s", id)
	}
	m.teardown(v)
	return nil
}

// TeardownAll closes every remaining view.
func (m *ViewManager) TeardownAll() {
	m.mu.Lock()
	views := make([]*View, 0, len(m.views))
	for id, v := range m.views {
		views = append(views, v)
		delete(m.views, id)
	}
	m.mu.Unlock()
	for _, v := range views {
		m.teardown(v)
	}
}

func (m *ViewManager) teardown(v *View) {
	if !v.closed.CompareAndSwap(false, true) {
		return
	}
	v.Scheduler.Close()
	v.Registry.Close()
	v.Renderer.DestroyAll()
	observability.LiveViews.Dec()
}
