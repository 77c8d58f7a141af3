package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"venturelens.dev/reportengine/internal/constant"
	"venturelens.dev/reportengine/internal/model"
	"venturelens.dev/reportengine/internal/pkg/capability"
	"venturelens.dev/reportengine/internal/pkg/observability"
	"venturelens.dev/reportengine/internal/pkg/surface"
)

// ChartRenderer owns the chart instance lifecycles for one view. It is the
// sole mutator of the slot bindings: replacing an entry always destroys the
// previous occupant first, and no slot ever holds two live instances.
type ChartRenderer struct {
	mapper *Mapper
	caps   *capability.Provider
	reg    *surface.Registry

	mu        sync.Mutex
	instances map[string]*model.ChartInstance
}

func newChartRenderer(mapper *Mapper, caps *capability.Provider, reg *surface.Registry) *ChartRenderer {
	return &ChartRenderer{
		mapper:    mapper,
		caps:      caps,
		reg:       reg,
		instances: make(map[string]*model.ChartInstance),
	}
}

// RenderPass executes one complete attempt to rebuild all eligible charts.
// Invoked exclusively by the scheduler while in the Rendering state. The
// returned delay is non-zero when the pass aborted on an unready canvas and
// another bounded attempt should follow. Failures never escape: missing data
// means skipped charts, a missing canvas means "not yet mounted".
func (r *ChartRenderer) RenderPass(ctx context.Context, res *model.AnalysisResult) (retry time.Duration) {
	start := time.Now()
	defer func() {
		outcome := "complete"
		if retry > 0 {
			outcome = "aborted"
			observability.RenderPassAborts.WithLabelValues().Inc()
		}
		observability.RenderPassDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	r.DestroyAll()

	series := r.mapper.BuildSeries(res)
	hasScore := res != nil && res.Score != nil
	if series.Empty() && !hasScore {
		// genuinely no data: nothing to build, nothing to retry
		return 0
	}

	engine, err := r.caps.Charts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("chart capability failed to load; aborting render pass")
		return 0
	}

	missing := false
	if !series.Empty() {
		unmounted, aborted := r.renderSized(engine, series)
		if aborted {
			return constant.RenderRetryDelay
		}
		missing = missing || unmounted
	}

	if hasScore {
		missing = r.renderDoughnut(engine, res.Score.Value) || missing
	}

	if missing {
		// a slot that should carry a chart is not mounted yet; it may still
		// appear, so another bounded attempt is worth it
		return constant.RenderRetryDelay
	}
	return 0
}

// renderSized builds the radar and bar charts. An unmounted slot marks the
// pass as incomplete; a mounted slot whose box is still unmeasurable after
// the fallback inline size aborts the entire pass.
func (r *ChartRenderer) renderSized(engine *capability.Charts, series *model.MetricSeries) (missing, aborted bool) {
	targets := []struct {
		slot  string
		kind  model.ChartKind
		build func(*model.MetricSeries, surface.Box) ([]byte, error)
	}{
		{constant.SlotRadar, model.ChartRadar, engine.Radar},
		{constant.SlotBar, model.ChartBar, engine.Bar},
	}

	for _, t := range targets {
		box, mounted := r.reg.Measure(t.slot)
		if !mounted {
			missing = true
			continue
		}
		if !box.Sized() {
			box, _ = r.reg.ApplyFallback(t.slot, constant.FallbackSlotWidth, constant.FallbackSlotHeight)
		}
		if !box.Sized() {
			// mounted but unmeasurable: building a zero-size chart would be
			// worse than retrying the whole pass
			r.DestroyAll()
			return false, true
		}

		doc, err := t.build(series, box)
		if err != nil {
			log.Warn().Err(err).Str("slot", t.slot).Msg("chart build failed; skipping slot")
			continue
		}
		r.bind(&model.ChartInstance{
			Slot:     t.slot,
			Kind:     t.kind,
			Document: doc,
			BuiltAt:  time.Now(),
		})
	}
	return missing, false
}

// renderDoughnut builds the score doughnut. An unmounted slot reports the
// pass as incomplete; an unmeasurable one is skipped without penalty, since
// the score alone never warrants aborting the sized charts.
func (r *ChartRenderer) renderDoughnut(engine *capability.Charts, score float64) (missing bool) {
	box, mounted := r.reg.Measure(constant.SlotDoughnut)
	if !mounted {
		return true
	}
	if !box.Sized() {
		box, _ = r.reg.ApplyFallback(constant.SlotDoughnut, constant.FallbackSlotHeight, constant.FallbackSlotHeight)
	}
	if !box.Sized() {
		return false
	}

	clamped := math.Max(0, math.Min(1, score))
	doc, err := engine.Doughnut(clamped, box)
	if err != nil {
		log.Warn().Err(err).Str("slot", constant.SlotDoughnut).Msg("chart build failed; skipping slot")
		return
	}
	r.bind(&model.ChartInstance{
		Slot:     constant.SlotDoughnut,
		Kind:     model.ChartDoughnut,
		Document: doc,
		BuiltAt:  time.Now(),
	})
	return false
}

// bind transfers ownership of a new instance into the registry,
// force-destroying any instance already attached to the slot.
func (r *ChartRenderer) bind(inst *model.ChartInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.instances[inst.Slot]; ok {
		prev.Destroy()
	}
	r.instances[inst.Slot] = inst
}

// Chart returns the live instance bound to a slot, if any.
func (r *ChartRenderer) Chart(slot string) (*model.ChartInstance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[slot]
	if !ok || !inst.Live() {
		return nil, false
	}
	return inst, true
}

// LiveCount reports how many chart instances are currently live.
func (r *ChartRenderer) LiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, inst := range r.instances {
		if inst.Live() {
			n++
		}
	}
	return n
}

// DestroyAll tears down every tracked instance. Idempotent.
func (r *ChartRenderer) DestroyAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for slot, inst := range r.instances {
		inst.Destroy()
		delete(r.instances, slot)
	}
}
