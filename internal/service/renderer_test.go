package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"venturelens.dev/reportengine/internal/constant"
	"venturelens.dev/reportengine/internal/model"
	"venturelens.dev/reportengine/internal/pkg/capability"
	"venturelens.dev/reportengine/internal/pkg/surface"
)

func testResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Benchmarks: map[string]model.Benchmark{
			"arr": {CompanyValue: null.FloatFrom(1200000), Median: 900000, Percentile: 0.7},
			"mrr": {CompanyValue: null.FloatFrom(100000), Median: 75000, Percentile: 0.6},
		},
		Score: &model.CompositeScore{Value: 0.78, Verdict: "Proceed"},
	}
}

func testRenderer(t *testing.T) (*ChartRenderer, *surface.Registry) {
	t.Helper()
	reg := surface.NewRegistry()
	t.Cleanup(reg.Close)
	return newChartRenderer(NewMapper(NewCatalog()), capability.NewProvider(), reg), reg
}

func mountAll(reg *surface.Registry) {
	reg.Mount(constant.SlotRadar, 640, 320, true)
	reg.Mount(constant.SlotBar, 640, 320, true)
	reg.Mount(constant.SlotDoughnut, 240, 240, true)
}

func TestRenderPassBuildsAllCharts(t *testing.T) {
	r, reg := testRenderer(t)
	mountAll(reg)

	retry := r.RenderPass(context.Background(), testResult())
	assert.Zero(t, retry)
	assert.Equal(t, 3, r.LiveCount())

	for _, slot := range []string{constant.SlotRadar, constant.SlotBar, constant.SlotDoughnut} {
		inst, ok := r.Chart(slot)
		require.True(t, ok, "slot %s", slot)
		assert.NotEmpty(t, inst.Document)
	}
}

func TestRenderPassReplacesWithoutLeaking(t *testing.T) {
	r, reg := testRenderer(t)
	mountAll(reg)

	require.Zero(t, r.RenderPass(context.Background(), testResult()))
	first, ok := r.Chart(constant.SlotRadar)
	require.True(t, ok)

	require.Zero(t, r.RenderPass(context.Background(), testResult()))
	assert.Equal(t, 3, r.LiveCount(), "one live instance per slot, never more")
	assert.False(t, first.Live(), "the replaced instance was destroyed")

	second, ok := r.Chart(constant.SlotRadar)
	require.True(t, ok)
	assert.NotSame(t, first, second)
}

func TestRenderPassNoDataNoCharts(t *testing.T) {
	r, reg := testRenderer(t)
	mountAll(reg)

	retry := r.RenderPass(context.Background(), &model.AnalysisResult{})
	assert.Zero(t, retry, "nothing to draw means nothing to retry")
	assert.Zero(t, r.LiveCount())
}

func TestRenderPassScoreOnly(t *testing.T) {
	r, reg := testRenderer(t)
	mountAll(reg)

	res := &model.AnalysisResult{Score: &model.CompositeScore{Value: 1.4, Verdict: "Proceed"}}
	require.Zero(t, r.RenderPass(context.Background(), res))
	assert.Equal(t, 1, r.LiveCount(), "out-of-range score is clamped, not skipped")

	_, ok := r.Chart(constant.SlotDoughnut)
	assert.True(t, ok)
}

func TestRenderPassRetriesWhenNothingMounted(t *testing.T) {
	r, _ := testRenderer(t)

	retry := r.RenderPass(context.Background(), testResult())
	assert.Equal(t, constant.RenderRetryDelay, retry)
	assert.Zero(t, r.LiveCount())
}

func TestRenderPassAbortsOnHiddenCanvas(t *testing.T) {
	r, reg := testRenderer(t)
	reg.Mount(constant.SlotRadar, 640, 320, false)
	reg.Mount(constant.SlotBar, 640, 320, true)

	retry := r.RenderPass(context.Background(), testResult())
	assert.Equal(t, constant.RenderRetryDelay, retry)
	assert.Zero(t, r.LiveCount(), "an aborted pass leaves no half-built set behind")

	// once the canvas gains layout the pass builds both sized charts; the
	// still-unmounted doughnut keeps the retry armed
	reg.SetVisibility(constant.SlotRadar, true)
	assert.Equal(t, constant.RenderRetryDelay, r.RenderPass(context.Background(), testResult()))
	assert.Equal(t, 2, r.LiveCount())
}

func TestRenderPassFallbackSizesZeroBox(t *testing.T) {
	r, reg := testRenderer(t)
	reg.Mount(constant.SlotBar, 0, 0, true)

	retry := r.RenderPass(context.Background(), testResult())
	assert.Equal(t, constant.RenderRetryDelay, retry, "the slots that never mounted keep the retry armed")
	assert.Equal(t, 1, r.LiveCount(), "a visible zero-sized canvas renders at the fallback size")

	_, ok := r.Chart(constant.SlotBar)
	assert.True(t, ok)
}
