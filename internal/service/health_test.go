package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturelens.dev/reportengine/internal/pkg/testentry"
	"venturelens.dev/reportengine/internal/service"
)

func TestHealthStatus(t *testing.T) {
	var health *service.Health
	testentry.Populate(t, &health)

	st := health.Status()
	require.NotNil(t, st)
	assert.Equal(t, "ok", st.Status)
	assert.NotEmpty(t, st.Version)
	assert.NotEmpty(t, st.Uptime)
	assert.Zero(t, st.LiveViews)
}
