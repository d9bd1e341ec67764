package observability_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/aegraph/pkg/domain"
	"github.com/aretw0/aegraph/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnApply(ctx, &domain.RuleEvent{Rule: "erasure", After: "(A)"})
	hooks.OnApply(ctx, &domain.RuleEvent{Rule: "erasure", After: "()"})
	hooks.OnReject(ctx, &domain.RuleEvent{Rule: "double-cut"})

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				values[f.GetName()+"/"+metric.GetLabel()[0].GetValue()] = c.GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, values["aegraph_rule_applications_total/erasure"])
	assert.Equal(t, 1.0, values["aegraph_rule_rejections_total/double-cut"])
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics()
	m.Hooks().OnApply(context.Background(), &domain.RuleEvent{Rule: "deiteration", After: "(A)"})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `aegraph_rule_applications_total{rule="deiteration"} 1`)
}
