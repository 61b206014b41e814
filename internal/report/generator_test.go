// internal/report/generator_test.go
package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"benchmark-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

// fakeRenderer records render calls and can be told to fail for specific
// companies.
type fakeRenderer struct {
	calls    []string
	failFor  map[string]error
	lastHTML string
}

func (f *fakeRenderer) RenderPDF(ctx context.Context, html, outputPath string) error {
	f.calls = append(f.calls, outputPath)
	f.lastHTML = html
	for needle, err := range f.failFor {
		if strings.Contains(html, needle) {
			return err
		}
	}
	return nil
}

func newTestGenerator(t *testing.T) (*Generator, *fakeRenderer) {
	t.Helper()
	calc, composer := newTestComposer(t)
	renderer := &fakeRenderer{failFor: map[string]error{}}
	gen := NewGenerator(calc, composer, renderer, t.TempDir(), newTestLogger(t))
	return gen, renderer
}

// ==========================
// Filename Tests
// ==========================

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Acme", "acme"},
		{"spaces collapse", "Acme Fabrication Co", "acme-fabrication-co"},
		{"symbol runs collapse", "Smith & Sons, Inc.", "smith-sons-inc"},
		{"leading and trailing trimmed", "  --Acme--  ", "acme"},
		{"unicode stripped", "Müller GmbH", "m-ller-gmbh"},
		{"digits kept", "24/7 Logistics", "24-7-logistics"},
		{"empty", "", "report"},
		{"all symbols", "&&&", "report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.input))
		})
	}
}

func TestGenerate_FilenamesUniquePerInvocation(t *testing.T) {
	gen, _ := newTestGenerator(t)
	resp := createTestResponse()

	first := gen.Generate(context.Background(), resp)
	second := gen.Generate(context.Background(), resp)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.NotEqual(t, first.Filename, second.Filename)
	assert.Contains(t, first.Filename, "acme-fabrication")
	assert.True(t, strings.HasSuffix(first.Filename, ".pdf"))
}

// ==========================
// Generate Tests
// ==========================

func TestGenerate_Success(t *testing.T) {
	gen, renderer := newTestGenerator(t)
	resp := createTestResponse()

	meta := gen.Generate(context.Background(), resp)

	assert.True(t, meta.Success)
	assert.Equal(t, "resp-001", meta.ResponseID)
	assert.Equal(t, "Acme Fabrication", meta.CompanyName)
	assert.NotEmpty(t, meta.ReportID)
	assert.NotEmpty(t, meta.Path)
	assert.Equal(t, 2, meta.RecommendationsCount)
	assert.NotEmpty(t, meta.PeerGroup)
	assert.Empty(t, meta.Error)

	require.Len(t, renderer.calls, 1)
	assert.Contains(t, renderer.lastHTML, "Acme Fabrication")
}

func TestGenerate_RenderFailureSurfacesInMeta(t *testing.T) {
	gen, renderer := newTestGenerator(t)
	renderer.failFor["Acme Fabrication"] = errors.New("chrome crashed")

	meta := gen.Generate(context.Background(), createTestResponse())

	assert.False(t, meta.Success)
	assert.Equal(t, "resp-001", meta.ResponseID)
	assert.Contains(t, meta.Error, "chrome crashed")
	assert.Empty(t, meta.ReportID)
	assert.Empty(t, meta.Filename)
}

// ==========================
// Batch Tests
// ==========================

func TestGenerateBatch_PerItemIsolation(t *testing.T) {
	gen, renderer := newTestGenerator(t)
	renderer.failFor["Bad Actor"] = errors.New("render timed out")

	responses := []*models.SurveyResponse{}
	for _, company := range []string{"First Corp", "Bad Actor", "Third Corp"} {
		resp := createTestResponse()
		resp.ID = "resp-" + slugify(company)
		resp.CompanyName = company
		responses = append(responses, resp)
	}

	summary := gen.GenerateBatch(context.Background(), responses)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 3)

	// The failure stays attributable and does not stop later items.
	assert.True(t, summary.Results[0].Success)
	assert.False(t, summary.Results[1].Success)
	assert.Equal(t, "resp-bad-actor", summary.Results[1].ResponseID)
	assert.True(t, summary.Results[2].Success)
	assert.Len(t, renderer.calls, 3)
}

func TestGenerateBatch_Empty(t *testing.T) {
	gen, _ := newTestGenerator(t)

	summary := gen.GenerateBatch(context.Background(), nil)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.Results)
}

// ==========================
// Preview Tests
// ==========================

func TestGeneratePreview_NoRenderCall(t *testing.T) {
	gen, renderer := newTestGenerator(t)

	preview := gen.GeneratePreview(createTestResponse())

	assert.Empty(t, renderer.calls)
	assert.Equal(t, "resp-001", preview.ResponseID)
	assert.Equal(t, "manufacturing", preview.PeerGroup.IndustryKey)
	assert.Len(t, preview.Findings, 4)
	assert.Equal(t, "2025.1", preview.DatasetVersion)

	require.Len(t, preview.Recommendations, 2)
	assert.Equal(t, 1, preview.Recommendations[0].Priority)
	assert.Equal(t, "Evaluate Trade Credit Insurance", preview.Recommendations[0].Title)
	assert.NotEmpty(t, preview.Recommendations[0].Reason)
	assert.Equal(t, 3, preview.Recommendations[1].Priority)
}
