// Package enrichment folds optional AI commentary into a score report.
// Commentary is advisory only: it attaches under AIInsights and never
// touches category scores or the overall score.
package enrichment

import (
	"encoding/json"
	"strings"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
)

// Merge returns a report with AI commentary attached per category.
// With no commentary the input report is returned unchanged. A
// malformed per-category entry is dropped for that category only;
// commentary can never fail a report.
func Merge(report domain.ScoreReport, commentary map[string]any) domain.ScoreReport {
	if len(commentary) == 0 {
		return report
	}

	insights := make(map[string]map[string]any)
	for _, category := range domain.Categories() {
		raw, ok := lookupCategory(commentary, category)
		if !ok {
			continue
		}
		obj, ok := parseInsight(raw)
		if !ok {
			logger.Warn("enrichment: dropping unparseable commentary for %s", category)
			continue
		}
		insights[category] = obj
	}

	if len(insights) > 0 {
		report.AIInsights = insights
	}
	return report
}

// lookupCategory matches commentary keys case-insensitively; AI
// providers are not reliable about casing.
func lookupCategory(commentary map[string]any, category string) (any, bool) {
	for key, val := range commentary {
		if strings.EqualFold(strings.TrimSpace(key), category) {
			return val, true
		}
	}
	return nil, false
}

// parseInsight accepts a mapping directly, or a string holding JSON
// that decodes to a mapping. Anything else is unparseable.
func parseInsight(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		if v == nil {
			return nil, false
		}
		return v, true
	case string:
		var m map[string]any
		if err := json.Unmarshal([]byte(v), &m); err != nil || m == nil {
			return nil, false
		}
		return m, true
	default:
		return nil, false
	}
}
