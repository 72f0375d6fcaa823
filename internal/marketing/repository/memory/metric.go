package memory

import (
	"context"
	"sort"

	"egy-discovery/internal/marketing"
	repo "egy-discovery/internal/marketing/repository"
)

// CreateMetric assigns an ID and creation time to m and stores it.
func (r *implRepository) CreateMetric(ctx context.Context, m marketing.Metric) (marketing.Metric, error) {
	m.ID = r.seq.Next()
	m.CreatedAt = r.now()

	r.mu.Lock()
	r.metrics = append(r.metrics, m)
	r.mu.Unlock()

	return m, nil
}

func (r *implRepository) ListMetrics(ctx context.Context, opt repo.ListMetricsOptions) ([]marketing.Metric, error) {
	r.mu.RLock()
	out := make([]marketing.Metric, 0, len(r.metrics))
	for _, m := range r.metrics {
		if opt.CampaignID != nil && (m.CampaignID == nil || *m.CampaignID != *opt.CampaignID) {
			continue
		}
		out = append(out, m)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}
