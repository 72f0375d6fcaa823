package memory

import (
	"context"
	"sort"

	"egy-discovery/internal/marketing"
	repo "egy-discovery/internal/marketing/repository"
)

// CreateCampaign assigns an ID and creation time to c and stores it.
func (r *implRepository) CreateCampaign(ctx context.Context, c marketing.Campaign) (marketing.Campaign, error) {
	c.ID = r.seq.Next()
	c.CreatedAt = r.now()

	r.mu.Lock()
	r.campaigns = append(r.campaigns, c)
	r.mu.Unlock()

	return c, nil
}

func (r *implRepository) ListCampaigns(ctx context.Context, opt repo.ListCampaignsOptions) ([]marketing.Campaign, error) {
	r.mu.RLock()
	out := make([]marketing.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if opt.Platform != "" && c.Platform != opt.Platform {
			continue
		}
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}
