package usecase

import (
	"context"

	"egy-discovery/internal/agent"
	"egy-discovery/pkg/extractor"
)

func (uc *implUseCase) runScrape(ctx context.Context, prompt string, params agent.Params) agent.Result {
	if !uc.cfg.EnableWebScraping {
		return agent.Result{
			"error":  ErrMsgScrapeDisabled,
			"agent":  string(agent.Scrape),
			"status": StatusDisabled,
		}
	}

	url := firstNonEmpty(stringParam(params, ParamURL), urlPattern.FindString(prompt))
	if url == "" {
		return agent.Result{
			"error":  ErrMsgNoURL,
			"agent":  string(agent.Scrape),
			"prompt": prompt,
		}
	}

	page := uc.extractor.Extract(ctx, url)
	if !page.OK() {
		uc.l.Warnf(ctx, "%s: url=%s: %s", LogPrefixScrape, url, page.Error)
		return agent.Result{
			"url":    url,
			"error":  page.Error,
			"agent":  string(agent.Scrape),
			"status": StatusFailed,
		}
	}

	baseline := func() agent.Result {
		return agent.Result{
			"url":            url,
			"title":          page.Title,
			"description":    page.Description,
			"extract":        page.Excerpt,
			"agent":          string(agent.Scrape),
			"status":         StatusSuccess,
			"content_length": page.SourceLength,
			"ai_enhanced":    false,
		}
	}

	d := uc.directive(ctx, RoleScrape, tmplScrape, map[string]any{
		"url":         url,
		"title":       page.Title,
		"description": page.Description,
		"excerpt":     extractor.Truncate(page.Excerpt, ScrapeAugmentRunes),
	}, 600, 0.3)
	res, _ := uc.withOptionalAugmentation(ctx, agent.Scrape, baseline, d, func(base agent.Result, text string) agent.Result {
		base["ai_insights"] = text
		base["ai_enhanced"] = true
		return base
	})
	return res
}
