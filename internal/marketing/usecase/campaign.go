package usecase

import (
	"context"

	"egy-discovery/internal/marketing"
	repo "egy-discovery/internal/marketing/repository"
)

// CreateCampaign stores a new Campaign. Status defaults to draft.
func (uc *implUseCase) CreateCampaign(ctx context.Context, input marketing.CreateCampaignInput) (marketing.CreateCampaignOutput, error) {
	status := input.Status
	if status == "" {
		status = marketing.DefaultCampaignStatus
	}
	targeting := input.Targeting
	if targeting == nil {
		targeting = map[string]any{}
	}

	c, err := uc.repo.CreateCampaign(ctx, marketing.Campaign{
		Platform:    input.Platform,
		ExternalID:  input.ExternalID,
		Name:        input.Name,
		Objective:   input.Objective,
		Status:      status,
		BudgetDaily: input.BudgetDaily,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Targeting:   targeting,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCampaign CreateCampaign: %v", err)
		return marketing.CreateCampaignOutput{}, err
	}

	return marketing.CreateCampaignOutput{Campaign: c}, nil
}

func (uc *implUseCase) ListCampaigns(ctx context.Context, input marketing.ListCampaignsInput) (marketing.ListCampaignsOutput, error) {
	cs, err := uc.repo.ListCampaigns(ctx, repo.ListCampaignsOptions{
		Platform: input.Platform,
		Limit:    marketing.CampaignListLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCampaigns ListCampaigns: %v", err)
		return marketing.ListCampaignsOutput{}, err
	}

	return marketing.ListCampaignsOutput{Campaigns: cs}, nil
}
