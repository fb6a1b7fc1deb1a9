package usecase

import (
	"context"
	"fmt"

	"jewelry-concierge/internal/lead"
	"jewelry-concierge/pkg/ghl"
)

func (uc *implUseCase) CreateOpportunity(ctx context.Context, input lead.OpportunityInput) (lead.OpportunityOutput, error) {
	if uc.crm == nil {
		return lead.OpportunityOutput{}, lead.ErrUnavailable
	}

	pipelineID, stageID := input.PipelineID, input.StageID
	if pipelineID == "" {
		var err error
		pipelineID, stageID, err = uc.resolvePipeline(ctx)
		if err != nil {
			return lead.OpportunityOutput{}, err
		}
	}

	res := uc.crm.CreateOpportunity(ctx, ghl.Opportunity{
		Name:          input.Name,
		ContactID:     input.ContactID,
		PipelineID:    pipelineID,
		StageID:       stageID,
		MonetaryValue: input.MonetaryValue,
		Status:        "open",
	})
	if !res.Success {
		return lead.OpportunityOutput{}, fmt.Errorf("%w: %s", lead.ErrCRMRejected, res.Error)
	}

	return lead.OpportunityOutput{
		OpportunityID: extractID(res.Data, "opportunity"),
		Data:          res.Data,
	}, nil
}

func (uc *implUseCase) SearchOpportunities(ctx context.Context, query lead.OpportunityQuery) (lead.SearchOutput, error) {
	if uc.crm == nil {
		return lead.SearchOutput{}, lead.ErrUnavailable
	}

	res := uc.crm.SearchOpportunity(ctx, ghl.OpportunityQuery{
		PipelineID: query.PipelineID,
		StageID:    query.StageID,
		ContactID:  query.ContactID,
		Query:      query.Query,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
	if !res.Success {
		return lead.SearchOutput{}, fmt.Errorf("%w: %s", lead.ErrCRMRejected, res.Error)
	}

	return lead.SearchOutput{Data: res.Data}, nil
}

// resolvePipeline picks the pipeline and stage for a new opportunity:
// the configured pair when set, otherwise the first pipeline and its
// first stage as reported by the CRM.
func (uc *implUseCase) resolvePipeline(ctx context.Context) (string, string, error) {
	if uc.cfg.PipelineID != "" {
		return uc.cfg.PipelineID, uc.cfg.StageID, nil
	}

	res := uc.crm.GetPipelines(ctx)
	if !res.Success {
		return "", "", fmt.Errorf("%w: %s", lead.ErrCRMRejected, res.Error)
	}

	pipelineID, stageID := firstPipeline(res.Data)
	if pipelineID == "" {
		return "", "", fmt.Errorf("%w: no pipelines available", lead.ErrCRMRejected)
	}
	return pipelineID, stageID, nil
}
