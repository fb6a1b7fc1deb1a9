package usecase

import (
	"context"
	"fmt"

	"jewelry-concierge/internal/lead"
	"jewelry-concierge/pkg/ghl"
)

func (uc *implUseCase) CreateContact(ctx context.Context, input lead.ContactInput) (lead.ContactOutput, error) {
	if uc.crm == nil {
		return lead.ContactOutput{}, lead.ErrUnavailable
	}

	res := uc.crm.UpsertContact(ctx, ghl.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Tags:      input.Tags,
	})
	if !res.Success {
		return lead.ContactOutput{}, fmt.Errorf("%w: %s", lead.ErrCRMRejected, res.Error)
	}

	return lead.ContactOutput{
		ContactID: extractID(res.Data, "contact"),
		Data:      res.Data,
	}, nil
}

func (uc *implUseCase) SearchContacts(ctx context.Context, query lead.ContactQuery) (lead.SearchOutput, error) {
	if uc.crm == nil {
		return lead.SearchOutput{}, lead.ErrUnavailable
	}

	res := uc.crm.GetContacts(ctx, query.Query, query.Limit, query.Offset)
	if !res.Success {
		return lead.SearchOutput{}, fmt.Errorf("%w: %s", lead.ErrCRMRejected, res.Error)
	}

	return lead.SearchOutput{Data: res.Data}, nil
}
