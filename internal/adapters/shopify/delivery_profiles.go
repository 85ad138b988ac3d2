package shopify

import (
	"context"
	"errors"
	"strings"

	"delivery-profile-assigner/internal/adapters/shopify/dto"
	"delivery-profile-assigner/internal/domain/model"
)

const deliveryProfilesQuery = `
query deliveryProfiles($first: Int!) {
	deliveryProfiles(first: $first) {
		edges { node { id name } }
	}
}`

const deliveryProfileUpdateMutation = `
mutation AssignVariants($id: ID!, $profile: DeliveryProfileInput!) {
	deliveryProfileUpdate(id: $id, profile: $profile) {
		profile { id name }
		userErrors { field message }
	}
}`

type DeliveryProfileService interface {
	ListDeliveryProfiles(ctx context.Context, first int) ([]model.DeliveryProfile, error)
	AssociateVariants(ctx context.Context, profileID string, variantIDs []string) (model.DeliveryProfile, error)
}

func (c *Client) ListDeliveryProfiles(ctx context.Context, first int) ([]model.DeliveryProfile, error) {
	if c == nil {
		return nil, errors.New("shopify client is nil")
	}
	if first <= 0 {
		first = 5
	}

	var data dto.DeliveryProfilesQueryData
	if err := c.graphqlRequest(ctx, deliveryProfilesQuery, map[string]any{"first": first}, &data); err != nil {
		return nil, err
	}
	if data.DeliveryProfiles == nil {
		return nil, errors.New("shopify deliveryProfiles returned no connection")
	}
	profiles := make([]model.DeliveryProfile, 0, len(data.DeliveryProfiles.Edges))
	for _, edge := range data.DeliveryProfiles.Edges {
		profiles = append(profiles, model.DeliveryProfile{ID: edge.Node.ID, Name: edge.Node.Name})
	}
	return profiles, nil
}

// AssociateVariants adds variantIDs to the profile in one deliveryProfileUpdate.
// Variants already in the profile and not listed are left untouched.
func (c *Client) AssociateVariants(ctx context.Context, profileID string, variantIDs []string) (model.DeliveryProfile, error) {
	if c == nil {
		return model.DeliveryProfile{}, errors.New("shopify client is nil")
	}
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return model.DeliveryProfile{}, errors.New("shopify delivery profile id is required")
	}
	if len(variantIDs) == 0 {
		return model.DeliveryProfile{ID: profileID}, nil
	}

	var data dto.DeliveryProfileUpdateData
	if err := c.graphqlRequest(ctx, deliveryProfileUpdateMutation, map[string]any{
		"id": profileID,
		"profile": map[string]any{
			"variantsToAssociate": variantIDs,
		},
	}, &data); err != nil {
		return model.DeliveryProfile{}, err
	}
	payload := data.DeliveryProfileUpdate
	if payload == nil {
		return model.DeliveryProfile{}, errors.New("shopify deliveryProfileUpdate returned no payload")
	}
	if err := userErrorsToDetailedError("deliveryProfileUpdate", payload.UserErrors); err != nil {
		return model.DeliveryProfile{}, err
	}

	profile := model.DeliveryProfile{ID: profileID}
	if p := payload.Profile; p != nil {
		if p.ID != "" {
			profile.ID = p.ID
		}
		profile.Name = p.Name
	}
	return profile, nil
}
