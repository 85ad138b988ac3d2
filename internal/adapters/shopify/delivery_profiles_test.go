package shopify

import (
	"context"
	"strings"
	"testing"

	"delivery-profile-assigner/internal/domain/model"

	"github.com/google/go-cmp/cmp"
)

func TestListDeliveryProfiles(t *testing.T) {
	fake, client := newFakeAdmin(t, ok(`{"data":{"deliveryProfiles":{"edges":[
		{"node":{"id":"gid://shopify/DeliveryProfile/1","name":"General profile"}},
		{"node":{"id":"gid://shopify/DeliveryProfile/2","name":"Dropship"}}
	]}}}`))

	got, err := client.ListDeliveryProfiles(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.DeliveryProfile{
		{ID: "gid://shopify/DeliveryProfile/1", Name: "General profile"},
		{ID: "gid://shopify/DeliveryProfile/2", Name: "Dropship"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("profiles (-want +got):\n%s", d)
	}
	if first := fake.Requests()[0].Variables["first"]; first != float64(5) {
		t.Errorf("first = %v, want 5", first)
	}
}

func TestAssociateVariantsSendsVariantsToAssociate(t *testing.T) {
	fake, client := newFakeAdmin(t, ok(`{"data":{"deliveryProfileUpdate":{
		"profile":{"id":"gid://shopify/DeliveryProfile/2","name":"Dropship"},
		"userErrors":[]
	}}}`))

	profile, err := client.AssociateVariants(context.Background(), "gid://shopify/DeliveryProfile/2", []string{"v1", "v2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff(model.DeliveryProfile{ID: "gid://shopify/DeliveryProfile/2", Name: "Dropship"}, profile); d != "" {
		t.Errorf("profile (-want +got):\n%s", d)
	}

	req := fake.Requests()[0]
	want := map[string]any{
		"id": "gid://shopify/DeliveryProfile/2",
		"profile": map[string]any{
			"variantsToAssociate": []any{"v1", "v2"},
		},
	}
	if d := cmp.Diff(want, req.Variables); d != "" {
		t.Errorf("variables (-want +got):\n%s", d)
	}
	if !strings.Contains(req.Query, "deliveryProfileUpdate") {
		t.Errorf("unexpected document %s", req.Query)
	}
}

func TestAssociateVariantsUserErrors(t *testing.T) {
	_, client := newFakeAdmin(t, ok(`{"data":{"deliveryProfileUpdate":{
		"profile":null,
		"userErrors":[{"field":["profile","variantsToAssociate"],"message":"Variant does not exist"}]
	}}}`))

	_, err := client.AssociateVariants(context.Background(), "gid://shopify/DeliveryProfile/2", []string{"bad"})
	userErrs, isUserErr := IsUserErrors(err)
	if !isUserErr {
		t.Fatalf("expected user errors, got %v", err)
	}
	want := []UserErrorDetail{{Field: "profile.variantsToAssociate", Message: "Variant does not exist"}}
	if d := cmp.Diff(want, userErrs.Errors); d != "" {
		t.Errorf("details (-want +got):\n%s", d)
	}
	if !strings.Contains(err.Error(), "deliveryProfileUpdate failed") {
		t.Errorf("error = %v", err)
	}
}

func TestAssociateVariantsValidation(t *testing.T) {
	fake, client := newFakeAdmin(t)

	if _, err := client.AssociateVariants(context.Background(), " ", []string{"v1"}); err == nil {
		t.Errorf("expected error for empty profile id")
	}
	if _, err := client.AssociateVariants(context.Background(), "gid://shopify/DeliveryProfile/2", nil); err != nil {
		t.Errorf("empty batch should be a no-op: %v", err)
	}
	if n := len(fake.Requests()); n != 0 {
		t.Errorf("requests = %d, want 0", n)
	}
}

func TestAssociateVariantsNullPayloadFails(t *testing.T) {
	_, client := newFakeAdmin(t, ok(`{"data":{"deliveryProfileUpdate":null}}`))

	_, err := client.AssociateVariants(context.Background(), "gid://shopify/DeliveryProfile/1", []string{"v1"})
	if err == nil {
		t.Fatalf("a null mutation payload must not count as a committed batch")
	}
	if !strings.Contains(err.Error(), "no payload") {
		t.Errorf("error = %v", err)
	}
}

func TestListDeliveryProfilesNullConnectionFails(t *testing.T) {
	_, client := newFakeAdmin(t, ok(`{"data":{"deliveryProfiles":null}}`))

	if _, err := client.ListDeliveryProfiles(context.Background(), 5); err == nil {
		t.Fatalf("expected error for null connection")
	}
}
