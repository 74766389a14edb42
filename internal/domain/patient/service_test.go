package patient

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemRepo())
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestService_CreateAndGetRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateInput{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		Age:        intPtr(45),
		Conditions: []string{"thyroid"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "p-3" {
		t.Errorf("expected p-3, got %s", created.ID)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Errorf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestService_Create_DefaultsConditions(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &CreateInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Conditions == nil || len(created.Conditions) != 0 {
		t.Errorf("expected empty conditions slice, got %v", created.Conditions)
	}
	if created.Age != nil {
		t.Errorf("expected nil age, got %v", *created.Age)
	}
}

func TestService_Create_Invalid(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"missing first name", CreateInput{LastName: "Hopper", Email: "grace@example.com"}},
		{"missing last name", CreateInput{FirstName: "Grace", Email: "grace@example.com"}},
		{"missing email", CreateInput{FirstName: "Grace", LastName: "Hopper"}},
		{"bad email", CreateInput{FirstName: "Grace", LastName: "Hopper", Email: "not-an-email"}},
		{"negative age", CreateInput{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Age: intPtr(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, &tc.in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestService_Update_PartialMerge(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &CreateInput{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		Age:        intPtr(45),
		Conditions: []string{"thyroid"},
	})

	updated, err := svc.Update(ctx, created.ID, &UpdateInput{Age: intPtr(46)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Age == nil || *updated.Age != 46 {
		t.Errorf("expected age 46, got %v", updated.Age)
	}
	if updated.FirstName != "Grace" || updated.LastName != "Hopper" {
		t.Errorf("name changed by age-only update: %s %s", updated.FirstName, updated.LastName)
	}
	if updated.Email != "grace@example.com" {
		t.Errorf("email changed by age-only update: %s", updated.Email)
	}
	if !reflect.DeepEqual(updated.Conditions, []string{"thyroid"}) {
		t.Errorf("conditions changed by age-only update: %v", updated.Conditions)
	}
}

func TestService_Update_MultipleFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	updated, err := svc.Update(ctx, "p-1", &UpdateInput{
		Email:      strPtr("ada.lovelace@example.com"),
		Conditions: &[]string{"diabetes", "anaemia"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Email != "ada.lovelace@example.com" {
		t.Errorf("expected updated email, got %s", updated.Email)
	}
	if len(updated.Conditions) != 2 {
		t.Errorf("expected 2 conditions, got %v", updated.Conditions)
	}
	if updated.FirstName != "Ada" {
		t.Errorf("first name should be untouched, got %s", updated.FirstName)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "p-99", &UpdateInput{Age: intPtr(50)})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_InvalidEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.Update(context.Background(), "p-1", &UpdateInput{Email: strPtr("nope")})
	if err == nil {
		t.Error("expected validation error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("validation failure should not report not found")
	}
}

func TestService_Delete_RestoresListLength(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, _ := svc.List(ctx)

	created, _ := svc.Create(ctx, &CreateInput{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	})
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, _ := svc.List(ctx)
	if len(after) != len(before) {
		t.Errorf("expected list length %d after create+delete, got %d", len(before), len(after))
	}
}
