package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
)

func TestSalleCreateAndList(t *testing.T) {
	repo := newTestRepo()
	svc := NewSalleService(repo, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateSalleRequest{Name: "Amphi A", Capacity: 200, Floor: "1"}, testAdminID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = svc.Create(ctx, &dto.CreateSalleRequest{Name: "Salle B12", Capacity: 40}, testAdminID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	salles, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(salles) != 2 {
		t.Fatalf("expected 2 salles, got %d", len(salles))
	}
}

func TestSalleCreateDuplicateName(t *testing.T) {
	repo := newTestRepo()
	svc := NewSalleService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateSalleRequest{Name: "Amphi A", Capacity: 200}, testAdminID); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := svc.Create(ctx, &dto.CreateSalleRequest{Name: "Amphi A", Capacity: 100}, testAdminID)
	if !errors.Is(err, ErrSalleNameExists) {
		t.Fatalf("expected ErrSalleNameExists, got %v", err)
	}
}

func TestSalleUpdateAndDelete(t *testing.T) {
	repo := newTestRepo()
	svc := NewSalleService(repo, zap.NewNop())
	ctx := context.Background()

	salle, err := svc.Create(ctx, &dto.CreateSalleRequest{Name: "Amphi A", Capacity: 200}, testAdminID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	capacity := 250
	updated, err := svc.Update(ctx, salle.ID, &dto.UpdateSalleRequest{Capacity: &capacity}, testAdminID)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Capacity != 250 {
		t.Fatalf("expected capacity 250, got %d", updated.Capacity)
	}

	if err := svc.Delete(ctx, salle.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, salle.ID); !errors.Is(err, ErrSalleNotFound) {
		t.Fatalf("expected ErrSalleNotFound after delete, got %v", err)
	}
}

func TestActivityTypeCRUD(t *testing.T) {
	repo := newTestRepo()
	svc := NewActivityTypeService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateActivityTypeRequest{Name: "Workshop"}, testAdminID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "Conference"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateActivityTypeRequest{Name: &name}, testAdminID)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Conference" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}

	types, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(types) != 1 {
		t.Fatalf("expected 1 type, got %d", len(types))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = svc.Update(ctx, created.ID, &dto.UpdateActivityTypeRequest{Name: &name}, testAdminID)
	if !errors.Is(err, ErrActivityTypeNotFound) {
		t.Fatalf("expected ErrActivityTypeNotFound, got %v", err)
	}
}
