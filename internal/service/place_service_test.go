package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
)

type placeFixture struct {
	repo  *repository.Repository
	zones ZoneService
	place PlaceService
	je    *model.Je
}

func newPlaceFixture(t *testing.T) *placeFixture {
	t.Helper()
	repo := newTestRepo()
	f := &placeFixture{
		repo:  repo,
		zones: NewZoneService(repo, zap.NewNop()),
		place: NewPlaceService(repo, zap.NewNop()),
	}
	f.je = seedJe(t, repo, "Alpha")
	return f
}

// withZone reserves zone A1 for the fixture JE.
func (f *placeFixture) withZone(t *testing.T) {
	t.Helper()
	zones := seedZones(t, f.zones, 2)
	if _, err := f.zones.Reserve(context.Background(), zones[0].ID, f.je.JeID, testAdminID); err != nil {
		t.Fatalf("reserving zone: %v", err)
	}
}

func (f *placeFixture) seedParticipant(t *testing.T, lastName, paymentStatus string) *model.Participant {
	t.Helper()
	p := &model.Participant{
		JeID:          f.je.JeID,
		FirstName:     "Test",
		LastName:      lastName,
		Email:         lastName + "@example.org",
		Role:          "MEMBER",
		PaymentStatus: paymentStatus,
	}
	if err := f.repo.Participant.Create(context.Background(), p); err != nil {
		t.Fatalf("seeding participant: %v", err)
	}
	return p
}

func TestReservePlace(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	p := f.seedParticipant(t, "Durand", model.PaymentPaid)

	resp, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID)
	if err != nil {
		t.Fatalf("reserving place: %v", err)
	}
	if resp.PlaceName == nil || *resp.PlaceName != "A1_1" {
		t.Fatalf("place = %v, want A1_1", resp.PlaceName)
	}
}

func TestReservePlaceWithoutZone(t *testing.T) {
	f := newPlaceFixture(t)
	p := f.seedParticipant(t, "Durand", model.PaymentPaid)

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); !errors.Is(err, ErrJeHasNoZone) {
		t.Fatalf("got %v, want ErrJeHasNoZone", err)
	}
}

func TestReservePlaceUnpaid(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	p := f.seedParticipant(t, "Durand", model.PaymentUnpaid)

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); !errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("got %v, want ErrPaymentRequired", err)
	}
}

func TestReservePlacePartialPaymentSuffices(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	p := f.seedParticipant(t, "Durand", model.PaymentPartial)

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); err != nil {
		t.Fatalf("reserving with partial payment: %v", err)
	}
}

func TestReservePlaceOutOfRange(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	// two paid participants bound the place numbers to 1..2
	p := f.seedParticipant(t, "Durand", model.PaymentPaid)
	f.seedParticipant(t, "Martin", model.PaymentPaid)
	f.seedParticipant(t, "Petit", model.PaymentUnpaid)

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 3, testAdminID); !errors.Is(err, ErrPlaceOutOfRange) {
		t.Fatalf("place 3: got %v, want ErrPlaceOutOfRange", err)
	}
	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 0, testAdminID); !errors.Is(err, ErrPlaceOutOfRange) {
		t.Fatalf("place 0: got %v, want ErrPlaceOutOfRange", err)
	}
	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 2, testAdminID); err != nil {
		t.Fatalf("place 2: %v", err)
	}
}

func TestReservePlaceTaken(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	first := f.seedParticipant(t, "Durand", model.PaymentPaid)
	second := f.seedParticipant(t, "Martin", model.PaymentPaid)

	if _, err := f.place.Reserve(context.Background(), first.ParticipantID, 1, testAdminID); err != nil {
		t.Fatalf("first reservation: %v", err)
	}
	if _, err := f.place.Reserve(context.Background(), second.ParticipantID, 1, testAdminID); !errors.Is(err, apperrors.ErrPlaceTaken) {
		t.Fatalf("got %v, want ErrPlaceTaken", err)
	}
}

func TestReservePlaceMove(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	p := f.seedParticipant(t, "Durand", model.PaymentPaid)
	f.seedParticipant(t, "Martin", model.PaymentPaid)

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); err != nil {
		t.Fatalf("first reservation: %v", err)
	}
	resp, err := f.place.Reserve(context.Background(), p.ParticipantID, 2, testAdminID)
	if err != nil {
		t.Fatalf("moving: %v", err)
	}
	if resp.PlaceName == nil || *resp.PlaceName != "A1_2" {
		t.Fatalf("place = %v, want A1_2", resp.PlaceName)
	}

	// the first place is free again
	places, err := f.repo.Participant.ReservedPlacesByJe(context.Background(), f.je.JeID)
	if err != nil {
		t.Fatalf("listing places: %v", err)
	}
	if len(places) != 1 || places[0] != "A1_2" {
		t.Fatalf("reserved places = %v, want [A1_2]", places)
	}
}

func TestReservePlaceReclaimOwn(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	p := f.seedParticipant(t, "Durand", model.PaymentPaid)

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); err != nil {
		t.Fatalf("first reservation: %v", err)
	}
	// re-reserving one's own place is not a conflict
	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); err != nil {
		t.Fatalf("re-reservation: %v", err)
	}
}

func TestReservePlaceUnknownParticipant(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)

	if _, err := f.place.Reserve(context.Background(), nextID(), 1, testAdminID); !errors.Is(err, ErrParticipantNotFound) {
		t.Fatalf("got %v, want ErrParticipantNotFound", err)
	}
}

func TestPlaceStats(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	p := f.seedParticipant(t, "Durand", model.PaymentPaid)
	f.seedParticipant(t, "Martin", model.PaymentPartial)
	f.seedParticipant(t, "Petit", model.PaymentUnpaid)

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); err != nil {
		t.Fatalf("reserving place: %v", err)
	}

	stats, err := f.place.Stats(context.Background(), f.je.JeID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !stats.HasZone || stats.ZoneName != "A1" {
		t.Errorf("zone = (%v, %q), want (true, A1)", stats.HasZone, stats.ZoneName)
	}
	if stats.PaidCount != 2 {
		t.Errorf("paid count = %d, want 2", stats.PaidCount)
	}
	if len(stats.ReservedPlaces) != 1 || stats.ReservedPlaces[0] != "A1_1" {
		t.Errorf("reserved places = %v, want [A1_1]", stats.ReservedPlaces)
	}
}

func TestPlaceStatsWithoutZone(t *testing.T) {
	f := newPlaceFixture(t)

	stats, err := f.place.Stats(context.Background(), f.je.JeID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.HasZone {
		t.Error("HasZone set for a JE without a zone")
	}
	if stats.ReservedPlaces == nil {
		t.Error("ReservedPlaces is nil, want empty slice")
	}
}

func TestReservePlaceConstraintBackstop(t *testing.T) {
	f := newPlaceFixture(t)
	f.withZone(t)
	p := f.seedParticipant(t, "Durand", model.PaymentPaid)

	// the unique index on place_name reports the concurrent holder as a
	// conflict, not an internal error
	f.repo.Participant.(*mockParticipantRepo).updatePlaceErr = apperrors.ErrPlaceTaken

	if _, err := f.place.Reserve(context.Background(), p.ParticipantID, 1, testAdminID); !errors.Is(err, apperrors.ErrPlaceTaken) {
		t.Fatalf("got %v, want ErrPlaceTaken", err)
	}
}
