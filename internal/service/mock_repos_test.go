package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
)

// In-memory repository fakes. They mirror the store-level behavior the
// services rely on (not-found errors, row counts) without a database; the
// locking variants degrade to plain reads since tests are single-threaded.

var idSeq int

func nextID() string {
	idSeq++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", idSeq)
}

func newTestRepo() *repository.Repository {
	participants := &mockParticipantRepo{participants: map[string]*model.Participant{}}
	activities := &mockActivityRepo{activities: map[string]*model.Activity{}}
	return &repository.Repository{
		Tx:           &mockTxManager{},
		User:         &mockUserRepo{users: map[string]*model.User{}},
		Je:           &mockJeRepo{jes: map[string]*model.Je{}, participants: participants},
		Participant:  participants,
		Zone:         &mockZoneRepo{zones: map[string]*model.Zone{}},
		Salle:        &mockSalleRepo{salles: map[string]*model.Salle{}},
		ActivityType: &mockActivityTypeRepo{types: map[string]*model.ActivityType{}},
		Activity:     activities,
		Correlation:  &mockCorrelationRepo{correlations: map[string]*model.ActivityCorrelation{}, activities: activities},
		Selection:    &mockSelectionRepo{selections: map[string]*model.ActivitySelection{}},
		Job:          &mockJobRepo{jobs: map[string]*model.Job{}},
	}
}

// ── transactions ──

type mockTxManager struct{}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ── users ──

type mockUserRepo struct {
	users map[string]*model.User
}

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = nextID()
	}
	r.users[user.UserID] = user
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) GetByParticipant(_ context.Context, participantID string) (*model.User, error) {
	for _, user := range r.users {
		if user.ParticipantID != nil && *user.ParticipantID == participantID {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) Update(_ context.Context, user *model.User) error {
	r.users[user.UserID] = user
	return nil
}

// ── JEs ──

type mockJeRepo struct {
	jes          map[string]*model.Je
	participants *mockParticipantRepo
}

func (r *mockJeRepo) Create(_ context.Context, je *model.Je) error {
	if je.JeID == "" {
		je.JeID = nextID()
	}
	r.jes[je.JeID] = je
	return nil
}

func (r *mockJeRepo) GetByID(_ context.Context, id string) (*model.Je, error) {
	je, ok := r.jes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return je, nil
}

func (r *mockJeRepo) GetByName(_ context.Context, name string) (*model.Je, error) {
	for _, je := range r.jes {
		if je.Name == name {
			return je, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockJeRepo) List(_ context.Context) ([]model.Je, error) {
	result := make([]model.Je, 0, len(r.jes))
	for _, je := range r.jes {
		result = append(result, *je)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *mockJeRepo) Update(_ context.Context, je *model.Je) error {
	r.jes[je.JeID] = je
	return nil
}

func (r *mockJeRepo) Delete(_ context.Context, id string) error {
	delete(r.jes, id)
	return nil
}

func (r *mockJeRepo) CountParticipants(ctx context.Context, jeID string) (int64, error) {
	if r.participants == nil {
		return 0, nil
	}
	roster, _ := r.participants.ListByJe(ctx, jeID)
	return int64(len(roster)), nil
}

// ── participants ──

type mockParticipantRepo struct {
	participants map[string]*model.Participant
	// updatePlaceErr simulates a write failing, e.g. the unique index
	// backstop reporting a concurrent holder.
	updatePlaceErr error
}

func (r *mockParticipantRepo) Create(_ context.Context, p *model.Participant) error {
	if p.ParticipantID == "" {
		p.ParticipantID = nextID()
	}
	r.participants[p.ParticipantID] = p
	return nil
}

func (r *mockParticipantRepo) GetByID(_ context.Context, id string) (*model.Participant, error) {
	p, ok := r.participants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *mockParticipantRepo) ListByJe(_ context.Context, jeID string) ([]model.Participant, error) {
	var result []model.Participant
	for _, p := range r.participants {
		if p.JeID == jeID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LastName < result[j].LastName })
	return result, nil
}

func (r *mockParticipantRepo) ListByJeForUpdate(ctx context.Context, jeID string) ([]model.Participant, error) {
	return r.ListByJe(ctx, jeID)
}

func (r *mockParticipantRepo) ListAll(_ context.Context) ([]model.Participant, error) {
	result := make([]model.Participant, 0, len(r.participants))
	for _, p := range r.participants {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].LastName < result[j].LastName })
	return result, nil
}

func (r *mockParticipantRepo) Update(_ context.Context, p *model.Participant) error {
	r.participants[p.ParticipantID] = p
	return nil
}

func (r *mockParticipantRepo) UpdatePlace(_ context.Context, participantID string, placeName *string, _ string) error {
	if r.updatePlaceErr != nil {
		return r.updatePlaceErr
	}
	p, ok := r.participants[participantID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.PlaceName = placeName
	return nil
}

func (r *mockParticipantRepo) Delete(_ context.Context, id string) error {
	delete(r.participants, id)
	return nil
}

func (r *mockParticipantRepo) CountPaidByJe(_ context.Context, jeID string) (int64, error) {
	var count int64
	for _, p := range r.participants {
		if p.JeID == jeID && p.HasPaid() {
			count++
		}
	}
	return count, nil
}

func (r *mockParticipantRepo) ReservedPlacesByJe(_ context.Context, jeID string) ([]string, error) {
	var places []string
	for _, p := range r.participants {
		if p.JeID == jeID && p.PlaceName != nil {
			places = append(places, *p.PlaceName)
		}
	}
	sort.Strings(places)
	return places, nil
}

// ── zones ──

type mockZoneRepo struct {
	zones map[string]*model.Zone
	// updateOwnerErr simulates a write failing, e.g. the unique index
	// backstop reporting a concurrent owner.
	updateOwnerErr error
}

func (r *mockZoneRepo) CreateBatch(_ context.Context, zones []model.Zone) error {
	for i := range zones {
		if zones[i].ZoneID == "" {
			zones[i].ZoneID = nextID()
		}
		z := zones[i]
		r.zones[z.ZoneID] = &z
	}
	return nil
}

func (r *mockZoneRepo) GetByID(_ context.Context, id string) (*model.Zone, error) {
	z, ok := r.zones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return z, nil
}

func (r *mockZoneRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Zone, error) {
	return r.GetByID(ctx, id)
}

func (r *mockZoneRepo) GetByJe(_ context.Context, jeID string) (*model.Zone, error) {
	for _, z := range r.zones {
		if z.JeID != nil && *z.JeID == jeID {
			return z, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockZoneRepo) List(_ context.Context) ([]model.Zone, error) {
	result := make([]model.Zone, 0, len(r.zones))
	for _, z := range r.zones {
		result = append(result, *z)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *mockZoneRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.zones)), nil
}

func (r *mockZoneRepo) UpdateOwner(_ context.Context, zoneID string, jeID *string, _ string) error {
	if r.updateOwnerErr != nil {
		return r.updateOwnerErr
	}
	z, ok := r.zones[zoneID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	z.JeID = jeID
	return nil
}

func (r *mockZoneRepo) ReleaseByJe(_ context.Context, jeID string, _ string) error {
	for _, z := range r.zones {
		if z.JeID != nil && *z.JeID == jeID {
			z.JeID = nil
		}
	}
	return nil
}

// ── salles ──

type mockSalleRepo struct {
	salles map[string]*model.Salle
}

func (r *mockSalleRepo) Create(_ context.Context, s *model.Salle) error {
	if s.SalleID == "" {
		s.SalleID = nextID()
	}
	r.salles[s.SalleID] = s
	return nil
}

func (r *mockSalleRepo) GetByID(_ context.Context, id string) (*model.Salle, error) {
	s, ok := r.salles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *mockSalleRepo) GetByName(_ context.Context, name string) (*model.Salle, error) {
	for _, s := range r.salles {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockSalleRepo) List(_ context.Context) ([]model.Salle, error) {
	result := make([]model.Salle, 0, len(r.salles))
	for _, s := range r.salles {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *mockSalleRepo) Update(_ context.Context, s *model.Salle) error {
	r.salles[s.SalleID] = s
	return nil
}

func (r *mockSalleRepo) Delete(_ context.Context, id string) error {
	delete(r.salles, id)
	return nil
}

// ── activity types ──

type mockActivityTypeRepo struct {
	types map[string]*model.ActivityType
}

func (r *mockActivityTypeRepo) Create(_ context.Context, t *model.ActivityType) error {
	if t.ActivityTypeID == "" {
		t.ActivityTypeID = nextID()
	}
	r.types[t.ActivityTypeID] = t
	return nil
}

func (r *mockActivityTypeRepo) GetByID(_ context.Context, id string) (*model.ActivityType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *mockActivityTypeRepo) List(_ context.Context) ([]model.ActivityType, error) {
	result := make([]model.ActivityType, 0, len(r.types))
	for _, t := range r.types {
		result = append(result, *t)
	}
	return result, nil
}

func (r *mockActivityTypeRepo) Update(_ context.Context, t *model.ActivityType) error {
	r.types[t.ActivityTypeID] = t
	return nil
}

func (r *mockActivityTypeRepo) Delete(_ context.Context, id string) error {
	delete(r.types, id)
	return nil
}

// ── activities ──

type mockActivityRepo struct {
	activities map[string]*model.Activity
}

func (r *mockActivityRepo) Create(_ context.Context, a *model.Activity) error {
	if a.ActivityID == "" {
		a.ActivityID = nextID()
	}
	r.activities[a.ActivityID] = a
	return nil
}

func (r *mockActivityRepo) GetByID(_ context.Context, id string) (*model.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *mockActivityRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Activity, error) {
	return r.GetByID(ctx, id)
}

func (r *mockActivityRepo) List(_ context.Context) ([]model.Activity, error) {
	result := make([]model.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartsAt.Before(result[j].StartsAt) })
	return result, nil
}

func (r *mockActivityRepo) ListRequired(_ context.Context) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range r.activities {
		if a.IsRequired {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartsAt.Before(result[j].StartsAt) })
	return result, nil
}

func (r *mockActivityRepo) Update(_ context.Context, a *model.Activity) error {
	r.activities[a.ActivityID] = a
	return nil
}

func (r *mockActivityRepo) Delete(_ context.Context, id string) error {
	delete(r.activities, id)
	return nil
}

// ── correlations ──

type mockCorrelationRepo struct {
	correlations map[string]*model.ActivityCorrelation
	activities   *mockActivityRepo
}

func (r *mockCorrelationRepo) Create(_ context.Context, c *model.ActivityCorrelation) error {
	if c.CorrelationID == "" {
		c.CorrelationID = nextID()
	}
	r.correlations[c.CorrelationID] = c
	return nil
}

func (r *mockCorrelationRepo) GetByID(_ context.Context, id string) (*model.ActivityCorrelation, error) {
	c, ok := r.correlations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

// preloaded mirrors the repository's activity preloads.
func (r *mockCorrelationRepo) preloaded(c *model.ActivityCorrelation) model.ActivityCorrelation {
	out := *c
	if r.activities != nil {
		out.SourceActivity = r.activities.activities[c.SourceActivityID]
		out.TargetActivity = r.activities.activities[c.TargetActivityID]
	}
	return out
}

func (r *mockCorrelationRepo) List(_ context.Context) ([]model.ActivityCorrelation, error) {
	result := make([]model.ActivityCorrelation, 0, len(r.correlations))
	for _, c := range r.correlations {
		result = append(result, r.preloaded(c))
	}
	return result, nil
}

func (r *mockCorrelationRepo) ListForActivity(_ context.Context, activityID string) ([]model.ActivityCorrelation, error) {
	var result []model.ActivityCorrelation
	for _, c := range r.correlations {
		if c.SourceActivityID == activityID || c.TargetActivityID == activityID {
			result = append(result, r.preloaded(c))
		}
	}
	return result, nil
}

func (r *mockCorrelationRepo) Delete(_ context.Context, id string) error {
	delete(r.correlations, id)
	return nil
}

// ── selections ──

type mockSelectionRepo struct {
	selections map[string]*model.ActivitySelection
}

func (r *mockSelectionRepo) Create(_ context.Context, s *model.ActivitySelection) error {
	if s.SelectionID == "" {
		s.SelectionID = nextID()
	}
	r.selections[s.SelectionID] = s
	return nil
}

func (r *mockSelectionRepo) Exists(_ context.Context, participantID, activityID string) (bool, error) {
	for _, s := range r.selections {
		if s.ParticipantID == participantID && s.ActivityID == activityID {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockSelectionRepo) ListByParticipant(_ context.Context, participantID string) ([]model.ActivitySelection, error) {
	var result []model.ActivitySelection
	for _, s := range r.selections {
		if s.ParticipantID == participantID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SelectionID < result[j].SelectionID })
	return result, nil
}

func (r *mockSelectionRepo) CountByActivity(_ context.Context, activityID string) (int64, error) {
	var count int64
	for _, s := range r.selections {
		if s.ActivityID == activityID {
			count++
		}
	}
	return count, nil
}

func (r *mockSelectionRepo) Delete(_ context.Context, participantID, activityID string) (int64, error) {
	for id, s := range r.selections {
		if s.ParticipantID == participantID && s.ActivityID == activityID {
			delete(r.selections, id)
			return 1, nil
		}
	}
	return 0, nil
}

// ── jobs ──

type mockJobRepo struct {
	jobs map[string]*model.Job
}

func (r *mockJobRepo) Create(_ context.Context, j *model.Job) error {
	if j.JobID == "" {
		j.JobID = nextID()
	}
	r.jobs[j.JobID] = j
	return nil
}

func (r *mockJobRepo) GetByID(_ context.Context, id string) (*model.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return j, nil
}

func (r *mockJobRepo) List(_ context.Context, publishedOnly bool) ([]model.Job, error) {
	var result []model.Job
	for _, j := range r.jobs {
		if publishedOnly && !j.Published {
			continue
		}
		result = append(result, *j)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Title < result[j].Title })
	return result, nil
}

func (r *mockJobRepo) Update(_ context.Context, j *model.Job) error {
	r.jobs[j.JobID] = j
	return nil
}

func (r *mockJobRepo) Delete(_ context.Context, id string) error {
	delete(r.jobs, id)
	return nil
}
