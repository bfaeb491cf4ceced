package repository

import "gorm.io/gorm"

// Repository aggregates every data access interface.
type Repository struct {
	Tx           TxManager
	User         UserRepository
	Je           JeRepository
	Participant  ParticipantRepository
	Zone         ZoneRepository
	Salle        SalleRepository
	ActivityType ActivityTypeRepository
	Activity     ActivityRepository
	Correlation  CorrelationRepository
	Selection    SelectionRepository
	Job          JobRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Tx:           NewTxManager(db),
		User:         NewUserRepo(db),
		Je:           NewJeRepo(db),
		Participant:  NewParticipantRepo(db),
		Zone:         NewZoneRepo(db),
		Salle:        NewSalleRepo(db),
		ActivityType: NewActivityTypeRepo(db),
		Activity:     NewActivityRepo(db),
		Correlation:  NewCorrelationRepo(db),
		Selection:    NewSelectionRepo(db),
		Job:          NewJobRepo(db),
	}
}
