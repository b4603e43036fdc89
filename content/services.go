package content

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ServicesPayload is the shape the public site consumes
type ServicesPayload struct {
	Title    string     `json:"title"`
	Packages []*Service `json:"packages"`
}

type Services struct {
	repository.Repository[*Service]
	db *bun.DB
}

func NewServicesRepository(db *bun.DB) *Services {
	repo := repository.NewRepository[*Service](db, repository.ModelHandlers[*Service]{
		NewRecord: func() *Service { return &Service{} },
		GetID: func(r *Service) uuid.UUID {
			if r == nil {
				return uuid.Nil
			}
			return r.ID
		},
		SetID: func(r *Service, id uuid.UUID) {
			if r != nil {
				r.ID = id
			}
		},
	})

	return &Services{Repository: repo, db: db}
}

// ListActive returns published service packages with their offerings
func (s *Services) ListActive(ctx context.Context) (*ServicesPayload, error) {
	var records []*Service
	err := s.db.NewSelect().
		Model(&records).
		Relation("Offerings").
		Where("?TableAlias.status = ?", StatusActive).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &ServicesPayload{
		Title:    "OUR SERVICE PACKAGES",
		Packages: records,
	}, nil
}

// ListAll returns every service regardless of publication state
func (s *Services) ListAll(ctx context.Context) ([]*Service, error) {
	var records []*Service
	err := s.db.NewSelect().
		Model(&records).
		Relation("Offerings").
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// AddTx creates a service and its offerings in one transaction
func (s *Services) AddTx(ctx context.Context, tx bun.IDB, record *Service) (*Service, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	prepareStatus(&record.Status, StatusPending)

	if _, err := s.Repository.CreateTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := s.replaceOfferingsTx(ctx, tx, record.ID, record.Offerings); err != nil {
		return nil, err
	}

	return record, nil
}

// UpdateTx rewrites a service and replaces its offerings wholesale, the
// offering list on the payload is the source of truth
func (s *Services) UpdateTx(ctx context.Context, tx bun.IDB, record *Service) (*Service, error) {
	if _, err := s.Repository.UpdateTx(ctx, tx, record, repository.UpdateByID(record.ID.String())); err != nil {
		return nil, err
	}

	if _, err := tx.NewDelete().
		Model((*Offering)(nil)).
		Where("?TableAlias.service_id = ?", record.ID).
		Exec(ctx); err != nil {
		return nil, err
	}

	if err := s.replaceOfferingsTx(ctx, tx, record.ID, record.Offerings); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteTx removes a service and its offerings
func (s *Services) DeleteTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error {
	if _, err := tx.NewDelete().
		Model((*Offering)(nil)).
		Where("?TableAlias.service_id = ?", id).
		Exec(ctx); err != nil {
		return err
	}

	_, err := tx.NewDelete().
		Model((*Service)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return err
}

func (s *Services) replaceOfferingsTx(ctx context.Context, tx bun.IDB, serviceID uuid.UUID, offerings []*Offering) error {
	if len(offerings) == 0 {
		return nil
	}

	for _, offering := range offerings {
		if offering.ID == uuid.Nil {
			offering.ID = uuid.New()
		}
		offering.ServiceID = serviceID
	}

	_, err := tx.NewInsert().Model(&offerings).Exec(ctx)
	return err
}
