package content

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TestimonialsPayload is the shape the public site consumes
type TestimonialsPayload struct {
	Title        string         `json:"title"`
	Testimonials []*Testimonial `json:"testimonials"`
}

type Testimonials struct {
	repository.Repository[*Testimonial]
	db *bun.DB
}

func NewTestimonialsRepository(db *bun.DB) *Testimonials {
	repo := repository.NewRepository[*Testimonial](db, repository.ModelHandlers[*Testimonial]{
		NewRecord: func() *Testimonial { return &Testimonial{} },
		GetID: func(r *Testimonial) uuid.UUID {
			if r == nil {
				return uuid.Nil
			}
			return r.ID
		},
		SetID: func(r *Testimonial, id uuid.UUID) {
			if r != nil {
				r.ID = id
			}
		},
	})

	return &Testimonials{Repository: repo, db: db}
}

func (t *Testimonials) ListActive(ctx context.Context) (*TestimonialsPayload, error) {
	var records []*Testimonial
	err := t.db.NewSelect().
		Model(&records).
		Where("?TableAlias.status = ?", StatusActive).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return &TestimonialsPayload{
		Title:        "WHAT OUR CLIENTS SAY",
		Testimonials: records,
	}, nil
}

func (t *Testimonials) ListAll(ctx context.Context) ([]*Testimonial, error) {
	var records []*Testimonial
	err := t.db.NewSelect().
		Model(&records).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (t *Testimonials) Add(ctx context.Context, record *Testimonial) (*Testimonial, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	prepareStatus(&record.Status, StatusPending)
	return t.Repository.Create(ctx, record)
}

func (t *Testimonials) Update(ctx context.Context, record *Testimonial) (*Testimonial, error) {
	return t.Repository.Update(ctx, record, repository.UpdateByID(record.ID.String()))
}

func (t *Testimonials) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := t.db.NewDelete().
		Model((*Testimonial)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return err
}
