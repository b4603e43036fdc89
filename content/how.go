package content

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// HowPayload is the "how it works" block with its ordered steps
type HowPayload struct {
	ID       uuid.UUID  `json:"id,omitempty"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Status   Status     `json:"status"`
	Steps    []*HowStep `json:"steps"`
}

type HowSections struct {
	repository.Repository[*HowSection]
	db *bun.DB
}

func NewHowSectionsRepository(db *bun.DB) *HowSections {
	repo := repository.NewRepository[*HowSection](db, repository.ModelHandlers[*HowSection]{
		NewRecord: func() *HowSection { return &HowSection{} },
		GetID: func(r *HowSection) uuid.UUID {
			if r == nil {
				return uuid.Nil
			}
			return r.ID
		},
		SetID: func(r *HowSection, id uuid.UUID) {
			if r != nil {
				r.ID = id
			}
		},
	})

	return &HowSections{Repository: repo, db: db}
}

// Active returns the newest published section with steps in display order
func (h *HowSections) Active(ctx context.Context) (*HowPayload, error) {
	record := &HowSection{}
	err := h.db.NewSelect().
		Model(record).
		Relation("Steps", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("step_id ASC")
		}).
		Where("?TableAlias.status = ?", StatusActive).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return defaultHow(), nil
		}
		return nil, err
	}

	return ShapeHow(record), nil
}

func (h *HowSections) ListAll(ctx context.Context) ([]*HowPayload, error) {
	var records []*HowSection
	err := h.db.NewSelect().
		Model(&records).
		Relation("Steps", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("step_id ASC")
		}).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	payloads := make([]*HowPayload, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, ShapeHow(record))
	}
	return payloads, nil
}

func (h *HowSections) AddTx(ctx context.Context, tx bun.IDB, record *HowSection) (*HowSection, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	prepareStatus(&record.Status, StatusActive)

	if _, err := h.Repository.CreateTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := h.replaceStepsTx(ctx, tx, record.ID, record.Steps); err != nil {
		return nil, err
	}

	return record, nil
}

func (h *HowSections) UpdateTx(ctx context.Context, tx bun.IDB, record *HowSection) (*HowSection, error) {
	if _, err := h.Repository.UpdateTx(ctx, tx, record, repository.UpdateByID(record.ID.String())); err != nil {
		return nil, err
	}

	if _, err := tx.NewDelete().
		Model((*HowStep)(nil)).
		Where("?TableAlias.how_id = ?", record.ID).
		Exec(ctx); err != nil {
		return nil, err
	}

	if err := h.replaceStepsTx(ctx, tx, record.ID, record.Steps); err != nil {
		return nil, err
	}

	return record, nil
}

func (h *HowSections) DeleteTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error {
	if _, err := tx.NewDelete().
		Model((*HowStep)(nil)).
		Where("?TableAlias.how_id = ?", id).
		Exec(ctx); err != nil {
		return err
	}

	_, err := tx.NewDelete().
		Model((*HowSection)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return err
}

func (h *HowSections) replaceStepsTx(ctx context.Context, tx bun.IDB, howID uuid.UUID, steps []*HowStep) error {
	if len(steps) == 0 {
		return nil
	}

	for _, step := range steps {
		if step.ID == uuid.Nil {
			step.ID = uuid.New()
		}
		step.HowID = howID
	}

	_, err := tx.NewInsert().Model(&steps).Exec(ctx)
	return err
}

// ShapeHow attaches steps to the section payload
func ShapeHow(record *HowSection) *HowPayload {
	steps := record.Steps
	if steps == nil {
		steps = []*HowStep{}
	}

	return &HowPayload{
		ID:       record.ID,
		Title:    record.Title,
		Subtitle: record.Subtitle,
		Status:   record.Status,
		Steps:    steps,
	}
}
