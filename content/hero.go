package content

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// HeroPayload nests the scripted chat preview the way the frontend renders it
type HeroPayload struct {
	ID          uuid.UUID `json:"id,omitempty"`
	Headline    string    `json:"headline"`
	Subheadline string    `json:"subheadline"`
	CTAText     string    `json:"ctaText"`
	Status      Status    `json:"status"`
	ChatData    ChatData  `json:"chatData"`
}

type ChatData struct {
	UserMessage string        `json:"userMessage"`
	BotResponse string        `json:"botResponse"`
	UserName    string        `json:"userName"`
	Options     []*HeroOption `json:"options"`
}

type Heroes struct {
	repository.Repository[*Hero]
	db *bun.DB
}

func NewHeroesRepository(db *bun.DB) *Heroes {
	repo := repository.NewRepository[*Hero](db, repository.ModelHandlers[*Hero]{
		NewRecord: func() *Hero { return &Hero{} },
		GetID: func(r *Hero) uuid.UUID {
			if r == nil {
				return uuid.Nil
			}
			return r.ID
		},
		SetID: func(r *Hero, id uuid.UUID) {
			if r != nil {
				r.ID = id
			}
		},
	})

	return &Heroes{Repository: repo, db: db}
}

// Active returns the newest published hero, or the built in default when
// nothing has been published yet
func (h *Heroes) Active(ctx context.Context) (*HeroPayload, error) {
	record := &Hero{}
	err := h.db.NewSelect().
		Model(record).
		Relation("Options").
		Where("?TableAlias.status = ?", StatusActive).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return defaultHero(), nil
		}
		return nil, err
	}

	return ShapeHero(record), nil
}

// ListAll returns every hero with options, newest first
func (h *Heroes) ListAll(ctx context.Context) ([]*HeroPayload, error) {
	var records []*Hero
	err := h.db.NewSelect().
		Model(&records).
		Relation("Options").
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	payloads := make([]*HeroPayload, 0, len(records))
	for _, record := range records {
		payloads = append(payloads, ShapeHero(record))
	}
	return payloads, nil
}

func (h *Heroes) AddTx(ctx context.Context, tx bun.IDB, record *Hero) (*Hero, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	prepareStatus(&record.Status, StatusPending)

	if _, err := h.Repository.CreateTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := h.replaceOptionsTx(ctx, tx, record.ID, record.Options); err != nil {
		return nil, err
	}

	return record, nil
}

func (h *Heroes) UpdateTx(ctx context.Context, tx bun.IDB, record *Hero) (*Hero, error) {
	if _, err := h.Repository.UpdateTx(ctx, tx, record, repository.UpdateByID(record.ID.String())); err != nil {
		return nil, err
	}

	if _, err := tx.NewDelete().
		Model((*HeroOption)(nil)).
		Where("?TableAlias.hero_id = ?", record.ID).
		Exec(ctx); err != nil {
		return nil, err
	}

	if err := h.replaceOptionsTx(ctx, tx, record.ID, record.Options); err != nil {
		return nil, err
	}

	return record, nil
}

func (h *Heroes) DeleteTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error {
	if _, err := tx.NewDelete().
		Model((*HeroOption)(nil)).
		Where("?TableAlias.hero_id = ?", id).
		Exec(ctx); err != nil {
		return err
	}

	_, err := tx.NewDelete().
		Model((*Hero)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return err
}

func (h *Heroes) replaceOptionsTx(ctx context.Context, tx bun.IDB, heroID uuid.UUID, options []*HeroOption) error {
	if len(options) == 0 {
		return nil
	}

	for _, option := range options {
		if option.ID == uuid.Nil {
			option.ID = uuid.New()
		}
		option.HeroID = heroID
	}

	_, err := tx.NewInsert().Model(&options).Exec(ctx)
	return err
}

// ShapeHero folds a hero row and its options into the chatData payload
func ShapeHero(record *Hero) *HeroPayload {
	options := record.Options
	if options == nil {
		options = []*HeroOption{}
	}

	return &HeroPayload{
		ID:          record.ID,
		Headline:    record.Headline,
		Subheadline: record.Subheadline,
		CTAText:     record.CTAText,
		Status:      record.Status,
		ChatData: ChatData{
			UserMessage: record.UserMessage,
			BotResponse: record.BotResponse,
			UserName:    record.UserName,
			Options:     options,
		},
	}
}
