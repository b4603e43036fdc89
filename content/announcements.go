package content

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AnnouncementsPayload is the shape the public site consumes
type AnnouncementsPayload struct {
	Title         string              `json:"title"`
	Announcements []*AnnouncementView `json:"announcements"`
}

type AnnouncementView struct {
	ID          uuid.UUID        `json:"id,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        AnnouncementDate `json:"date"`
	IsNew       bool             `json:"isNew"`
	Status      Status           `json:"status"`
	CreatedAt   string           `json:"created_at,omitempty"`
	UpdatedAt   string           `json:"updated_at,omitempty"`
}

type AnnouncementDate struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

type Announcements struct {
	repository.Repository[*Announcement]
	db *bun.DB
}

func NewAnnouncementsRepository(db *bun.DB) *Announcements {
	repo := repository.NewRepository[*Announcement](db, repository.ModelHandlers[*Announcement]{
		NewRecord: func() *Announcement { return &Announcement{} },
		GetID: func(r *Announcement) uuid.UUID {
			if r == nil {
				return uuid.Nil
			}
			return r.ID
		},
		SetID: func(r *Announcement, id uuid.UUID) {
			if r != nil {
				r.ID = id
			}
		},
	})

	return &Announcements{Repository: repo, db: db}
}

// ListActive returns the published announcements, newest dated first
func (a *Announcements) ListActive(ctx context.Context) (*AnnouncementsPayload, error) {
	var records []*Announcement
	err := a.db.NewSelect().
		Model(&records).
		Where("?TableAlias.status = ?", StatusActive).
		Order("year DESC", "month DESC", "day DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return defaultAnnouncements(), nil
	}

	return ShapeAnnouncements(records), nil
}

func (a *Announcements) Add(ctx context.Context, record *Announcement) (*Announcement, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	prepareStatus(&record.Status, StatusActive)
	return a.Repository.Create(ctx, record)
}

func (a *Announcements) Update(ctx context.Context, record *Announcement) (*Announcement, error) {
	return a.Repository.Update(ctx, record, repository.UpdateByID(record.ID.String()))
}

func (a *Announcements) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := a.db.NewDelete().
		Model((*Announcement)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return err
}

// ShapeAnnouncements folds flat records into the nested date payload
func ShapeAnnouncements(records []*Announcement) *AnnouncementsPayload {
	payload := &AnnouncementsPayload{
		Title:         "ANNOUNCEMENTS",
		Announcements: make([]*AnnouncementView, 0, len(records)),
	}

	for _, record := range records {
		view := &AnnouncementView{
			ID:          record.ID,
			Title:       record.Title,
			Description: record.Description,
			Date: AnnouncementDate{
				Day:   record.Day,
				Month: record.Month,
				Year:  record.Year,
			},
			IsNew:  record.IsNew,
			Status: record.Status,
		}
		if record.CreatedAt != nil {
			view.CreatedAt = record.CreatedAt.Format("2006-01-02T15:04:05")
		}
		if record.UpdatedAt != nil {
			view.UpdatedAt = record.UpdatedAt.Format("2006-01-02T15:04:05")
		}
		payload.Announcements = append(payload.Announcements, view)
	}

	return payload
}
