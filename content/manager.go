package content

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// Manager exposes all content repositories
type Manager interface {
	Validate() error
	MustValidate()
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Announcements() *Announcements
	Services() *Services
	Testimonials() *Testimonials
	Heroes() *Heroes
	HowSections() *HowSections
	Company() *Company
}

type mngr struct {
	db            *bun.DB
	announcements *Announcements
	services      *Services
	testimonials  *Testimonials
	heroes        *Heroes
	howSections   *HowSections
	company       *Company
}

func NewManager(db *bun.DB) Manager {
	services := NewServicesRepository(db)
	return &mngr{
		db:            db,
		announcements: NewAnnouncementsRepository(db),
		services:      services,
		testimonials:  NewTestimonialsRepository(db),
		heroes:        NewHeroesRepository(db),
		howSections:   NewHowSectionsRepository(db),
		company:       NewCompanyRepository(db, services),
	}
}

func (m mngr) Validate() error {
	if m.announcements == nil || m.services == nil || m.testimonials == nil ||
		m.heroes == nil || m.howSections == nil || m.company == nil {
		return errors.New("content repositories should be initialized")
	}
	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Announcements() *Announcements { return m.announcements }
func (m mngr) Services() *Services           { return m.services }
func (m mngr) Testimonials() *Testimonials   { return m.testimonials }
func (m mngr) Heroes() *Heroes               { return m.heroes }
func (m mngr) HowSections() *HowSections     { return m.howSections }
func (m mngr) Company() *Company             { return m.company }
