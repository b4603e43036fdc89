package content

import (
	"context"
)

// WebPayload aggregates everything the public site needs in one request
type WebPayload struct {
	HeaderData        *HeaderData           `json:"headerData"`
	FooterData        *CompanyPayload       `json:"footerData"`
	HeroData          *HeroPayload          `json:"heroData"`
	TestimonialsData  *TestimonialsPayload  `json:"testimonialsData"`
	ServicesData      *ServicesPayload      `json:"servicesData"`
	HowData           *HowPayload           `json:"howData"`
	AnnouncementsData *AnnouncementsPayload `json:"announcementsData"`
	Stats             *Stats                `json:"stats"`
}

type HeaderData struct {
	NavigationLinks []*LinkItem `json:"navigationLinks"`
}

type Stats struct {
	TestimonialCount int `json:"testimonialCount"`
	ServiceCount     int `json:"serviceCount"`
	UserCount        int `json:"userCount"`
}

// UserCounter decouples the aggregate from the auth store
type UserCounter interface {
	CountAccounts(ctx context.Context) (int, error)
}

// WebAggregator builds the combined payload for the public site
type WebAggregator struct {
	manager Manager
	users   UserCounter
}

func NewWebAggregator(manager Manager, users UserCounter) *WebAggregator {
	return &WebAggregator{manager: manager, users: users}
}

// WebData assembles the full page payload from the published content
func (w *WebAggregator) WebData(ctx context.Context) (*WebPayload, error) {
	company, err := w.manager.Company().Details(ctx)
	if err != nil {
		return nil, err
	}

	hero, err := w.manager.Heroes().Active(ctx)
	if err != nil {
		return nil, err
	}

	testimonials, err := w.manager.Testimonials().ListActive(ctx)
	if err != nil {
		return nil, err
	}

	services, err := w.manager.Services().ListActive(ctx)
	if err != nil {
		return nil, err
	}

	how, err := w.manager.HowSections().Active(ctx)
	if err != nil {
		return nil, err
	}

	announcements, err := w.manager.Announcements().ListActive(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := w.statsFrom(ctx, testimonials, services)
	if err != nil {
		return nil, err
	}

	return &WebPayload{
		HeaderData:        &HeaderData{NavigationLinks: company.UsefulLinks.Items},
		FooterData:        company,
		HeroData:          hero,
		TestimonialsData:  testimonials,
		ServicesData:      services,
		HowData:           how,
		AnnouncementsData: announcements,
		Stats:             stats,
	}, nil
}

// SiteStats returns the counts shown on the dashboard
func (w *WebAggregator) SiteStats(ctx context.Context) (*Stats, error) {
	testimonials, err := w.manager.Testimonials().ListActive(ctx)
	if err != nil {
		return nil, err
	}

	services, err := w.manager.Services().ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return w.statsFrom(ctx, testimonials, services)
}

func (w *WebAggregator) statsFrom(ctx context.Context, testimonials *TestimonialsPayload, services *ServicesPayload) (*Stats, error) {
	userCount := 0
	if w.users != nil {
		count, err := w.users.CountAccounts(ctx)
		if err != nil {
			return nil, err
		}
		userCount = count
	}

	return &Stats{
		TestimonialCount: len(testimonials.Testimonials),
		ServiceCount:     len(services.Packages),
		UserCount:        userCount,
	}, nil
}
