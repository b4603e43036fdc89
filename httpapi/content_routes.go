package httpapi

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/clc-tz/legalbridge-backend/content"
)

func (s *Server) registerContentRoutes(app *fiber.App) {
	svc := app.Group("/services")
	svc.Get("", s.servicesIndex)
	svc.Post("", s.requireAuth(), s.serviceCreate)
	svc.Put("/:id", s.requireAuth(), s.serviceUpdate)
	svc.Delete("/:id", s.requireAuth(), s.serviceDelete)

	tst := app.Group("/testimonials")
	tst.Get("", s.testimonialsIndex)
	tst.Post("", s.requireAuth(), s.testimonialCreate)
	tst.Put("/:id", s.requireAuth(), s.testimonialUpdate)
	tst.Delete("/:id", s.requireAuth(), s.testimonialDelete)

	hro := app.Group("/hero")
	hro.Get("", s.heroShow)
	hro.Get("/all", s.heroIndex)
	hro.Post("", s.requireAuth(), s.heroCreate)
	hro.Put("/:id", s.requireAuth(), s.heroUpdate)
	hro.Delete("/:id", s.requireAuth(), s.heroDelete)

	cmp := app.Group("/company-details")
	cmp.Get("", s.companyShow)
	cmp.Put("/about", s.requireAuth(), s.companyAboutUpdate)
	cmp.Put("/contact", s.requireAuth(), s.companyContactUpdate)
	cmp.Put("/useful-links", s.requireAuth(), s.companyLinksUpdate)
	cmp.Put("/social-links", s.requireAuth(), s.companySocialUpdate)

	ann := app.Group("/announcements")
	ann.Get("", s.announcementsIndex)
	ann.Post("", s.requireAuth(), s.announcementCreate)
	ann.Put("/:id", s.requireAuth(), s.announcementUpdate)
	ann.Delete("/:id", s.requireAuth(), s.announcementDelete)

	how := app.Group("/how")
	how.Get("", s.howShow)
	how.Get("/all", s.howIndex)
	how.Post("", s.requireAuth(), s.howCreate)
	how.Put("/:id", s.requireAuth(), s.howUpdate)
	how.Delete("/:id", s.requireAuth(), s.howDelete)
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}
	return nil
}

func pathID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryBadInput, "invalid record id").
			WithCode(errors.CodeBadRequest)
	}
	return id, nil
}

// ---- services

// ServiceRequest is the service package create/update payload
type ServiceRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	VideoThumbnail string `json:"videoThumbnail"`
	VideoURL       string `json:"videoUrl"`
	Offerings      []struct {
		Text string `json:"text"`
	} `json:"offerings"`
	Status string `json:"status"`
}

func (r ServiceRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
			validation.Field(&r.Description, validation.Required),
		)
	}, "Invalid service payload")
}

func (r ServiceRequest) toModel() *content.Service {
	record := &content.Service{
		Title:          r.Title,
		Description:    r.Description,
		VideoThumbnail: r.VideoThumbnail,
		VideoURL:       r.VideoURL,
		Status:         r.Status,
	}
	for _, offering := range r.Offerings {
		record.Offerings = append(record.Offerings, &content.Offering{Text: offering.Text})
	}
	return record
}

func (s *Server) servicesIndex(c *fiber.Ctx) error {
	payload, err := s.manager.Services().ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

func (s *Server) serviceCreate(c *fiber.Ctx) error {
	payload := new(ServiceRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record := payload.toModel()
	err := s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := s.manager.Services().AddTx(ctx, tx, record)
		return err
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      record.ID,
		"message": "Service added",
	})
}

func (s *Server) serviceUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(ServiceRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record := payload.toModel()
	record.ID = id

	err = s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := s.manager.Services().UpdateTx(ctx, tx, record)
		return err
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Service updated"})
}

func (s *Server) serviceDelete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		return s.manager.Services().DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Service deleted"})
}

// ---- testimonials

// TestimonialRequest is the testimonial create/update payload
type TestimonialRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Text     string `json:"text"`
	Image    string `json:"image"`
	Status   string `json:"status"`
}

func (r TestimonialRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
			validation.Field(&r.Text, validation.Required),
		)
	}, "Invalid testimonial payload")
}

func (s *Server) testimonialsIndex(c *fiber.Ctx) error {
	payload, err := s.manager.Testimonials().ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

func (s *Server) testimonialCreate(c *fiber.Ctx) error {
	payload := new(TestimonialRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record, err := s.manager.Testimonials().Add(c.UserContext(), &content.Testimonial{
		Name:     payload.Name,
		Location: payload.Location,
		Text:     payload.Text,
		Image:    payload.Image,
		Status:   payload.Status,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      record.ID,
		"message": "Testimonial added",
	})
}

func (s *Server) testimonialUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(TestimonialRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	_, err = s.manager.Testimonials().Update(c.UserContext(), &content.Testimonial{
		ID:       id,
		Name:     payload.Name,
		Location: payload.Location,
		Text:     payload.Text,
		Image:    payload.Image,
		Status:   payload.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Testimonial updated"})
}

func (s *Server) testimonialDelete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.manager.Testimonials().Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Testimonial deleted"})
}

// ---- hero

// HeroRequest is the hero banner create/update payload
type HeroRequest struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
	ChatData    struct {
		UserMessage string `json:"userMessage"`
		BotResponse string `json:"botResponse"`
		UserName    string `json:"userName"`
		Options     []struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"options"`
	} `json:"chatData"`
	Status string `json:"status"`
}

func (r HeroRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Headline, validation.Required),
			validation.Field(&r.Subheadline, validation.Required),
			validation.Field(&r.CTAText, validation.Required),
		)
	}, "Invalid hero payload")
}

func (r HeroRequest) toModel() *content.Hero {
	record := &content.Hero{
		Headline:    r.Headline,
		Subheadline: r.Subheadline,
		CTAText:     r.CTAText,
		UserMessage: r.ChatData.UserMessage,
		BotResponse: r.ChatData.BotResponse,
		UserName:    r.ChatData.UserName,
		Status:      r.Status,
	}
	for _, option := range r.ChatData.Options {
		record.Options = append(record.Options, &content.HeroOption{
			Text: option.Text,
			Icon: option.Icon,
		})
	}
	return record
}

func (s *Server) heroShow(c *fiber.Ctx) error {
	payload, err := s.manager.Heroes().Active(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

func (s *Server) heroIndex(c *fiber.Ctx) error {
	payloads, err := s.manager.Heroes().ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payloads)
}

func (s *Server) heroCreate(c *fiber.Ctx) error {
	payload := new(HeroRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record := payload.toModel()
	err := s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := s.manager.Heroes().AddTx(ctx, tx, record)
		return err
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      record.ID,
		"message": "Hero added",
	})
}

func (s *Server) heroUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(HeroRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record := payload.toModel()
	record.ID = id

	err = s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := s.manager.Heroes().UpdateTx(ctx, tx, record)
		return err
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Hero updated"})
}

func (s *Server) heroDelete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		return s.manager.Heroes().DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Hero deleted"})
}

// ---- company details

func (s *Server) companyShow(c *fiber.Ctx) error {
	payload, err := s.manager.Company().Details(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

// AboutRequest updates the about-us blurb
type AboutRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r AboutRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required),
			validation.Field(&r.Description, validation.Required),
		)
	}, "Invalid about payload")
}

func (s *Server) companyAboutUpdate(c *fiber.Ctx) error {
	payload := new(AboutRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	err := s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		return s.manager.Company().UpdateAboutTx(ctx, tx, payload.Title, payload.Description)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "About us updated"})
}

// ContactRequest replaces the contact block and its items
type ContactRequest struct {
	Title string `json:"title"`
	Items []struct {
		Label     string `json:"label"`
		Value     string `json:"value"`
		IsMain    bool   `json:"isMain"`
		IsAddress bool   `json:"isAddress"`
		IsContact bool   `json:"isContact"`
	} `json:"items"`
}

func (r ContactRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required),
			validation.Field(&r.Items, validation.Required),
		)
	}, "Invalid contact payload")
}

func (s *Server) companyContactUpdate(c *fiber.Ctx) error {
	payload := new(ContactRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	items := make([]*content.ContactItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, &content.ContactItem{
			Label:     item.Label,
			Value:     item.Value,
			IsMain:    item.IsMain,
			IsAddress: item.IsAddress,
			IsContact: item.IsContact,
		})
	}

	err := s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		return s.manager.Company().UpdateContactTx(ctx, tx, payload.Title, items)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Contact us updated"})
}

// LinksRequest replaces the footer useful links
type LinksRequest struct {
	Title string `json:"title"`
	Items []struct {
		Label string `json:"label"`
		Href  string `json:"href"`
	} `json:"items"`
}

func (r LinksRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required),
			validation.Field(&r.Items, validation.Required),
		)
	}, "Invalid links payload")
}

func (s *Server) companyLinksUpdate(c *fiber.Ctx) error {
	payload := new(LinksRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	items := make([]*content.LinkItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, &content.LinkItem{
			Label: item.Label,
			Href:  item.Href,
		})
	}

	err := s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		return s.manager.Company().UpdateUsefulLinksTx(ctx, tx, payload.Title, items)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Useful links updated"})
}

// SocialRequest replaces the social media links
type SocialRequest struct {
	SocialLinks []struct {
		Platform  string `json:"platform"`
		URL       string `json:"url"`
		Icon      string `json:"icon"`
		AriaLabel string `json:"ariaLabel"`
	} `json:"socialLinks"`
}

func (r SocialRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.SocialLinks, validation.Required),
		)
	}, "Invalid social links payload")
}

func (s *Server) companySocialUpdate(c *fiber.Ctx) error {
	payload := new(SocialRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	links := make([]*content.SocialLink, 0, len(payload.SocialLinks))
	for _, link := range payload.SocialLinks {
		links = append(links, &content.SocialLink{
			Platform:  link.Platform,
			URL:       link.URL,
			Icon:      link.Icon,
			AriaLabel: link.AriaLabel,
		})
	}

	err := s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		return s.manager.Company().UpdateSocialLinksTx(ctx, tx, links)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Social links updated"})
}

// ---- announcements

// AnnouncementRequest is the announcement create/update payload
type AnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        struct {
		Day   string `json:"day"`
		Month string `json:"month"`
		Year  string `json:"year"`
	} `json:"date"`
	IsNew  *bool  `json:"isNew"`
	Status string `json:"status"`
}

func (r AnnouncementRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required),
			validation.Field(&r.Description, validation.Required),
		)
	}, "Invalid announcement payload")
}

func (r AnnouncementRequest) toModel() *content.Announcement {
	isNew := true
	if r.IsNew != nil {
		isNew = *r.IsNew
	}
	return &content.Announcement{
		Title:       r.Title,
		Description: r.Description,
		Day:         r.Date.Day,
		Month:       r.Date.Month,
		Year:        r.Date.Year,
		IsNew:       isNew,
		Status:      r.Status,
	}
}

func (s *Server) announcementsIndex(c *fiber.Ctx) error {
	payload, err := s.manager.Announcements().ListActive(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

func (s *Server) announcementCreate(c *fiber.Ctx) error {
	payload := new(AnnouncementRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record, err := s.manager.Announcements().Add(c.UserContext(), payload.toModel())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      record.ID,
		"message": "Announcement added",
	})
}

func (s *Server) announcementUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(AnnouncementRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record := payload.toModel()
	record.ID = id

	if _, err := s.manager.Announcements().Update(c.UserContext(), record); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Announcement updated"})
}

func (s *Server) announcementDelete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := s.manager.Announcements().Delete(c.UserContext(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Announcement deleted"})
}

// ---- how it works

// HowRequest is the how-it-works create/update payload
type HowRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Steps    []struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"steps"`
	Status string `json:"status"`
}

func (r HowRequest) Validate() *errors.Error {
	return errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&r,
			validation.Field(&r.Title, validation.Required),
			validation.Field(&r.Subtitle, validation.Required),
		)
	}, "Invalid how payload")
}

func (r HowRequest) toModel() *content.HowSection {
	record := &content.HowSection{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Status:   r.Status,
	}
	for _, step := range r.Steps {
		record.Steps = append(record.Steps, &content.HowStep{
			StepID:      step.ID,
			Title:       step.Title,
			Description: step.Description,
			Icon:        step.Icon,
		})
	}
	return record
}

func (s *Server) howShow(c *fiber.Ctx) error {
	payload, err := s.manager.HowSections().Active(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payload)
}

func (s *Server) howIndex(c *fiber.Ctx) error {
	payloads, err := s.manager.HowSections().ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(payloads)
}

func (s *Server) howCreate(c *fiber.Ctx) error {
	payload := new(HowRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record := payload.toModel()
	err := s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := s.manager.HowSections().AddTx(ctx, tx, record)
		return err
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      record.ID,
		"message": "How section added",
	})
}

func (s *Server) howUpdate(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(HowRequest)
	if err := parseBody(c, payload); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	record := payload.toModel()
	record.ID = id

	err = s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := s.manager.HowSections().UpdateTx(ctx, tx, record)
		return err
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "How section updated"})
}

func (s *Server) howDelete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	err = s.manager.RunInTx(c.UserContext(), nil, func(ctx context.Context, tx bun.Tx) error {
		return s.manager.HowSections().DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "How section deleted"})
}
