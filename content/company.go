package content

import (
	"context"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"github.com/uptrace/bun"
)

// defaultPhoneRegion anchors parsing of national phone numbers
const defaultPhoneRegion = "TZ"

// CompanyPayload aggregates the footer and contact blocks
type CompanyPayload struct {
	AboutUs     *About          `json:"aboutUs"`
	ContactUs   *Contact        `json:"contactUs"`
	OurServices *LinkListView   `json:"ourServices"`
	UsefulLinks *LinkList       `json:"usefulLinks"`
	SocialLinks []*SocialLink   `json:"socialLinks"`
}

// LinkListView is a derived link collection that has no backing table
type LinkListView struct {
	Title string      `json:"title"`
	Items []*LinkItem `json:"items"`
}

// Company manages the about, contact, link, and social blocks as one unit
type Company struct {
	db       *bun.DB
	services *Services
}

func NewCompanyRepository(db *bun.DB, services *Services) *Company {
	return &Company{db: db, services: services}
}

// Details assembles the company payload, substituting defaults for any
// block that has never been edited
func (c *Company) Details(ctx context.Context) (*CompanyPayload, error) {
	payload := &CompanyPayload{}

	about := &About{}
	err := c.db.NewSelect().
		Model(about).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	switch {
	case err == nil:
		payload.AboutUs = about
	case repository.IsRecordNotFound(err):
		payload.AboutUs = defaultAbout()
	default:
		return nil, err
	}

	contact := &Contact{}
	err = c.db.NewSelect().
		Model(contact).
		Relation("Items").
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	switch {
	case err == nil:
		payload.ContactUs = contact
	case repository.IsRecordNotFound(err):
		payload.ContactUs = defaultContact()
	default:
		return nil, err
	}

	services, err := c.services.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	payload.OurServices = serviceLinks(services)

	links := &LinkList{}
	err = c.db.NewSelect().
		Model(links).
		Relation("Items").
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)
	switch {
	case err == nil:
		payload.UsefulLinks = links
	case repository.IsRecordNotFound(err):
		payload.UsefulLinks = defaultUsefulLinks()
	default:
		return nil, err
	}

	var socials []*SocialLink
	if err := c.db.NewSelect().Model(&socials).Scan(ctx); err != nil {
		return nil, err
	}
	if len(socials) == 0 {
		socials = defaultSocialLinks()
	}
	payload.SocialLinks = socials

	return payload, nil
}

// UpdateAboutTx upserts the single about block
func (c *Company) UpdateAboutTx(ctx context.Context, tx bun.IDB, title, description string) error {
	existing := &About{}
	err := tx.NewSelect().
		Model(existing).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)

	if err != nil {
		if !repository.IsRecordNotFound(err) {
			return err
		}
		record := &About{
			ID:          uuid.New(),
			Title:       title,
			Description: description,
			Status:      StatusActive,
		}
		_, err = tx.NewInsert().Model(record).Exec(ctx)
		return err
	}

	_, err = tx.NewUpdate().
		Model((*About)(nil)).
		Set("title = ?", title).
		Set("description = ?", description).
		Set("updated_at = CURRENT_TIMESTAMP").
		Where("?TableAlias.id = ?", existing.ID).
		Exec(ctx)
	return err
}

// UpdateContactTx replaces the contact block and its items wholesale.
// Phone style items are normalized to international format and rejected
// when they do not parse as real numbers.
func (c *Company) UpdateContactTx(ctx context.Context, tx bun.IDB, title string, items []*ContactItem) error {
	for _, item := range items {
		if err := normalizeContactItem(item); err != nil {
			return err
		}
	}

	existing := &Contact{}
	err := tx.NewSelect().
		Model(existing).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)

	contactID := existing.ID
	if err != nil {
		if !repository.IsRecordNotFound(err) {
			return err
		}
		record := &Contact{
			ID:     uuid.New(),
			Title:  title,
			Status: StatusActive,
		}
		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return err
		}
		contactID = record.ID
	} else {
		if _, err := tx.NewUpdate().
			Model((*Contact)(nil)).
			Set("title = ?", title).
			Set("updated_at = CURRENT_TIMESTAMP").
			Where("?TableAlias.id = ?", contactID).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*ContactItem)(nil)).
			Where("?TableAlias.contact_id = ?", contactID).
			Exec(ctx); err != nil {
			return err
		}
	}

	if len(items) == 0 {
		return nil
	}

	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.ContactID = contactID
		prepareStatus(&item.Status, StatusActive)
	}

	_, err = tx.NewInsert().Model(&items).Exec(ctx)
	return err
}

// UpdateUsefulLinksTx replaces the footer link list wholesale
func (c *Company) UpdateUsefulLinksTx(ctx context.Context, tx bun.IDB, title string, items []*LinkItem) error {
	existing := &LinkList{}
	err := tx.NewSelect().
		Model(existing).
		Order("created_at DESC").
		Limit(1).
		Scan(ctx)

	listID := existing.ID
	if err != nil {
		if !repository.IsRecordNotFound(err) {
			return err
		}
		record := &LinkList{
			ID:     uuid.New(),
			Title:  title,
			Status: StatusActive,
		}
		if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
			return err
		}
		listID = record.ID
	} else {
		if _, err := tx.NewUpdate().
			Model((*LinkList)(nil)).
			Set("title = ?", title).
			Set("updated_at = CURRENT_TIMESTAMP").
			Where("?TableAlias.id = ?", listID).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*LinkItem)(nil)).
			Where("?TableAlias.link_list_id = ?", listID).
			Exec(ctx); err != nil {
			return err
		}
	}

	if len(items) == 0 {
		return nil
	}

	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.LinkListID = listID
		prepareStatus(&item.Status, StatusActive)
	}

	_, err = tx.NewInsert().Model(&items).Exec(ctx)
	return err
}

// UpdateSocialLinksTx replaces the social link set wholesale
func (c *Company) UpdateSocialLinksTx(ctx context.Context, tx bun.IDB, links []*SocialLink) error {
	if _, err := tx.NewDelete().
		Model((*SocialLink)(nil)).
		Where("1 = 1").
		Exec(ctx); err != nil {
		return err
	}

	if len(links) == 0 {
		return nil
	}

	for _, link := range links {
		if link.ID == uuid.Nil {
			link.ID = uuid.New()
		}
		prepareStatus(&link.Status, StatusActive)
	}

	_, err := tx.NewInsert().Model(&links).Exec(ctx)
	return err
}

// normalizeContactItem rewrites phone entries into international format
func normalizeContactItem(item *ContactItem) error {
	if item == nil || !item.IsContact || !looksLikePhone(item.Label) {
		return nil
	}
	if item.Value == "" {
		return nil
	}

	normalized, err := NormalizePhone(item.Value)
	if err != nil {
		return err
	}
	item.Value = normalized
	return nil
}

func looksLikePhone(label string) bool {
	return strings.Contains(strings.ToLower(label), "phone")
}

// NormalizePhone parses a phone number, defaulting to the TZ region for
// national formats, and renders it as an international display string.
func NormalizePhone(value string) (string, error) {
	number, err := phonenumbers.Parse(value, defaultPhoneRegion)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryValidation, "invalid phone number").
			WithMetadata(map[string]any{"value": value})
	}

	if !phonenumbers.IsValidNumber(number) {
		return "", errors.New("invalid phone number", errors.CategoryValidation).
			WithMetadata(map[string]any{"value": value})
	}

	return phonenumbers.Format(number, phonenumbers.INTERNATIONAL), nil
}

// serviceLinks derives the footer services list from the live packages
func serviceLinks(services *ServicesPayload) *LinkListView {
	view := &LinkListView{
		Title: "OUR SERVICE PACKAGES",
		Items: make([]*LinkItem, 0, len(services.Packages)),
	}

	for _, pkg := range services.Packages {
		view.Items = append(view.Items, &LinkItem{
			ID:     pkg.ID,
			Label:  pkg.Title,
			Href:   "#services",
			Status: pkg.Status,
		})
	}

	if len(view.Items) == 0 {
		view.Items = defaultServiceLinks()
	}

	return view
}
