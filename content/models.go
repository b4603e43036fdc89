package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Status is the publication state of a content record. Public pages only
// ever see active records; everything else is editorial state.
type Status = string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusOngoing  Status = "ongoing"
	StatusInactive Status = "inactive"
)

// IsValidStatus checks the publication state is a known one
func IsValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusPending, StatusOngoing, StatusInactive:
		return true
	default:
		return false
	}
}

// Announcement is a dated site notice. The date parts are stored as the
// display strings the frontend renders, not as a timestamp.
type Announcement struct {
	bun.BaseModel `bun:"table:announcements,alias:ann"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title"`
	Description   string     `bun:"description,notnull" json:"description"`
	Day           string     `bun:"day,notnull" json:"-"`
	Month         string     `bun:"month,notnull" json:"-"`
	Year          string     `bun:"year,notnull" json:"-"`
	IsNew         bool       `bun:"is_new" json:"isNew"`
	Status        Status     `bun:"status,notnull" json:"status"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Service is one offered service package with its bullet point offerings
type Service struct {
	bun.BaseModel  `bun:"table:services,alias:svc"`
	ID             uuid.UUID   `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title          string      `bun:"title,notnull" json:"title"`
	Description    string      `bun:"description,notnull" json:"description"`
	VideoThumbnail string      `bun:"video_thumbnail" json:"videoThumbnail,omitempty"`
	VideoURL       string      `bun:"video_url" json:"videoUrl,omitempty"`
	Status         Status      `bun:"status,notnull" json:"status"`
	Offerings      []*Offering `bun:"rel:has-many,join:id=service_id" json:"offerings,omitempty"`
	CreatedAt      *time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt      *time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

type Offering struct {
	bun.BaseModel `bun:"table:offerings,alias:off"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	ServiceID     uuid.UUID  `bun:"service_id,type:uuid" json:"service_id,omitempty"`
	Text          string     `bun:"text,notnull" json:"text"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"-"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"-"`
}

type Testimonial struct {
	bun.BaseModel `bun:"table:testimonials,alias:tst"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull" json:"name"`
	Location      string     `bun:"location" json:"location,omitempty"`
	Text          string     `bun:"text,notnull" json:"text"`
	Image         string     `bun:"image" json:"image,omitempty"`
	Status        Status     `bun:"status,notnull" json:"status"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Hero is the landing banner plus the scripted chat preview it shows
type Hero struct {
	bun.BaseModel `bun:"table:hero,alias:hro"`
	ID            uuid.UUID     `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Headline      string        `bun:"headline,notnull" json:"headline"`
	Subheadline   string        `bun:"subheadline,notnull" json:"subheadline"`
	CTAText       string        `bun:"cta_text,notnull" json:"ctaText"`
	UserMessage   string        `bun:"user_message,notnull" json:"-"`
	BotResponse   string        `bun:"bot_response,notnull" json:"-"`
	UserName      string        `bun:"user_name,notnull" json:"-"`
	Status        Status        `bun:"status,notnull" json:"status"`
	Options       []*HeroOption `bun:"rel:has-many,join:id=hero_id" json:"-"`
	CreatedAt     *time.Time    `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time    `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

type HeroOption struct {
	bun.BaseModel `bun:"table:hero_options,alias:hop"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	HeroID        uuid.UUID  `bun:"hero_id,type:uuid" json:"-"`
	Text          string     `bun:"text,notnull" json:"text"`
	Icon          string     `bun:"icon,notnull" json:"icon"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"-"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"-"`
}

// HowSection is the "how it works" block with its ordered steps
type HowSection struct {
	bun.BaseModel `bun:"table:how,alias:how"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title"`
	Subtitle      string     `bun:"subtitle,notnull" json:"subtitle"`
	Status        Status     `bun:"status,notnull" json:"status"`
	Steps         []*HowStep `bun:"rel:has-many,join:id=how_id" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

type HowStep struct {
	bun.BaseModel `bun:"table:how_steps,alias:hst"`
	ID            uuid.UUID `bun:"id,pk,nullzero,type:uuid" json:"-"`
	HowID         uuid.UUID `bun:"how_id,notnull,type:uuid" json:"-"`
	// StepID is the display order, owned by the editor not the database
	StepID      int    `bun:"step_id,notnull" json:"id"`
	Title       string `bun:"title,notnull" json:"title"`
	Description string `bun:"description,notnull" json:"description"`
	Icon        string `bun:"icon,notnull" json:"icon"`
}

// About is the single about-us blurb; the newest row wins
type About struct {
	bun.BaseModel `bun:"table:about_us,alias:abt"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title"`
	Description   string     `bun:"description,notnull" json:"description"`
	Status        Status     `bun:"status,notnull" json:"status"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

type Contact struct {
	bun.BaseModel `bun:"table:contact_us,alias:cnt"`
	ID            uuid.UUID      `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string         `bun:"title,notnull" json:"title"`
	Status        Status         `bun:"status,notnull" json:"status"`
	Items         []*ContactItem `bun:"rel:has-many,join:id=contact_id" json:"items,omitempty"`
	CreatedAt     *time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time     `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

type ContactItem struct {
	bun.BaseModel `bun:"table:contact_items,alias:cni"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	ContactID     uuid.UUID  `bun:"contact_id,notnull,type:uuid" json:"-"`
	Label         string     `bun:"label,notnull" json:"label"`
	Value         string     `bun:"value" json:"value,omitempty"`
	IsMain        bool       `bun:"is_main" json:"isMain"`
	IsAddress     bool       `bun:"is_address" json:"isAddress"`
	IsContact     bool       `bun:"is_contact" json:"isContact"`
	Status        Status     `bun:"status,notnull" json:"status"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// LinkList is a titled footer link collection (useful links)
type LinkList struct {
	bun.BaseModel `bun:"table:useful_links,alias:ulk"`
	ID            uuid.UUID   `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string      `bun:"title,notnull" json:"title"`
	Status        Status      `bun:"status,notnull" json:"status"`
	Items         []*LinkItem `bun:"rel:has-many,join:id=link_list_id" json:"items,omitempty"`
	CreatedAt     *time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

type LinkItem struct {
	bun.BaseModel `bun:"table:useful_link_items,alias:uli"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	LinkListID    uuid.UUID  `bun:"link_list_id,notnull,type:uuid" json:"-"`
	Label         string     `bun:"label,notnull" json:"label"`
	Href          string     `bun:"href,notnull" json:"href"`
	Status        Status     `bun:"status,notnull" json:"status"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

type SocialLink struct {
	bun.BaseModel `bun:"table:social_links,alias:soc"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Platform      string     `bun:"platform,notnull" json:"platform"`
	URL           string     `bun:"url,notnull" json:"url"`
	Icon          string     `bun:"icon,notnull" json:"icon"`
	AriaLabel     string     `bun:"aria_label,notnull" json:"ariaLabel"`
	Status        Status     `bun:"status,notnull" json:"status"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

func prepareStatus(status *Status, def Status) {
	if *status == "" || !IsValidStatus(*status) {
		*status = def
	}
}
