package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyCity         = errors.New("city cannot be empty")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrInvalidStayLimits = errors.New("invalid stay length limits")
	ErrInvalidGuestLimit = errors.New("max guests must be positive")
)

// Property is the listing as the booking subsystem sees it: pricing inputs
// and stay-length constraints. It is immutable for the lifetime of a booking;
// bookings read a snapshot inside their own transaction.
type Property struct {
	id                   uuid.UUID
	hostID               uuid.UUID
	title                string
	description          string
	city                 string
	monthlyPriceCents    int64
	cleaningFeeCents     int64
	securityDepositCents int64
	minimumStayWeeks     int
	maximumStayMonths    int
	bedrooms             int
	maxGuests            int
	isActive             bool
	createdAt            time.Time
	updatedAt            time.Time
}

type NewPropertyParams struct {
	HostID               uuid.UUID
	Title                string
	Description          string
	City                 string
	MonthlyPriceCents    int64
	CleaningFeeCents     int64
	SecurityDepositCents int64
	MinimumStayWeeks     int
	MaximumStayMonths    int
	Bedrooms             int
	MaxGuests            int
}

func NewProperty(p NewPropertyParams) (*Property, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	city := strings.TrimSpace(p.City)
	if city == "" {
		return nil, ErrEmptyCity
	}
	if p.MonthlyPriceCents < 0 || p.CleaningFeeCents < 0 || p.SecurityDepositCents < 0 {
		return nil, ErrNegativePrice
	}
	if p.MinimumStayWeeks < 0 || p.MaximumStayMonths <= 0 {
		return nil, ErrInvalidStayLimits
	}
	if p.MaxGuests <= 0 {
		return nil, ErrInvalidGuestLimit
	}

	return &Property{
		id:                   uuid.New(),
		hostID:               p.HostID,
		title:                title,
		description:          strings.TrimSpace(p.Description),
		city:                 city,
		monthlyPriceCents:    p.MonthlyPriceCents,
		cleaningFeeCents:     p.CleaningFeeCents,
		securityDepositCents: p.SecurityDepositCents,
		minimumStayWeeks:     p.MinimumStayWeeks,
		maximumStayMonths:    p.MaximumStayMonths,
		bedrooms:             p.Bedrooms,
		maxGuests:            p.MaxGuests,
		isActive:             true,
	}, nil
}

type ReconstructParams struct {
	ID                   uuid.UUID
	HostID               uuid.UUID
	Title                string
	Description          string
	City                 string
	MonthlyPriceCents    int64
	CleaningFeeCents     int64
	SecurityDepositCents int64
	MinimumStayWeeks     int
	MaximumStayMonths    int
	Bedrooms             int
	MaxGuests            int
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func ReconstructProperty(p ReconstructParams) *Property {
	return &Property{
		id:                   p.ID,
		hostID:               p.HostID,
		title:                p.Title,
		description:          p.Description,
		city:                 p.City,
		monthlyPriceCents:    p.MonthlyPriceCents,
		cleaningFeeCents:     p.CleaningFeeCents,
		securityDepositCents: p.SecurityDepositCents,
		minimumStayWeeks:     p.MinimumStayWeeks,
		maximumStayMonths:    p.MaximumStayMonths,
		bedrooms:             p.Bedrooms,
		maxGuests:            p.MaxGuests,
		isActive:             p.IsActive,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}
}

// UpdateDetails revalidates the full field set. Price and stay-limit changes
// only affect future bookings; existing ones keep their snapshot.
func (p *Property) UpdateDetails(params NewPropertyParams, now time.Time) error {
	validated, err := NewProperty(params)
	if err != nil {
		return err
	}

	p.title = validated.title
	p.description = validated.description
	p.city = validated.city
	p.monthlyPriceCents = validated.monthlyPriceCents
	p.cleaningFeeCents = validated.cleaningFeeCents
	p.securityDepositCents = validated.securityDepositCents
	p.minimumStayWeeks = validated.minimumStayWeeks
	p.maximumStayMonths = validated.maximumStayMonths
	p.bedrooms = validated.bedrooms
	p.maxGuests = validated.maxGuests
	p.updatedAt = now
	return nil
}

func (p *Property) Deactivate(now time.Time) {
	p.isActive = false
	p.updatedAt = now
}

func (p *Property) Activate(now time.Time) {
	p.isActive = true
	p.updatedAt = now
}

func (p *Property) ID() uuid.UUID               { return p.id }
func (p *Property) HostID() uuid.UUID           { return p.hostID }
func (p *Property) Title() string               { return p.title }
func (p *Property) Description() string         { return p.description }
func (p *Property) City() string                { return p.city }
func (p *Property) MonthlyPriceCents() int64    { return p.monthlyPriceCents }
func (p *Property) CleaningFeeCents() int64     { return p.cleaningFeeCents }
func (p *Property) SecurityDepositCents() int64 { return p.securityDepositCents }
func (p *Property) MinimumStayWeeks() int       { return p.minimumStayWeeks }
func (p *Property) MaximumStayMonths() int      { return p.maximumStayMonths }
func (p *Property) Bedrooms() int               { return p.bedrooms }
func (p *Property) MaxGuests() int              { return p.maxGuests }
func (p *Property) IsActive() bool              { return p.isActive }
func (p *Property) CreatedAt() time.Time        { return p.createdAt }
func (p *Property) UpdatedAt() time.Time        { return p.updatedAt }
