package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOperatingHours = errors.New("invalid operating hours")
	ErrInvalidGranularity    = errors.New("invalid slot granularity")
	ErrEmptyProviderName     = errors.New("provider name cannot be empty")
)

const minutesPerDay = 24 * 60

// OperatingHours is a provider's daily booking window in its local clock,
// expressed as minutes from midnight, plus the fixed step between
// consecutive candidate slots.
type OperatingHours struct {
	opensAt     int
	closesAt    int
	granularity time.Duration
}

func NewOperatingHours(opensAtMin, closesAtMin int, granularity time.Duration) (OperatingHours, error) {
	if opensAtMin < 0 || closesAtMin > minutesPerDay || opensAtMin > closesAtMin {
		return OperatingHours{}, ErrInvalidOperatingHours
	}
	if granularity < time.Minute || granularity%time.Minute != 0 {
		return OperatingHours{}, ErrInvalidGranularity
	}
	return OperatingHours{
		opensAt:     opensAtMin,
		closesAt:    closesAtMin,
		granularity: granularity,
	}, nil
}

func (h OperatingHours) OpensAtMin() int            { return h.opensAt }
func (h OperatingHours) ClosesAtMin() int           { return h.closesAt }
func (h OperatingHours) Granularity() time.Duration { return h.granularity }

// WindowOn anchors the hours to a calendar day. The day's own clock time is
// discarded; only its date matters.
func (h OperatingHours) WindowOn(day time.Time) (time.Time, time.Time) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	opens := midnight.Add(time.Duration(h.opensAt) * time.Minute)
	closes := midnight.Add(time.Duration(h.closesAt) * time.Minute)
	return opens, closes
}

// IsClosed reports whether the window admits no time at all.
func (h OperatingHours) IsClosed() bool {
	return h.opensAt == h.closesAt
}

// Provider is reference data owned by the catalog; the booking core never
// mutates it.
type Provider struct {
	id       uuid.UUID
	name     string
	address  string
	imageURL string
	hours    OperatingHours
}

func NewProvider(id uuid.UUID, name, address, imageURL string, hours OperatingHours) (*Provider, error) {
	if name == "" {
		return nil, ErrEmptyProviderName
	}
	return &Provider{
		id:       id,
		name:     name,
		address:  address,
		imageURL: imageURL,
		hours:    hours,
	}, nil
}

func (p *Provider) ID() uuid.UUID         { return p.id }
func (p *Provider) Name() string          { return p.name }
func (p *Provider) Address() string       { return p.address }
func (p *Provider) ImageURL() string      { return p.imageURL }
func (p *Provider) Hours() OperatingHours { return p.hours }
