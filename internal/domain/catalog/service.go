package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrInvalidDuration    = errors.New("service duration must be positive whole minutes")
	ErrNegativePriceCents = errors.New("service price cannot be negative")
)

// Service is a bookable offering of one provider. Its duration determines
// how late in the day a slot may still start.
type Service struct {
	id          uuid.UUID
	providerID  uuid.UUID
	name        string
	description string
	imageURL    string
	priceCents  int64
	duration    time.Duration
}

func NewService(id, providerID uuid.UUID, name, description, imageURL string, priceCents int64, duration time.Duration) (*Service, error) {
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if duration < time.Minute || duration%time.Minute != 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePriceCents
	}
	return &Service{
		id:          id,
		providerID:  providerID,
		name:        name,
		description: description,
		imageURL:    imageURL,
		priceCents:  priceCents,
		duration:    duration,
	}, nil
}

func (s *Service) ID() uuid.UUID           { return s.id }
func (s *Service) ProviderID() uuid.UUID   { return s.providerID }
func (s *Service) Name() string            { return s.name }
func (s *Service) Description() string     { return s.description }
func (s *Service) ImageURL() string        { return s.imageURL }
func (s *Service) PriceCents() int64       { return s.priceCents }
func (s *Service) Duration() time.Duration { return s.duration }
