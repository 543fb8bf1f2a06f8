package survey

import (
	"errors"
	"strings"
	"time"

	"engage-api/internal/domain/offer"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrEmptyQuestion     = errors.New("question cannot be empty")
	ErrInvalidTransition = errors.New("invalid survey status transition")
	ErrSurveyNotActive   = errors.New("survey is not accepting responses")
)

const MaxTitleLength = 120

// Survey is a single-question satisfaction survey owned by a business.
type Survey struct {
	id         uuid.UUID
	businessID uuid.UUID
	title      string
	status     offer.Status
	question   string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewSurvey(businessID uuid.UUID, title, question string) (*Survey, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	return &Survey{
		id:         uuid.New(),
		businessID: businessID,
		title:      title,
		status:     offer.StatusActive,
		question:   question,
	}, nil
}

func ReconstructSurvey(id, businessID uuid.UUID, title string, status offer.Status, question string, createdAt, updatedAt time.Time) *Survey {
	return &Survey{
		id:         id,
		businessID: businessID,
		title:      title,
		status:     status,
		question:   question,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Survey) ChangeStatus(next offer.Status) error {
	if !s.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	s.status = next
	return nil
}

func (s *Survey) OwnedBy(businessID uuid.UUID) bool {
	return s.businessID == businessID
}

func (s *Survey) AcceptsResponses() bool {
	return s.status == offer.StatusActive
}

func (s *Survey) ID() uuid.UUID         { return s.id }
func (s *Survey) BusinessID() uuid.UUID { return s.businessID }
func (s *Survey) Title() string         { return s.title }
func (s *Survey) Status() offer.Status  { return s.status }
func (s *Survey) Question() string      { return s.question }
func (s *Survey) CreatedAt() time.Time  { return s.createdAt }
func (s *Survey) UpdatedAt() time.Time  { return s.updatedAt }
