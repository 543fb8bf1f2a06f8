package survey

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment is too long")
)

const MaxCommentLength = 1000

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

// Comments are optional; only the length is bounded.
func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Response is a customer's answer to a survey.
type Response struct {
	id         uuid.UUID
	surveyID   uuid.UUID
	customerID uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
}

func NewResponse(s *Survey, customerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Response, error) {
	if !s.AcceptsResponses() {
		return nil, ErrSurveyNotActive
	}
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	return &Response{
		id:         uuid.New(),
		surveyID:   s.ID(),
		customerID: customerID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
	}, nil
}

func ReconstructResponse(id, surveyID, customerID uuid.UUID, rating Rating, comment Comment, createdAt time.Time) *Response {
	return &Response{
		id:         id,
		surveyID:   surveyID,
		customerID: customerID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
	}
}

func (r *Response) ID() uuid.UUID         { return r.id }
func (r *Response) SurveyID() uuid.UUID   { return r.surveyID }
func (r *Response) CustomerID() uuid.UUID { return r.customerID }
func (r *Response) Rating() Rating        { return r.rating }
func (r *Response) Comment() Comment      { return r.comment }
func (r *Response) CreatedAt() time.Time  { return r.createdAt }
