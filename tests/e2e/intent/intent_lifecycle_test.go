//go:build e2e

package intent_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"engage-api/internal/handler/dto/request"
	"engage-api/internal/handler/dto/response"
	"engage-api/tests/common/authtest"
	"engage-api/tests/common/httptest"
	"engage-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cardsURL        = "/api/cards"
	cardIntentsURL  = "/api/cards/%s/intents"
	cardProgressURL = "/api/cards/%s/progress?customer_id=%s"
	programsURL     = "/api/referral-programs"
	programIntents  = "/api/referral-programs/%s/intents"
	participantsURL = "/api/referral-programs/%s/participants"
	giftsURL        = "/api/gifts"
	giftIntentsURL  = "/api/gifts/%s/intents"
	consumeURL      = "/api/intents/%s/consume"
	finalizeURL     = "/api/intents/%s/finalize"
	cancelURL       = "/api/intents/%s/cancel"
)

type IntentLifecycleSuite struct {
	e2e.SharedSuite
}

func TestIntentLifecycleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(IntentLifecycleSuite))
}

func (s *IntentLifecycleSuite) createCard(t *testing.T, ownerToken string, stampsRequired int32) response.CardResponse {
	t.Helper()

	now := time.Now()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, cardsURL, request.CreateCardRequest{
		Title:          "Coffee Club",
		ValidFrom:      now.Add(-time.Hour),
		ValidUntil:     now.AddDate(0, 6, 0),
		StampsRequired: stampsRequired,
		Reward:         "one free espresso",
	}, ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var card response.CardResponse
	httptest.DecodeResponseBody(t, w.Body, &card)
	require.NotEqual(t, uuid.Nil, card.ID)
	require.Equal(t, "active", card.Status)
	return card
}

func (s *IntentLifecycleSuite) TestStampIntentLifecycle() {
	s.Run("stamp intent runs pending, consumed, claimed", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		customerToken, customerID := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer", nil)

		card := s.createCard(t, ownerToken, 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cardIntentsURL, card.ID),
			request.CreateIntentRequest{CustomerID: &customerID, Quantity: 3}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "pending", created.Status)
		require.Equal(t, "stamp", created.Kind)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(consumeURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var consumed response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &consumed)
		require.Equal(t, "consumed", consumed.Status)
		require.NotNil(t, consumed.ConsumedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, created.ID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var finalized response.FinalizeIntentResponse
		httptest.DecodeResponseBody(t, w.Body, &finalized)
		require.False(t, finalized.AlreadyClaimed)
		require.Equal(t, "claimed", finalized.Intent.Status)

		// Second finalize is an idempotent noop.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, created.ID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		httptest.DecodeResponseBody(t, w.Body, &finalized)
		require.True(t, finalized.AlreadyClaimed)

		// The consume appended a punch, visible in the progress view.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(cardProgressURL, card.ID, customerID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var progress response.CardProgressResponse
		httptest.DecodeResponseBody(t, w.Body, &progress)
		require.Equal(t, int32(3), progress.Total)
		require.Equal(t, int32(10), progress.Goal)
		require.Equal(t, 30, progress.Percent)
		require.False(t, progress.Completed)
	})

	s.Run("double consume is rejected", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		customerToken, customerID := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer", nil)

		card := s.createCard(t, ownerToken, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cardIntentsURL, card.ID),
			request.CreateIntentRequest{CustomerID: &customerID}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(consumeURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(consumeURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("bound intent cannot be consumed by another customer", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		_, customerID := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer", nil)
		strangerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "customer", nil)

		card := s.createCard(t, ownerToken, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cardIntentsURL, card.ID),
			request.CreateIntentRequest{CustomerID: &customerID}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(consumeURL, created.ID), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("canceled intent cannot be consumed", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		customerToken, customerID := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer", nil)

		card := s.createCard(t, ownerToken, 5)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cardIntentsURL, card.ID),
			request.CreateIntentRequest{CustomerID: &customerID}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var canceled response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &canceled)
		require.Equal(t, "canceled", canceled.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(consumeURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *IntentLifecycleSuite) TestReferralIntentLifecycle() {
	s.Run("referrer is credited when the claim is finalized", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		referrerToken, referrerID := authtest.CreateAndLogin(t, s.DB, s.Router, "referrer@example.com", "customer", nil)
		friendToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "friend@example.com", "customer", nil)

		now := time.Now()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, programsURL, request.CreateReferralProgramRequest{
			Title:      "Bring a friend",
			ValidFrom:  now.Add(-time.Hour),
			ValidUntil: now.AddDate(0, 3, 0),
			Reward:     "500 yen off",
		}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var program response.ReferralProgramResponse
		httptest.DecodeResponseBody(t, w.Body, &program)

		// The referrer opens an unbound intent to share with a friend.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(programIntents, program.ID),
			request.CreateIntentRequest{}, referrerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Nil(t, created.CustomerID)

		// The friend consumes it, binding themselves.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(consumeURL, created.ID), nil, friendToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// Only the referrer may finalize a consumed referral intent.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, created.ID), nil, friendToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(finalizeURL, created.ID), nil, referrerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(participantsURL, program.ID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var participants []*response.ParticipantResponse
		httptest.DecodeResponseBody(t, w.Body, &participants)
		require.Len(t, participants, 1)
		require.Equal(t, referrerID, participants[0].CustomerID)
		require.Equal(t, int32(1), participants[0].Credited)
	})

	s.Run("referrer cap limits open intents", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		referrerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "referrer@example.com", "customer", nil)

		referrerCap := int32(1)
		now := time.Now()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, programsURL, request.CreateReferralProgramRequest{
			Title:       "Bring a friend",
			ValidFrom:   now.Add(-time.Hour),
			ValidUntil:  now.AddDate(0, 3, 0),
			ReferrerCap: &referrerCap,
			Reward:      "500 yen off",
		}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var program response.ReferralProgramResponse
		httptest.DecodeResponseBody(t, w.Body, &program)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(programIntents, program.ID),
			request.CreateIntentRequest{}, referrerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(programIntents, program.ID),
			request.CreateIntentRequest{}, referrerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *IntentLifecycleSuite) TestGiftIntentQuota() {
	s.Run("total cap spans all customers", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		firstToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com", "customer", nil)
		secondToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com", "customer", nil)

		totalCap := int32(1)
		now := time.Now()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, giftsURL, request.CreateGiftRequest{
			Title:       "Anniversary cake",
			ValidFrom:   now.Add(-time.Hour),
			ValidUntil:  now.AddDate(0, 1, 0),
			TotalCap:    &totalCap,
			Description: "one slice per table",
		}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var gift struct {
			ID uuid.UUID `json:"id"`
		}
		httptest.DecodeResponseBody(t, w.Body, &gift)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(giftIntentsURL, gift.ID),
			request.CreateIntentRequest{}, firstToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(giftIntentsURL, gift.ID),
			request.CreateIntentRequest{}, secondToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("canceled intents free quota", func() {
		t := s.T()

		ownerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", "owner", nil)
		customerToken, _ := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", "customer", nil)

		perCustomer := int32(1)
		now := time.Now()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, giftsURL, request.CreateGiftRequest{
			Title:          "Anniversary cake",
			ValidFrom:      now.Add(-time.Hour),
			ValidUntil:     now.AddDate(0, 1, 0),
			PerCustomerCap: &perCustomer,
			Description:    "one slice per table",
		}, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var gift struct {
			ID uuid.UUID `json:"id"`
		}
		httptest.DecodeResponseBody(t, w.Body, &gift)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(giftIntentsURL, gift.ID),
			request.CreateIntentRequest{}, customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.IntentResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(giftIntentsURL, gift.ID),
			request.CreateIntentRequest{}, customerToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(giftIntentsURL, gift.ID),
			request.CreateIntentRequest{}, customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}
