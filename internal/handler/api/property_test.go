//go:build unit

package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"unistay/internal/domain/booking"
	"unistay/internal/handler/api"
	"unistay/internal/usecase/queries"
	"unistay/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubAvailabilityQueries struct {
	gotFrom  time.Time
	gotUntil time.Time
	view     *queries.AvailabilityView
	err      error
}

func (s *stubAvailabilityQueries) GetAvailability(_ context.Context, propertyID uuid.UUID, from, until time.Time) (*queries.AvailabilityView, error) {
	s.gotFrom = from
	s.gotUntil = until
	if s.err != nil {
		return nil, s.err
	}
	view := *s.view
	view.PropertyID = propertyID
	return &view, nil
}

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	stub       *stubAvailabilityQueries
	propertyID uuid.UUID
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.propertyID = uuid.New()
	s.stub = &stubAvailabilityQueries{view: &queries.AvailabilityView{
		UnavailableDates: []queries.UnavailableDate{
			{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Status: booking.DateBooked},
			{Date: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), Status: booking.DateBlocked},
		},
	}}

	handler := api.NewPropertyHandler(nil, nil, s.stub)
	s.router.GET("/properties/:id/availability", handler.GetAvailability)
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) availabilityURL(query string) string {
	return fmt.Sprintf("/properties/%s/availability%s", s.propertyID, query)
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	s.Run("absent window defaults to a year from today", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.availabilityURL(""), nil, "")

		var view queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)

		today := time.Now().UTC().Truncate(24 * time.Hour)
		s.True(s.stub.gotFrom.Equal(today), "from defaulted to %v, want %v", s.stub.gotFrom, today)
		s.True(s.stub.gotUntil.Equal(today.AddDate(0, 0, 366)))
	})

	s.Run("entries carry the booked or blocked tag", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.availabilityURL(""), nil, "")

		var view queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)

		s.Require().Len(view.UnavailableDates, 2)
		s.Equal(booking.DateBooked, view.UnavailableDates[0].Status)
		s.Equal(booking.DateBlocked, view.UnavailableDates[1].Status)
	})

	s.Run("explicit window is forwarded", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			s.availabilityURL("?from=2026-09-01&until=2026-10-01"), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.stub.gotFrom.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)))
		s.True(s.stub.gotUntil.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	})

	s.Run("only from given defaults until a year later", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			s.availabilityURL("?from=2026-09-01"), nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.True(s.stub.gotUntil.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 366)))
	})

	s.Run("malformed date is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			s.availabilityURL("?from=09-01-2026"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("unknown property", func() {
		s.stub.err = queries.ErrPropertyNotFound
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.availabilityURL(""), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})
}
