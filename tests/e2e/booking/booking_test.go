//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"unistay/internal/domain/booking"
	reqdto "unistay/internal/handler/dto/request"
	resdto "unistay/internal/handler/dto/response"
	"unistay/internal/usecase/queries"
	"unistay/tests/common/httptest"
	"unistay/tests/e2e"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/suite"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

// registerAndLogin creates an account through the API and returns a bearer token.
func (s *bookingSuite) registerAndLogin(email, role string) (uuid.UUID, string) {
	t := s.T()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", reqdto.RegisterRequest{
		Email:    email,
		Password: "password123",
		Role:     role,
	}, "")
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var registered resdto.RegisterResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &registered)

	rec = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", reqdto.LoginRequest{
		Email:    email,
		Password: "password123",
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var login resdto.LoginResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &login)
	s.Require().NotEmpty(login.AccessToken)

	return registered.UserID, login.AccessToken
}

func (s *bookingSuite) createProperty(hostToken string) uuid.UUID {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/properties", reqdto.CreatePropertyRequest{
		Title:                "Canal-side room",
		Description:          "Room with a view of the Rapenburg.",
		City:                 "Leiden",
		MonthlyPriceCents:    100000,
		CleaningFeeCents:     5000,
		SecurityDepositCents: 50000,
		MaximumStayMonths:    12,
		Bedrooms:             1,
		MaxGuests:            2,
	}, hostToken)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created resdto.PropertyCreatedResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)
	return created.PropertyID
}

func (s *bookingSuite) TestBookingLifecycle() {
	checkIn := time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour)
	checkOut := checkIn.AddDate(0, 0, 4)

	s.Run("book, conflict, confirm, cancel, rebook", func() {
		_, hostToken := s.registerAndLogin("host@example.com", "host")
		_, guestToken := s.registerAndLogin("guest@example.com", "guest")
		_, rivalToken := s.registerAndLogin("rival@example.com", "guest")
		propertyID := s.createProperty(hostToken)

		bookReq := reqdto.CreateBookingRequest{
			PropertyID: propertyID,
			CheckIn:    checkIn.Format(time.DateOnly),
			CheckOut:   checkOut.Format(time.DateOnly),
			GuestCount: 1,
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", bookReq, guestToken)
		var booked resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)

		// 100000/month at 4 nights: 3333/night, 12% service fee, cleaning on top.
		s.Equal(int64(3333), booked.Quote.DailyRateCents)
		s.Equal(int64(13332), booked.Quote.SubtotalCents)
		s.Equal(int64(1600), booked.Quote.ServiceFeeCents)
		s.Equal(int64(5000), booked.Quote.CleaningFeeCents)
		s.Equal(int64(19932), booked.Quote.TotalCents)
		s.True(booked.CheckIn.Equal(checkIn))
		s.True(booked.CheckOut.Equal(checkOut))
		s.Equal(1, booked.GuestCount)
		s.Equal("pending", booked.Status)

		// An overlapping request from another guest loses.
		var overlapReq reqdto.CreateBookingRequest
		s.Require().NoError(copier.Copy(&overlapReq, &bookReq))
		overlapReq.CheckIn = checkIn.AddDate(0, 0, 2).Format(time.DateOnly)
		overlapReq.CheckOut = checkIn.AddDate(0, 0, 6).Format(time.DateOnly)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", overlapReq, rivalToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")

		// Back-to-back is fine: checkout day is not occupied.
		var adjacentReq reqdto.CreateBookingRequest
		s.Require().NoError(copier.Copy(&adjacentReq, &bookReq))
		adjacentReq.CheckIn = checkOut.Format(time.DateOnly)
		adjacentReq.CheckOut = checkOut.AddDate(0, 0, 3).Format(time.DateOnly)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", adjacentReq, rivalToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		confirmURL := fmt.Sprintf("/api/bookings/%s/confirm", booked.BookingID)

		// Only the host may confirm.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL, nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, confirmURL, nil, hostToken)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		getURL := fmt.Sprintf("/api/bookings/%s", booked.BookingID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, getURL, nil, guestToken)
		var view queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("confirmed", view.Status)

		cancelURL := fmt.Sprintf("/api/bookings/%s/cancel", booked.BookingID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, map[string]any{"reason": "found another place"}, guestToken)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		// Cancelling released the dates, so the rival can book them now.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", bookReq, rivalToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		// Cancelling twice is a conflict.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cancelURL, nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("availability reflects bookings and host blocks", func() {
		_, hostToken := s.registerAndLogin("host2@example.com", "host")
		_, guestToken := s.registerAndLogin("guest2@example.com", "guest")
		propertyID := s.createProperty(hostToken)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", reqdto.CreateBookingRequest{
			PropertyID: propertyID,
			CheckIn:    checkIn.Format(time.DateOnly),
			CheckOut:   checkOut.Format(time.DateOnly),
			GuestCount: 1,
		}, guestToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		blockDate := checkOut.AddDate(0, 0, 10)
		blockURL := fmt.Sprintf("/api/properties/%s/block", propertyID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, blockURL, reqdto.CalendarDatesRequest{
			Dates: []string{blockDate.Format(time.DateOnly)},
		}, hostToken)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		availabilityURL := fmt.Sprintf("/api/properties/%s/availability?from=%s&until=%s",
			propertyID, checkIn.Format(time.DateOnly), checkIn.AddDate(0, 1, 0).Format(time.DateOnly))
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL, nil, "")

		var availability queries.AvailabilityView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &availability)

		// 4 booked nights plus the blocked date, each tagged with its cause.
		s.Len(availability.UnavailableDates, 5)
		statuses := make(map[booking.DateStatus]int)
		for _, entry := range availability.UnavailableDates {
			statuses[entry.Status]++
		}
		s.Equal(4, statuses[booking.DateBooked])
		s.Equal(1, statuses[booking.DateBlocked])
		s.True(availability.UnavailableDates[0].Date.Equal(checkIn))

		// Blocking an already booked date is rejected.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, blockURL, reqdto.CalendarDatesRequest{
			Dates: []string{checkIn.Format(time.DateOnly)},
		}, hostToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")

		unblockURL := fmt.Sprintf("/api/properties/%s/unblock", propertyID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, unblockURL, reqdto.CalendarDatesRequest{
			Dates: []string{blockDate.Format(time.DateOnly)},
		}, hostToken)
		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &availability)
		s.Len(availability.UnavailableDates, 4)
		for _, entry := range availability.UnavailableDates {
			s.Equal(booking.DateBooked, entry.Status)
		}
	})
}
