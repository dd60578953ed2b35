//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"unistay/internal/domain/user"
	"unistay/internal/handler/api"
	resdto "unistay/internal/handler/dto/response"
	"unistay/internal/usecase/commands"
	"unistay/internal/usecase/queries"
	"unistay/tests/common/builder"
	"unistay/tests/common/httptest"
	"unistay/tests/common/testutil"
	commandsmock "unistay/tests/mock/commands"
	queriesmock "unistay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleGuest)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMyBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.GET("/host/bookings", authMiddleware, s.handler.ListHostBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	domainBooking, err := b.BuildDomain()
	s.Require().NoError(err)
	expectedResult := &commands.CreateBookingResult{
		BookingID:  b.ID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     domainBooking.Nights(),
		GuestCount: b.GuestCount,
		Status:     domainBooking.Status(),
		Quote:      domainBooking.Quote(),
	}

	s.Run("success: returns 201 Created with the booking summary", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.BookingID)
		s.True(body.CheckIn.Equal(b.CheckIn))
		s.True(body.CheckOut.Equal(b.CheckOut))
		s.Equal(4, body.Nights)
		s.Equal(b.GuestCount, body.GuestCount)
		s.Equal("pending", body.Status)
		s.Equal(int64(3333), body.Quote.DailyRateCents)
		s.Equal(int64(13332), body.Quote.SubtotalCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing property_id", mutate: testutil.Field("property_id", nil)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "missing check_out", mutate: testutil.Field("check_out", nil)},
			{name: "zero guest_count", mutate: testutil.Field("guest_count", 0)},
			{name: "malformed check_in date", mutate: testutil.Field("check_in", "01-09-2026")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "property not found",
				commandsError:  commands.ErrPropertyNotFoundWrite,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Property not found",
			},
			{
				name:           "dates unavailable",
				commandsError:  commands.ErrDatesUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking request",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestConfirmBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/confirm"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: commands.ErrBookingNotFoundWrite, expectedStatus: http.StatusNotFound},
			{name: "forbidden", commandsError: commands.ErrBookingForbidden, expectedStatus: http.StatusForbidden},
			{name: "state conflict", commandsError: commands.ErrBookingConflict, expectedStatus: http.StatusConflict},
			{name: "domain validation", commandsError: commands.ErrDomainValidation, expectedStatus: http.StatusUnprocessableEntity},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID, s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: passes the reason through", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, "plans changed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "plans changed"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, "").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.userID, "").
			Return(commands.ErrBookingConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()
	returnView := b.BuildView()
	url := "/bookings/" + b.ID.String()

	s.Run("success: returns the booking view", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), b.ID, s.userID, user.RoleGuest.String()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID, body.ID)
		s.Equal(returnView.TotalCents, body.TotalCents)
	})

	s.Run("error: 404 when booking is unknown", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), b.ID, s.userID, user.RoleGuest.String()).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 for non-participants", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), b.ID, s.userID, user.RoleGuest.String()).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	list := &queries.BookingList{NextCursor: "v1:cursor"}

	s.Run("success: guest listing forwards limit and cursor", func() {
		s.mockQueries.EXPECT().ListGuestBookings(gomock.Any(), s.userID, 10, "abc").
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=10&after=abc", nil, "bearer-token")

		var body queries.BookingList
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("v1:cursor", body.NextCursor)
	})

	s.Run("success: host listing", func() {
		s.mockQueries.EXPECT().ListHostBookings(gomock.Any(), s.userID, 0, "").
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/host/bookings", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: role=host selects the host side", func() {
		s.mockQueries.EXPECT().ListHostBookings(gomock.Any(), s.userID, 0, "").
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?role=host", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: role=both merges guest and host sides", func() {
		s.mockQueries.EXPECT().ListParticipantBookings(gomock.Any(), s.userID, 0, "").
			Return(list, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?role=both", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?role=admin", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid role filter")
	})

	s.Run("error: 400 on a bad cursor", func() {
		s.mockQueries.EXPECT().ListGuestBookings(gomock.Any(), s.userID, 0, "garbage").
			Return(nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}
