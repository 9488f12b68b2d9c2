package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"band-scheduler-backend/internal/api/handlers"
	"band-scheduler-backend/internal/database/models"
	apperrors "band-scheduler-backend/internal/errors"
	"band-scheduler-backend/internal/mocks"
	"band-scheduler-backend/internal/service"
	"band-scheduler-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GigHandlerTestSuite defines the test suite for GigHandler
type GigHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGigServiceInterface
	handler     *handlers.GigHandler
	httpSuite   *testutils.HTTPTestSuite
	actor       *models.User
}

// SetupTest sets up the test suite
func (suite *GigHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGigServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewGigHandler(suite.mockService)

	suite.actor = &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         "dave@example.com",
		DisplayName:   "Dave",
		EmailVerified: true,
	}

	// Setup HTTP test suite with the authenticated account injected
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("actor", suite.actor)
		c.Next()
	})

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	gigs := v1.Group("/gigs")
	{
		gigs.GET("", suite.handler.ListGigs)
		gigs.POST("", suite.handler.CreateGig)
		gigs.GET("/:id", suite.handler.GetGig)
		gigs.PUT("/:id", suite.handler.UpdateGig)
		gigs.PUT("/:id/availability", suite.handler.SetAvailability)
	}
}

// TearDownTest cleans up after each test
func (suite *GigHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGig tests the CreateGig handler
func (suite *GigHandlerTestSuite) TestCreateGig() {
	suite.T().Run("Success", func(t *testing.T) {
		gigID := uuid.New()

		requestBody := map[string]interface{}{
			"name":       "Club Night",
			"date":       "2030-07-14",
			"startTime":  "19:30",
			"endTime":    "22:00",
			"isWholeDay": false,
		}

		expectedResponse := &service.GigResponse{
			ID:                 gigID,
			Name:               "Club Night",
			Date:               "2030-07-14",
			Status:             "pending",
			MemberAvailability: models.AvailabilityMap{},
			CreatedBy:          suite.actor.ID,
		}

		suite.mockService.EXPECT().
			CreateGig(suite.actor, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/gigs", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.GigResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.Name, response.Name)
		assert.Equal(t, expectedResponse.Status, response.Status)
	})

	suite.T().Run("ValidationError", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name": "",
			"date": "2030-07-14",
		}

		suite.mockService.EXPECT().
			CreateGig(suite.actor, gomock.Any()).
			Return(nil, apperrors.ErrGigNameRequired).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/gigs", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("UnverifiedActor", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name": "Club Night",
			"date": "2030-07-14",
		}

		suite.mockService.EXPECT().
			CreateGig(suite.actor, gomock.Any()).
			Return(nil, apperrors.ErrNotVerified).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/gigs", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestGetGig tests the GetGig handler
func (suite *GigHandlerTestSuite) TestGetGig() {
	suite.T().Run("Success", func(t *testing.T) {
		gigID := uuid.New()

		expectedResponse := &service.GigResponse{
			ID:     gigID,
			Name:   "Club Night",
			Date:   "2030-07-14",
			Status: "confirmed",
		}

		suite.mockService.EXPECT().
			GetGig(gigID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/gigs/%s", gigID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.GigResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, gigID, response.ID)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		gigID := uuid.New()

		suite.mockService.EXPECT().
			GetGig(gigID).
			Return(nil, apperrors.ErrGigNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/gigs/%s", gigID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/gigs/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListGigs tests the ListGigs handler
func (suite *GigHandlerTestSuite) TestListGigs() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedGigs := []service.GigResponse{
			{ID: uuid.New(), Name: "Club Night", Date: "2030-07-14"},
			{ID: uuid.New(), Name: "Street Fair", Date: "2030-08-01"},
		}

		suite.mockService.EXPECT().
			ListGigs("").
			Return(expectedGigs, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/gigs", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, float64(2), response["count"])
	})

	suite.T().Run("UpcomingScope", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListGigs("upcoming").
			Return([]service.GigResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/gigs?scope=upcoming", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidScope", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/gigs?scope=yesterday", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdateGig tests the UpdateGig handler
func (suite *GigHandlerTestSuite) TestUpdateGig() {
	suite.T().Run("Success", func(t *testing.T) {
		gigID := uuid.New()

		requestBody := map[string]interface{}{
			"name":   "Club Night",
			"date":   "2030-07-14",
			"status": "confirmed",
		}

		expectedResponse := &service.GigResponse{
			ID:     gigID,
			Name:   "Club Night",
			Date:   "2030-07-14",
			Status: "confirmed",
		}

		suite.mockService.EXPECT().
			UpdateGig(suite.actor, gigID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/gigs/%s", gigID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.GigResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "confirmed", response.Status)
	})

	suite.T().Run("NotOwner", func(t *testing.T) {
		gigID := uuid.New()

		requestBody := map[string]interface{}{
			"name": "Club Night",
			"date": "2030-07-14",
		}

		suite.mockService.EXPECT().
			UpdateGig(suite.actor, gigID, gomock.Any()).
			Return(nil, apperrors.ErrNotGigOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/gigs/%s", gigID), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestSetAvailability tests the SetAvailability handler
func (suite *GigHandlerTestSuite) TestSetAvailability() {
	suite.T().Run("Success", func(t *testing.T) {
		gigID := uuid.New()

		requestBody := map[string]interface{}{
			"status":   "available",
			"canDrive": true,
		}

		suite.mockService.EXPECT().
			SetAvailability(suite.actor, gigID, gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/gigs/%s/availability", gigID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		gigID := uuid.New()

		requestBody := map[string]interface{}{
			"status": "perhaps",
		}

		suite.mockService.EXPECT().
			SetAvailability(suite.actor, gigID, gomock.Any()).
			Return(apperrors.ErrInvalidAvailability).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/gigs/%s/availability", gigID), requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("GigNotFound", func(t *testing.T) {
		gigID := uuid.New()

		requestBody := map[string]interface{}{
			"status": "available",
		}

		suite.mockService.EXPECT().
			SetAvailability(suite.actor, gigID, gomock.Any()).
			Return(apperrors.ErrGigNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/gigs/%s/availability", gigID), requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGigHandlerTestSuite runs the test suite
func TestGigHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GigHandlerTestSuite))
}
