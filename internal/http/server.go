package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tripwise/ai-trip-planner/internal/domain"
	"github.com/tripwise/ai-trip-planner/internal/trip"
)

type Server struct {
	svc *trip.Service
}

func NewServer(svc *trip.Service) *Server {
	return &Server{svc: svc}
}

// Routes builds the gin engine with all API routes attached.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), corsMiddleware())

	router.GET("/health", s.handleHealth)

	router.GET("/destinations", s.handleDestinationsList)
	router.GET("/destinations/:key", s.handleDestinationGet)
	router.POST("/destinations/suggest", s.handleDestinationsSuggest)

	router.POST("/trip/plan", s.handleTripPlan)
	router.POST("/trip/optimize", s.handleTripOptimize)
	router.GET("/trip/templates", s.handleTripTemplates)

	router.GET("/hotels/:key", s.handleHotels)
	router.GET("/activities/:key", s.handleActivities)

	router.GET("/analytics/popular-destinations", s.handleAnalytics)
	router.GET("/user/preferences/templates", s.handlePreferenceTemplates)

	router.POST("/booking/initiate", s.handleBookingInitiate)
	router.GET("/booking/:id", s.handleBookingStatus)

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ai-trip-planner",
	})
}

func (s *Server) handleDestinationsList(c *gin.Context) {
	dests, err := s.svc.Destinations()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dests)
}

func (s *Server) handleDestinationGet(c *gin.Context) {
	dest, err := s.svc.Destination(c.Param("key"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dest)
}

type suggestRequest struct {
	Interests  []string          `json:"interests" binding:"required"`
	BudgetTier domain.BudgetTier `json:"budget_type"`
	MinBudget  float64           `json:"min_daily_budget"`
	MaxBudget  float64           `json:"max_daily_budget"`
}

func (s *Server) handleDestinationsSuggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	suggestions, err := s.svc.SuggestDestinations(req.Interests, req.BudgetTier, req.MinBudget, req.MaxBudget)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (s *Server) handleTripPlan(c *gin.Context) {
	var req domain.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	rec, err := s.svc.Plan(req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleTripOptimize(c *gin.Context) {
	var req domain.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	rec, err := s.svc.Optimize(req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleTripTemplates(c *gin.Context) {
	templates, err := s.svc.TripTemplates()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (s *Server) handleHotels(c *gin.Context) {
	hotels, err := s.svc.Hotels(c.Param("key"), domain.BudgetTier(c.Query("budget_type")))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (s *Server) handleActivities(c *gin.Context) {
	activities, err := s.svc.Activities(
		c.Param("key"),
		domain.BudgetTier(c.Query("budget_type")),
		c.QueryArray("interests"),
	)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (s *Server) handleAnalytics(c *gin.Context) {
	analytics, err := s.svc.PopularDestinations()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (s *Server) handlePreferenceTemplates(c *gin.Context) {
	templates, err := s.svc.PreferenceTemplates()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

type bookingRequest struct {
	RecommendationID string  `json:"recommendation_id"`
	TotalCost        float64 `json:"total_cost"`
}

// Booking is an explicit stub: no payment or inventory integration
// exists. The endpoint documents the intended flow and hands back a
// reference ID.
func (s *Server) handleBookingInitiate(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":       "prototype_mode",
		"message":      "booking system is not integrated yet",
		"booking_id":   "PROTO-" + uuid.NewString(),
		"total_amount": req.TotalCost,
		"currency":     "INR",
	})
}

func (s *Server) handleBookingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"booking_id":     c.Param("id"),
		"status":         "prototype_mode",
		"current_status": "pending integration",
	})
}

// fail maps domain errors to status codes: not-found and validation
// failures are client errors, everything else is a server fault.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDestinationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidDateRange), errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
