package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solemate-service/internal/clients"
	"solemate-service/internal/models"
	"solemate-service/internal/repository"
)

const maxStyleMatches = 3

type StyleMatcherHandler struct {
	stylist *clients.StylistClient
	repo    *repository.CatalogRepository
}

func NewStyleMatcherHandler(stylist *clients.StylistClient, repo *repository.CatalogRepository) *StyleMatcherHandler {
	return &StyleMatcherHandler{stylist: stylist, repo: repo}
}

// Match forwards the outfit photo to the recommendation service and maps
// the returned description back onto the catalog via the text filter.
// A failed round trip surfaces as a dismissible error; no retry.
func (h *StyleMatcherHandler) Match(c *gin.Context) {
	var req models.StyleMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	rec, err := h.stylist.Recommend(c.Request.Context(), req.PhotoDataURI)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EXTERNAL_SERVICE_ERROR",
				Message: "Style recommendation is unavailable right now",
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.StyleMatchResponse{
		ShoeDescription: rec.ShoeDescription,
		MatchReason:     rec.MatchReason,
		Matches:         h.findMatches(rec.ShoeDescription),
	})
}

// findMatches runs each word of the recommendation through the catalog text
// filter and returns the first few distinct hits
func (h *StyleMatcherHandler) findMatches(description string) []models.Product {
	catalog := h.repo.GetAll()
	seen := map[string]struct{}{}
	matches := []models.Product{}

	for _, term := range strings.Fields(description) {
		if len(term) < 4 {
			continue
		}
		page := repository.ApplyFilter(catalog, models.FilterQuery{Term: term}, maxStyleMatches)
		for _, p := range page.Items {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			matches = append(matches, p)
			if len(matches) >= maxStyleMatches {
				return matches
			}
		}
	}
	return matches
}
