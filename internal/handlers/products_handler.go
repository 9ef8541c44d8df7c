package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solemate-service/internal/events"
	"solemate-service/internal/models"
	"solemate-service/internal/repository"
)

type ProductsHandler struct {
	repo            *repository.CatalogRepository
	eventsPublisher *events.Publisher
	defaultPageSize int
	maxPageSize     int
}

func NewProductsHandler(repo *repository.CatalogRepository, eventsPublisher *events.Publisher, defaultPageSize, maxPageSize int) *ProductsHandler {
	return &ProductsHandler{
		repo:            repo,
		eventsPublisher: eventsPublisher,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListProducts returns one page of the filtered, sorted catalog.
// Query: q, category, brand, size, color (all repeatable), maxPrice, sort,
// page, pageSize. Requests without an explicit page land on page 1.
func (h *ProductsHandler) ListProducts(c *gin.Context) {
	query := models.FilterQuery{
		Term:       c.Query("q"),
		Categories: c.QueryArray("category"),
		Brands:     c.QueryArray("brand"),
		Sizes:      c.QueryArray("size"),
		Colors:     c.QueryArray("color"),
		SortBy:     models.SortKey(c.DefaultQuery("sort", string(models.SortNameAsc))),
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil && maxPrice > 0 {
		query.MaxPrice = maxPrice
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		query.Page = page
	}

	pageSize := h.defaultPageSize
	if size, err := strconv.Atoi(c.Query("pageSize")); err == nil && size > 0 {
		pageSize = size
	}
	if pageSize > h.maxPageSize {
		pageSize = h.maxPageSize
	}

	result := repository.ApplyFilter(h.repo.GetAll(), query, pageSize)
	c.JSON(http.StatusOK, result)
}

// GetProduct returns a single product by id
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	product, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductBySlug returns a single product by its URL slug
func (h *ProductsHandler) GetProductBySlug(c *gin.Context) {
	product, err := h.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetFilterOptions returns the distinct facet values across the catalog
func (h *ProductsHandler) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.GetFilterOptions())
}

// CreateReview appends an immutable review to a product
func (h *ProductsHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	review := models.ProductReview{
		ID:      uuid.New().String(),
		Author:  req.Author,
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    time.Now().UTC().Format("2006-01-02"),
	}

	product, err := h.repo.AddReview(c.Param("id"), review)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// ListAllProducts returns the full catalog in storage order (admin view)
func (h *ProductsHandler) ListAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.GetAll())
}

// CreateProduct creates a new product. Name, price, category and brand are
// required; absent optional fields default to empty/zero.
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Missing required product fields")
		return
	}

	product, err := h.repo.Create(req)
	if err != nil {
		if errors.Is(err, repository.ErrValidation) {
			validationError(c, err.Error())
			return
		}
		internalError(c, err)
		return
	}

	h.eventsPublisher.PublishProductCreated(product, c.GetString("admin_user"))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct merges the partial payload onto the record. A name change
// regenerates the slug.
func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err.Error())
		return
	}

	id := c.Param("id")
	old, err := h.repo.GetByID(id)
	if err != nil {
		notFound(c)
		return
	}

	product, err := h.repo.Update(id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, err)
		return
	}

	h.eventsPublisher.PublishProductUpdated(product, old, c.GetString("admin_user"))
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes the record
func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	product, err := h.repo.GetByID(id)
	if err != nil {
		notFound(c)
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			notFound(c)
			return
		}
		internalError(c, err)
		return
	}

	h.eventsPublisher.PublishProductDeleted(product, c.GetString("admin_user"))
	msg := "Product deleted successfully"
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true, Message: &msg})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "NOT_FOUND",
			Message: "Product not found",
		},
	})
}

func validationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "VALIDATION_ERROR",
			Message: message,
		},
	})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error: models.Error{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		},
	})
}
