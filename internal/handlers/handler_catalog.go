package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/buylog/internal/core/domain"
	portssvc "github.com/SscSPs/buylog/internal/core/ports/services"
	"github.com/SscSPs/buylog/internal/dto"
	"github.com/SscSPs/buylog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for brands, products and vendors.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
	dedupService   portssvc.DedupSvc
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade, ds portssvc.DedupSvc) *catalogHandler {
	return &catalogHandler{catalogService: cs, dedupService: ds}
}

// registerCatalogRoutes registers the brand, product and vendor routes.
// Product pricing routes are added by registerProductPricingRoutes on the same group.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade, dedupService portssvc.DedupSvc) *gin.RouterGroup {
	h := newCatalogHandler(catalogService, dedupService)

	brands := rg.Group("/brands")
	{
		brands.POST("", h.createBrand)
		brands.GET("", h.listBrands)
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/similar", h.similarProducts)
		products.GET("/:productID", h.getProduct)
		products.PATCH("/:productID/category", h.setProductCategory)
	}

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.GET("/similar", h.similarVendors)
		vendors.GET("/:vendorID", h.getVendor)
	}
	return products
}

// createBrand godoc
// @Summary Create a brand
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   brand body dto.CreateBrandRequest true "Brand details"
// @Success 201 {object} domain.Brand
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Brand already exists"
// @Router /brands [post]
func (h *catalogHandler) createBrand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBrandRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	brand, err := h.catalogService.CreateBrand(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create brand")
		return
	}
	logger.Info("Brand created", slog.String("brand_id", brand.BrandID))
	c.JSON(http.StatusCreated, brand)
}

// listBrands godoc
// @Summary List brands
// @Tags catalog
// @Produce  json
// @Success 200 {array} domain.Brand
// @Router /brands [get]
func (h *catalogHandler) listBrands(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	brands, err := h.catalogService.ListBrands(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list brands")
		return
	}
	c.JSON(http.StatusOK, nonNil(brands))
}

// createProduct godoc
// @Summary Create a product
// @Description The brand is looked up by name and created when missing
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Product already exists"
// @Router /products [post]
func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create product")
		return
	}
	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, product)
}

// listProducts godoc
// @Summary List products
// @Tags catalog
// @Produce  json
// @Param   name query string false "Case-insensitive name filter"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	products, err := h.catalogService.ListProducts(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, nonNil(products))
}

// getProduct godoc
// @Summary Get a product
// @Tags catalog
// @Produce  json
// @Param   productID path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{productID} [get]
func (h *catalogHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("productID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// setProductCategory godoc
// @Summary Set or clear a product's category
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   productID path string true "Product ID"
// @Param   category body dto.UpdateProductCategoryRequest true "New category, null to clear"
// @Success 200 {object} domain.Product
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{productID}/category [patch]
func (h *catalogHandler) setProductCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProductCategoryRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	product, err := h.catalogService.SetProductCategory(c.Request.Context(), c.Param("productID"), req.Category)
	if err != nil {
		respondError(c, logger, err, "Failed to set product category")
		return
	}
	c.JSON(http.StatusOK, product)
}

// createVendor godoc
// @Summary Create a vendor
// @Description Currency and discount are copied onto every quote the vendor issues
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} domain.Vendor
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Vendor already exists"
// @Router /vendors [post]
func (h *catalogHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	vendor, err := h.catalogService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create vendor")
		return
	}
	logger.Info("Vendor created", slog.String("vendor_id", vendor.VendorID))
	c.JSON(http.StatusCreated, vendor)
}

// listVendors godoc
// @Summary List vendors
// @Tags catalog
// @Produce  json
// @Success 200 {array} domain.Vendor
// @Router /vendors [get]
func (h *catalogHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendors, err := h.catalogService.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, nonNil(vendors))
}

// getVendor godoc
// @Summary Get a vendor
// @Tags catalog
// @Produce  json
// @Param   vendorID path string true "Vendor ID"
// @Success 200 {object} domain.Vendor
// @Failure 404 {object} map[string]string "Vendor not found"
// @Router /vendors/{vendorID} [get]
func (h *catalogHandler) getVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vendor, err := h.catalogService.GetVendor(c.Request.Context(), c.Param("vendorID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get vendor")
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// similarProducts godoc
// @Summary Find products whose names look like duplicates
// @Tags catalog
// @Produce  json
// @Param   threshold query number false "Similarity threshold in (0, 1], default 0.8"
// @Success 200 {array} domain.SimilarGroup
// @Router /products/similar [get]
func (h *catalogHandler) similarProducts(c *gin.Context) {
	h.similar(c, h.dedupService.FindSimilarProducts)
}

// similarVendors godoc
// @Summary Find vendors whose names look like duplicates
// @Tags catalog
// @Produce  json
// @Param   threshold query number false "Similarity threshold in (0, 1], default 0.8"
// @Success 200 {array} domain.SimilarGroup
// @Router /vendors/similar [get]
func (h *catalogHandler) similarVendors(c *gin.Context) {
	h.similar(c, h.dedupService.FindSimilarVendors)
}

func (h *catalogHandler) similar(c *gin.Context, find func(ctx context.Context, threshold float64) ([]domain.SimilarGroup, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.SimilarityQuery
	if !bindQuery(c, logger, &query) {
		return
	}

	groups, err := find(c.Request.Context(), query.Threshold)
	if err != nil {
		respondError(c, logger, err, "Failed to find similar names")
		return
	}
	c.JSON(http.StatusOK, nonNil(groups))
}

// nonNil keeps empty listings serialised as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
