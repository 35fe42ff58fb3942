package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

// storefrontHandler serves the public, unauthenticated storefront: the
// product catalog and service order tracking.
type storefrontHandler struct {
	productSvc portssvc.ProductSvcFacade
	orderSvc   portssvc.ServiceOrderSvcFacade
}

func registerStorefrontRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := &storefrontHandler{productSvc: services.Product, orderSvc: services.ServiceOrder}

	store := r.Group("/store")
	{
		store.GET("/catalog", h.listCatalog)
		store.GET("/track/:orderNo", h.trackOrder)
	}
}

// listCatalog godoc
// @Summary Browse the product catalog
// @Description Lists active products for the storefront. Purchase prices and exact stock counts are not exposed.
// @Tags storefront
// @Produce json
// @Param category query string false "Filter by category"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} dto.CatalogItemResponse
// @Router /store/catalog [get]
func (h *storefrontHandler) listCatalog(c *gin.Context) {
	products, err := h.productSvc.ListCatalog(c.Request.Context(), c.Query("category"), queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCatalogItemResponses(products))
}

// trackOrder godoc
// @Summary Track a service order
// @Description Looks up a repair by its tracking number and returns its status. Fees and internal notes are not exposed.
// @Tags storefront
// @Produce json
// @Param orderNo path string true "Tracking number"
// @Success 200 {object} dto.ServiceTrackingResponse
// @Failure 404 {object} map[string]string "Order not found"
// @Router /store/track/{orderNo} [get]
func (h *storefrontHandler) trackOrder(c *gin.Context) {
	order, err := h.orderSvc.TrackOrder(c.Request.Context(), c.Param("orderNo"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToServiceTrackingResponse(order))
}
