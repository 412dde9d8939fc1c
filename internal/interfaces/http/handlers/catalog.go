// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/infrastructure/cache"
)

// CatalogHandler handles catalog browsing and search endpoints
type CatalogHandler struct {
	snapshots *cache.SnapshotCache
	config    *config.Config
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(snapshots *cache.SnapshotCache, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		snapshots: snapshots,
		config:    cfg,
	}
}

// GetCatalog handles GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalogResp, err := h.snapshots.Catalog(c.Request.Context())
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": catalogResp,
	})
}

// GetAvailability handles GET /catalog/availability
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	availability, err := h.snapshots.Availability(c.Request.Context())
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": availability,
	})
}

// Search handles GET /catalog/search
//
// Query parameters: q (free text), sort (popular|new|old|expensive|cheap),
// available (bool), preorder_id, price_min, price_max, and repeatable
// filter=group:value facet selections.
func (h *CatalogHandler) Search(c *gin.Context) {
	catalogResp, err := h.snapshots.Catalog(c.Request.Context())
	if err != nil {
		respondShopError(c, err)
		return
	}

	availability, err := h.snapshots.Availability(c.Request.Context())
	if err != nil {
		respondShopError(c, err)
		return
	}

	sorting := catalog.Sorting(c.DefaultQuery("sort", string(catalog.SortPopular)))
	if !sorting.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown sort key",
		})
		return
	}

	selection, err := parseFilterSelection(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid filter parameters",
			"details": err.Error(),
		})
		return
	}

	query := c.Query("q")
	searched := catalog.SearchItems(catalogResp.Items, query)

	available := catalog.NewIDSet(availability.Items)
	filters := catalog.NewFilters(searched, available)
	filters.Apply(*selection)

	items := catalog.ItemsToRender(searched, filters.Predicate(), sorting)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":        items,
			"total":        len(items),
			"query":        query,
			"sort":         sorting,
			"filterGroups": filters.FilterGroupList,
			"preorders":    filters.PreorderList,
			"priceBounds":  filters.PriceBounds,
		},
	})
}

// parseFilterSelection reads the filter selection from query parameters
func parseFilterSelection(c *gin.Context) (*catalog.Selection, error) {
	selection := &catalog.Selection{
		Checked:       make(map[string][]string),
		AvailableOnly: c.Query("available") == "true",
	}

	for _, pair := range c.QueryArray("filter") {
		groupID, valueID, ok := strings.Cut(pair, ":")
		if !ok || groupID == "" || valueID == "" {
			return nil, strconvError("filter", pair)
		}
		selection.Checked[groupID] = append(selection.Checked[groupID], valueID)
	}

	if preorderID := c.Query("preorder_id"); preorderID != "" {
		selection.PreorderID = &preorderID
	}

	minParam, maxParam := c.Query("price_min"), c.Query("price_max")
	if minParam != "" || maxParam != "" {
		var priceRange catalog.PriceRange
		var err error
		priceRange.Max = int64(^uint64(0) >> 1)
		if minParam != "" {
			if priceRange.Min, err = strconv.ParseInt(minParam, 10, 64); err != nil {
				return nil, strconvError("price_min", minParam)
			}
		}
		if maxParam != "" {
			if priceRange.Max, err = strconv.ParseInt(maxParam, 10, 64); err != nil {
				return nil, strconvError("price_max", maxParam)
			}
		}
		selection.PriceRange = &priceRange
	}

	return selection, nil
}

type paramError struct {
	param string
	value string
}

func (e *paramError) Error() string {
	return "invalid value " + strconv.Quote(e.value) + " for " + e.param
}

func strconvError(param, value string) error {
	return &paramError{param: param, value: value}
}
