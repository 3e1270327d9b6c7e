package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/twliao/finwatch/internal/domain/dto"
	"github.com/twliao/finwatch/internal/domain/models"
	"github.com/twliao/finwatch/internal/middleware"
	"github.com/twliao/finwatch/internal/service"
)

// Version reported by the root endpoint and the swagger document.
const Version = "1.0.0"

// Handler provides HTTP handlers for the market-data endpoints.
//
// Responsibilities:
//   - Read the period query parameter (pass-through, defaulted)
//   - Invoke the service pipelines
//   - Translate results into response envelopes with metadata
//   - Map abort-level failures to the uniform 500 error envelope
type Handler struct {
	svc service.MarketService
	now func() time.Time // injected for deterministic metadata in tests
}

// NewHandler constructs a Handler over the given service.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

// queryPeriod reads the period parameter, falling back to the default.
// Unknown tokens are forwarded to the provider untouched.
func queryPeriod(c *gin.Context) models.Period {
	if p := c.Query("period"); p != "" {
		return models.Period(p)
	}
	return models.DefaultPeriod
}

// timestamp formats envelope timestamps consistently across endpoints.
func (h *Handler) timestamp() string {
	return h.now().Format(time.RFC3339)
}

// GetRoot handles GET / requests.
//
// GetRoot godoc
// @Summary      Service metadata
// @Description  Returns the service name, version, and available endpoints
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.RootResponse
// @Router       / [get]
func (h *Handler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{
		Message: "finwatch API",
		Version: Version,
		Status:  "running",
		Endpoints: map[string]string{
			"root":        "/",
			"health":      "/health",
			"bond_spread": "/api/bond-spread",
			"fx":          "/api/fx",
			"commodities": "/api/commodities",
			"all":         "/api/all",
		},
	})
}

// GetBondSpread handles GET /api/bond-spread requests.
//
// Query Parameters:
//   - period (string, optional): provider lookback token, default "5d".
//
// GetBondSpread godoc
// @Summary      US/JP 10-year yield spread
// @Description  Returns the dated spread between the US 10Y proxy and the configured JP 10Y placeholder
// @Tags         market
// @Produce      json
// @Param        period  query     string  false  "Lookback period"  example(5d)
// @Success      200     {object}  dto.BondSpreadResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/bond-spread [get]
func (h *Handler) GetBondSpread(c *gin.Context) {
	period := queryPeriod(c)

	rows, err := h.svc.BondSpread(c.Request.Context(), period)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, dto.BondSpreadResponse{
		Success: true,
		Data:    rows,
		Metadata: dto.SpreadMetadata{
			Period:     string(period),
			DataPoints: len(rows),
			LastUpdate: h.timestamp(),
		},
	})
}

// GetFX handles GET /api/fx requests.
//
// GetFX godoc
// @Summary      USD/JPY exchange rate series
// @Description  Returns dated close/high/low rows for the USD/JPY pair
// @Tags         market
// @Produce      json
// @Param        period  query     string  false  "Lookback period"  example(5d)
// @Success      200     {object}  dto.FxResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/fx [get]
func (h *Handler) GetFX(c *gin.Context) {
	period := queryPeriod(c)

	rows, err := h.svc.FX(c.Request.Context(), period)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, dto.FxResponse{
		Success: true,
		Data:    rows,
		Metadata: dto.FxMetadata{
			Pair:       "USD/JPY",
			Period:     string(period),
			LastUpdate: h.timestamp(),
		},
	})
}

// GetCommodities handles GET /api/commodities requests.
//
// A failed fetch for one instrument never fails the request: the
// corresponding key is an empty list and success stays true.
//
// GetCommodities godoc
// @Summary      Gold and oil futures series
// @Description  Returns dated price/change rows for gold and crude oil
// @Tags         market
// @Produce      json
// @Param        period  query     string  false  "Lookback period"  example(5d)
// @Success      200     {object}  dto.CommoditiesResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/commodities [get]
func (h *Handler) GetCommodities(c *gin.Context) {
	period := queryPeriod(c)

	set, err := h.svc.Commodities(c.Request.Context(), period)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, dto.CommoditiesResponse{
		Success: true,
		Data:    set,
		Metadata: dto.Metadata{
			Period:     string(period),
			LastUpdate: h.timestamp(),
		},
	})
}

// GetAll handles GET /api/all requests.
//
// The three sub-pipelines run concurrently; any abort-level failure in
// bond-spread or fx fails the whole request.
//
// GetAll godoc
// @Summary      All dashboard series
// @Description  Returns bond spread, FX, and commodity series in one call
// @Tags         market
// @Produce      json
// @Param        period  query     string  false  "Lookback period"  example(5d)
// @Success      200     {object}  dto.AllResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/all [get]
func (h *Handler) GetAll(c *gin.Context) {
	period := queryPeriod(c)

	data, err := h.svc.All(c.Request.Context(), period)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, dto.AllResponse{
		Success: true,
		Data:    data,
		Metadata: dto.Metadata{
			Period:     string(period),
			LastUpdate: h.timestamp(),
		},
	})
}
