package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"zone-service/internal/http/middleware"
	"zone-service/internal/model"
	"zone-service/internal/repository"
	"zone-service/internal/service"
)

type Handler struct {
	siteService   *service.SiteService
	deviceService *service.DeviceService
	zoneService   *service.ZoneService
	ruleService   *service.RuleService
	log           zerolog.Logger
}

func NewHandler(
	siteService *service.SiteService,
	deviceService *service.DeviceService,
	zoneService *service.ZoneService,
	ruleService *service.RuleService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		siteService:   siteService,
		deviceService: deviceService,
		zoneService:   zoneService,
		ruleService:   ruleService,
		log:           log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/")
	protected.Use(authMiddleware)

	sites := protected.Group("/sites")
	{
		sites.GET("", h.listSites)
		sites.POST("", h.createSite)
		sites.GET("/:id", h.getSite)
		sites.PUT("/:id", h.updateSite)
		sites.DELETE("/:id", h.deleteSite)
		// Spatial operations scoped to a whole site
		sites.GET("/:id/zones", h.listZones)
		sites.POST("/:id/zones/detect", h.detectZones)
		sites.POST("/:id/zones/sync", h.syncZones)
	}

	devices := protected.Group("/devices")
	{
		devices.GET("", h.listDevices)
		devices.POST("", h.createDevice)
		devices.POST("/apply", h.applyDeviceUpdates)
		devices.GET("/:id", h.getDevice)
		devices.PUT("/:id", h.updateDevice)
		devices.DELETE("/:id", h.deleteDevice)
		devices.PATCH("/:id/position", h.moveDevice)
		devices.GET("/:id/zone", h.locateDeviceZone)
	}

	zones := protected.Group("/zones")
	{
		zones.POST("", h.createZone)
		zones.GET("/:id", h.getZone)
		zones.PUT("/:id", h.updateZone)
		zones.DELETE("/:id", h.deleteZone)
		zones.POST("/:id/arrange", h.arrangeZone)
		zones.POST("/:id/align", h.alignZone)
	}

	rules := protected.Group("/rules")
	{
		rules.GET("", h.listRules)
		rules.POST("", h.createRule)
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
	}
}

// Site handlers

func (h *Handler) createSite(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Address  string `json:"address"`
		Timezone string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	site, err := h.siteService.Create(c.Request.Context(), principal, service.CreateSiteInput{
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(site))
}

func (h *Handler) getSite(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid site id"))
		return
	}

	site, err := h.siteService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(site))
}

func (h *Handler) listSites(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	sites, err := h.siteService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(sites))
}

func (h *Handler) updateSite(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid site id"))
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Address  *string `json:"address"`
		Timezone *string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	site, err := h.siteService.Update(c.Request.Context(), principal, id, service.UpdateSiteInput{
		Name:     req.Name,
		Address:  req.Address,
		Timezone: req.Timezone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(site))
}

func (h *Handler) deleteSite(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid site id"))
		return
	}

	if err := h.siteService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Device handlers

func (h *Handler) createDevice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		SiteID      string   `json:"site_id" binding:"required"`
		Name        string   `json:"name"`
		Type        string   `json:"type" binding:"required"`
		X           *float64 `json:"x"`
		Y           *float64 `json:"y"`
		Orientation *float64 `json:"orientation"`
		Location    string   `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	device, err := h.deviceService.Create(c.Request.Context(), principal, service.CreateDeviceInput{
		SiteID:      req.SiteID,
		Name:        req.Name,
		Type:        strings.ToUpper(req.Type),
		X:           req.X,
		Y:           req.Y,
		Orientation: req.Orientation,
		Location:    req.Location,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(device))
}

func (h *Handler) getDevice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid device id"))
		return
	}

	device, err := h.deviceService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(device))
}

func (h *Handler) listDevices(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.DeviceListFilter{}

	if siteID := strings.TrimSpace(c.Query("site_id")); siteID != "" {
		filter.SiteID = &siteID
	}
	if deviceType := strings.TrimSpace(c.Query("type")); deviceType != "" {
		t := model.DeviceType(strings.ToUpper(deviceType))
		filter.Type = &t
	}
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		filter.Location = &location
	}
	if positioned := strings.TrimSpace(c.Query("positioned")); positioned != "" {
		v := positioned == "true"
		filter.Positioned = &v
	}

	devices, err := h.deviceService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(devices))
}

func (h *Handler) updateDevice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid device id"))
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Type        *string  `json:"type"`
		Orientation *float64 `json:"orientation"`
		Location    *string  `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	device, err := h.deviceService.Update(c.Request.Context(), principal, id, service.UpdateDeviceInput{
		Name:        req.Name,
		Type:        req.Type,
		Orientation: req.Orientation,
		Location:    req.Location,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(device))
}

func (h *Handler) deleteDevice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid device id"))
		return
	}

	if err := h.deviceService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) moveDevice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid device id"))
		return
	}

	var req struct {
		X *float64 `json:"x" binding:"required"`
		Y *float64 `json:"y" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	device, err := h.deviceService.Move(c.Request.Context(), principal, id, *req.X, *req.Y)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(device))
}

func (h *Handler) applyDeviceUpdates(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Updates []struct {
			DeviceID    string   `json:"device_id" binding:"required"`
			X           *float64 `json:"x"`
			Y           *float64 `json:"y"`
			Orientation *float64 `json:"orientation"`
			ZoneLabel   *string  `json:"zone_label"`
		} `json:"updates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updates := make([]model.DeviceUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		deviceID, err := uuid.Parse(u.DeviceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid device id"))
			return
		}
		updates = append(updates, model.DeviceUpdate{
			DeviceID:    deviceID,
			X:           u.X,
			Y:           u.Y,
			Orientation: u.Orientation,
			ZoneLabel:   u.ZoneLabel,
		})
	}

	if err := h.deviceService.Apply(c.Request.Context(), principal, updates); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"applied": len(updates)}))
}

func (h *Handler) locateDeviceZone(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid device id"))
		return
	}

	zone, err := h.zoneService.Locate(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// zone is null when the device is unpositioned or outside every zone.
	c.JSON(http.StatusOK, successResponse(zone))
}

// Zone handlers

func (h *Handler) createZone(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		SiteID      string        `json:"site_id" binding:"required"`
		Name        string        `json:"name" binding:"required"`
		Color       string        `json:"color"`
		Description string        `json:"description"`
		Polygon     model.Polygon `json:"polygon" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	zone, err := h.zoneService.Create(c.Request.Context(), principal, service.CreateZoneInput{
		SiteID:      req.SiteID,
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
		Polygon:     req.Polygon,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(zone))
}

func (h *Handler) getZone(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid zone id"))
		return
	}

	zone, err := h.zoneService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(zone))
}

func (h *Handler) listZones(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	siteID := strings.TrimSpace(c.Param("id"))
	if siteID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid site id"))
		return
	}

	zones, err := h.zoneService.ListBySite(c.Request.Context(), principal, siteID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(zones))
}

func (h *Handler) updateZone(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid zone id"))
		return
	}

	var req struct {
		Name        *string       `json:"name"`
		Color       *string       `json:"color"`
		Description *string       `json:"description"`
		Polygon     model.Polygon `json:"polygon"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	zone, err := h.zoneService.Update(c.Request.Context(), principal, id, service.UpdateZoneInput{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
		Polygon:     req.Polygon,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(zone))
}

func (h *Handler) deleteZone(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid zone id"))
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) detectZones(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	siteID := strings.TrimSpace(c.Param("id"))
	if siteID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid site id"))
		return
	}

	zones, err := h.zoneService.Detect(c.Request.Context(), principal, siteID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(zones))
}

func (h *Handler) syncZones(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	siteID := strings.TrimSpace(c.Param("id"))
	if siteID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid site id"))
		return
	}

	results, err := h.zoneService.Sync(c.Request.Context(), principal, siteID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(results))
}

func (h *Handler) arrangeZone(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid zone id"))
		return
	}

	var req struct {
		Padding *float64 `json:"padding"`
	}
	// Body is optional; the default padding applies when absent.
	_ = c.ShouldBindJSON(&req)

	updates, err := h.zoneService.Arrange(c.Request.Context(), principal, id, req.Padding)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updates))
}

func (h *Handler) alignZone(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid zone id"))
		return
	}

	updates, err := h.zoneService.Align(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(updates))
}

// Rule handlers

func (h *Handler) createRule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		ZoneID    string `json:"zone_id" binding:"required"`
		Name      string `json:"name" binding:"required"`
		Action    string `json:"action" binding:"required"`
		Level     *int   `json:"level"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	rule, err := h.ruleService.Create(c.Request.Context(), principal, service.CreateRuleInput{
		ZoneID:    req.ZoneID,
		Name:      req.Name,
		Action:    strings.ToUpper(req.Action),
		Level:     req.Level,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(rule))
}

func (h *Handler) getRule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid rule id"))
		return
	}

	rule, err := h.ruleService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(rule))
}

func (h *Handler) listRules(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := repository.RuleListFilter{}

	if siteID := strings.TrimSpace(c.Query("site_id")); siteID != "" {
		filter.SiteID = &siteID
	}
	if zoneID := strings.TrimSpace(c.Query("zone_id")); zoneID != "" {
		filter.ZoneID = &zoneID
	}
	if enabled := strings.TrimSpace(c.Query("enabled")); enabled != "" {
		v := enabled == "true"
		filter.Enabled = &v
	}

	rules, err := h.ruleService.List(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(rules))
}

func (h *Handler) updateRule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid rule id"))
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Level     *int    `json:"level"`
		StartTime *string `json:"start_time"`
		EndTime   *string `json:"end_time"`
		Enabled   *bool   `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	rule, err := h.ruleService.Update(c.Request.Context(), principal, id, service.UpdateRuleInput{
		Name:      req.Name,
		Level:     req.Level,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Enabled:   req.Enabled,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(rule))
}

func (h *Handler) deleteRule(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid rule id"))
		return
	}

	if err := h.ruleService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
