package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/landmarks"
	"github.com/i474232898/weather-lookup/internal/location"
	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/records"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = validator.New()

const defaultLandmarkLimit = 10

type handler struct {
	weather   *weather.Service
	records   *records.Service
	landmarks *landmarks.Catalog
	now       func() time.Time
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, weatherSvc *weather.Service, recordSvc *records.Service, catalog *landmarks.Catalog) {
	h := &handler{
		weather:   weatherSvc,
		records:   recordSvc,
		landmarks: catalog,
		now:       time.Now,
	}

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	v1 := app.Group("/api/v1")

	v1.Get("/weather", h.getWeather)
	v1.Get("/location/validate", h.validateLocation)

	v1.Get("/landmarks", h.listLandmarks)
	v1.Get("/landmarks/resolve", h.resolveLandmark)

	v1.Post("/records", h.createRecord)
	v1.Get("/records", h.listRecords)
	v1.Get("/records/export", h.exportRecords)
	v1.Get("/records/:id", h.getRecord)
	v1.Put("/records/:id", h.updateRecord)
	v1.Delete("/records/:id", h.deleteRecord)
}

// ErrorHandler renders every error as {"error":true,"message":...} with a
// status derived from the error type.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func statusFor(err error) int {
	var (
		fe *fiber.Error
		ve *weather.ValidationError
		pe *weather.ProviderError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.As(err, &pe):
		switch pe.Kind {
		case weather.ProviderNotFound:
			return fiber.StatusNotFound
		case weather.ProviderRateLimited:
			return fiber.StatusTooManyRequests
		default:
			return fiber.StatusBadGateway
		}
	case errors.Is(err, weather.ErrNoDataAvailable), errors.Is(err, records.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// weatherQuery holds query parameters for the weather endpoint.
type weatherQuery struct {
	Location  string
	Lat       string `validate:"omitempty,latitude"`
	Lon       string `validate:"omitempty,longitude"`
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

func (h *handler) getWeather(c *fiber.Ctx) error {
	q := weatherQuery{
		Location:  strings.TrimSpace(c.Query("location")),
		Lat:       c.Query("lat"),
		Lon:       c.Query("lon"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if q.Lat != "" && q.Lon != "" {
		lat, _ := strconv.ParseFloat(q.Lat, 64)
		lon, _ := strconv.ParseFloat(q.Lon, 64)
		res, err := h.weather.GetWeatherByCoordinates(c.UserContext(), lat, lon)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}

	if q.Location == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Location parameter is required")
	}

	rng, err := parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return err
	}

	res, err := h.weather.GetWeather(c.UserContext(), q.Location, rng)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// parseRange returns nil when neither date is given. Formats are checked by
// the validator beforehand.
func parseRange(start, end string) (*daterange.Range, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "startDate and endDate must be provided together")
	}
	s, err := daterange.ParseDate(start)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	e, err := daterange.ParseDate(end)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &daterange.Range{Start: s, End: e}, nil
}

func (h *handler) validateLocation(c *fiber.Ctx) error {
	res := location.Classify(c.Query("q"))
	return c.JSON(fiber.Map{
		"isValid":     res.Valid,
		"kind":        res.Kind,
		"description": res.Kind.Description(),
		"normalized":  res.Normalized,
		"error":       res.Error,
	})
}

// landmarkQuery holds query parameters for the landmark listing.
type landmarkQuery struct {
	Q        string
	Category string `validate:"omitempty,oneof=monument building natural religious historical modern"`
	Limit    int    `validate:"gte=1,lte=100"`
}

func (h *handler) listLandmarks(c *fiber.Ctx) error {
	q := landmarkQuery{
		Q:        strings.TrimSpace(c.Query("q")),
		Category: strings.ToLower(c.Query("category")),
		Limit:    c.QueryInt("limit", defaultLandmarkLimit),
	}
	if err := validate.Struct(q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var list []landmarks.Landmark
	switch {
	case q.Q != "":
		list = h.landmarks.Search(q.Q)
	case q.Category != "":
		list = h.landmarks.ByCategory(landmarks.Category(q.Category))
	default:
		list = h.landmarks.Random(q.Limit)
	}
	if len(list) > q.Limit {
		list = list[:q.Limit]
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
		"count":   len(list),
	})
}

func (h *handler) resolveLandmark(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q parameter is required")
	}
	lm, ok := h.landmarks.Resolve(q)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("no landmark matches %q", q))
	}
	return c.JSON(lm)
}

type createRecordRequest struct {
	Location  string `json:"location" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

func (h *handler) createRecord(c *fiber.Ctx) error {
	var req createRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rng, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	rec, err := h.records.Create(c.UserContext(), records.CreateInput{
		Location: req.Location,
		Start:    rng.Start,
		End:      rng.End,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    rec,
		"message": "Weather record created successfully",
	})
}

// listQuery holds the record filter parameters shared by list and export.
type listQuery struct {
	Location  string
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	SortBy    string `validate:"omitempty,oneof=createdAt updatedAt location startDate endDate"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"gte=0,lte=1000"`
	Page      int    `validate:"gte=0"`
}

func parseFilter(c *fiber.Ctx) (records.Filter, error) {
	q := listQuery{
		Location:  strings.TrimSpace(c.Query("location")),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		SortBy:    c.Query("sortBy"),
		SortOrder: strings.ToLower(c.Query("sortOrder")),
		Limit:     c.QueryInt("limit", 0),
		Page:      c.QueryInt("page", 1),
	}
	if err := validate.Struct(q); err != nil {
		return records.Filter{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	f := records.Filter{
		Location:  q.Location,
		SortBy:    q.SortBy,
		Ascending: q.SortOrder == "asc",
		Limit:     q.Limit,
		Page:      q.Page,
	}
	if q.StartDate != "" {
		f.From, _ = daterange.ParseDate(q.StartDate)
	}
	if q.EndDate != "" {
		f.To, _ = daterange.ParseDate(q.EndDate)
	}
	return f, nil
}

func (h *handler) listRecords(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return err
	}
	page, err := h.records.List(c.UserContext(), f)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       page.Records,
		"pagination": page.Pagination,
	})
}

func (h *handler) exportRecords(c *fiber.Ctx) error {
	format, err := records.ParseFormat(c.Query("format"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	f, err := parseFilter(c)
	if err != nil {
		return err
	}

	recs, err := h.records.Export(c.UserContext(), f)
	if err != nil {
		return err
	}

	now := h.now()
	var buf bytes.Buffer
	if err := records.Export(&buf, format, recs, now); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", format.FileName(now)))
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(buf.Bytes())
}

func (h *handler) getRecord(c *fiber.Ctx) error {
	rec, err := h.records.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": rec})
}

type updateRecordRequest struct {
	Location          *string `json:"location"`
	StartDate         *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate           *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	UpdateWeatherData bool    `json:"updateWeatherData"`
}

func (h *handler) updateRecord(c *fiber.Ctx) error {
	var req updateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	in := records.UpdateInput{UpdateWeatherData: req.UpdateWeatherData}
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		in.Location = req.Location
	}
	if req.StartDate != nil && *req.StartDate != "" {
		d, _ := daterange.ParseDate(*req.StartDate)
		in.Start = &d
	}
	if req.EndDate != nil && *req.EndDate != "" {
		d, _ := daterange.ParseDate(*req.EndDate)
		in.End = &d
	}

	rec, err := h.records.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    rec,
		"message": "Weather record updated successfully",
	})
}

func (h *handler) deleteRecord(c *fiber.Ctx) error {
	if err := h.records.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Weather record deleted successfully",
	})
}
