package cmsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/academyhall/booking-gateway/internal/domain"
	"github.com/academyhall/booking-gateway/internal/session"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver учитывает исходящие вызовы CMS; может быть nil
type MetricsObserver interface {
	ObserveCMSRequest(operation string, err error, duration time.Duration)
}

// Client клиент внешнего CMS API бронирований (Frappe-бэкенд).
// Все ответы приходят в конверте {"message": ...}; аутентификация —
// сессионная cookie sid, пробрасываемая из контекста запроса.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента CMS API
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// ListRequest параметры постраничного списка бронирований
type ListRequest struct {
	Page     int
	PageSize int
	Status   string
	Academy  string
	Hall     string
	Search   string
	// OnlyMine ограничивает выборку бронированиями текущего пользователя
	OnlyMine bool
}

// Login authenticates against the CMS and returns the gateway session,
// including the CMS sid to forward on later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	body, err := json.Marshal(map[string]string{"usr": email, "pwd": password})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal login request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/method/academy.api.auth.login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: create login request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe("login", err, start)
	if err != nil {
		return nil, fmt.Errorf("%w: execute login request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read login response: %v", ErrInternal, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrInvalidCredentials
	default:
		return nil, c.remoteError("login", resp.StatusCode, raw)
	}

	var envelope struct {
		Message struct {
			User rawLoginUser `json:"user"`
		} `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode login response: %v", ErrInvalidResponse, err)
	}

	sid := sidFromCookies(resp.Cookies())
	if sid == "" {
		return nil, fmt.Errorf("%w: login response carried no sid cookie", ErrInvalidResponse)
	}

	user := envelope.Message.User
	role := session.RoleUser
	if user.Role == "ADMIN" {
		role = session.RoleApprover
	}

	return &session.Session{
		UserID:   firstNonEmpty(user.UserID, user.Email, email),
		FullName: user.FullName,
		Email:    firstNonEmpty(user.Email, email),
		Role:     role,
		SID:      sid,
	}, nil
}

// Logout revokes the CMS session
func (c *Client) Logout(ctx context.Context) error {
	var discard json.RawMessage
	return c.call(ctx, http.MethodPost, "/api/method/logout", nil, nil, &discard)
}

// GetAcademiesWithHalls fetches every academy with its nested halls
func (c *Client) GetAcademiesWithHalls(ctx context.Context) ([]domain.Academy, error) {
	var envelope struct {
		Data []rawAcademy `json:"data"`
	}
	err := c.call(ctx, http.MethodGet,
		"/api/method/academy.api.academy.get_academies_with_halls", nil, nil, &envelope)
	if err != nil {
		return nil, err
	}

	academies := make([]domain.Academy, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		academy, err := parseAcademy(raw)
		if err != nil {
			c.log.Warn("GetAcademiesWithHalls: skipping malformed academy: %v", err)
			continue
		}
		academies = append(academies, academy)
	}
	return academies, nil
}

// GetMasterData fetches the form's lookup lists
func (c *Client) GetMasterData(ctx context.Context) (*domain.MasterData, error) {
	var raw rawMasterData
	err := c.call(ctx, http.MethodGet,
		"/api/method/academy.api.master_data.get_master_data", nil, nil, &raw)
	if err != nil {
		return nil, err
	}
	return parseMasterData(raw), nil
}

// CreateBooking submits an assembled booking payload; returns the id of
// the created record.
func (c *Client) CreateBooking(ctx context.Context, payload *BookingCreateRequest) (string, error) {
	var envelope struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	err := c.call(ctx, http.MethodPost,
		"/api/method/academy.api.booking.create_booking", nil, payload, &envelope)
	if err != nil {
		return "", err
	}
	if envelope.Data.Name == "" {
		return "", fmt.Errorf("%w: create response carried no booking id", ErrInvalidResponse)
	}
	return envelope.Data.Name, nil
}

// GetBookingList fetches one page of bookings with the CMS applying
// filters and paging. Ordering is whatever the CMS returns, unchanged.
func (c *Client) GetBookingList(ctx context.Context, req ListRequest) ([]*domain.Booking, int, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", req.Page))
	params.Set("page_length", fmt.Sprintf("%d", req.PageSize))
	setIfActive(params, "status", req.Status)
	setIfActive(params, "academy", req.Academy)
	setIfActive(params, "hall", req.Hall)
	if req.Search != "" {
		params.Set("search", req.Search)
	}

	method := "/api/method/academy.api.booking.get_approver_booking_list"
	if req.OnlyMine {
		method = "/api/method/academy.api.booking.get_paginated_bookings"
	}

	var envelope struct {
		Data       []rawBooking `json:"data"`
		TotalCount int          `json:"total_count"`
	}
	if err := c.call(ctx, http.MethodGet, method, params, nil, &envelope); err != nil {
		return nil, 0, err
	}

	bookings := make([]*domain.Booking, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		booking, err := parseBooking(raw)
		if err != nil {
			c.log.Warn("GetBookingList: skipping malformed booking: %v", err)
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, envelope.TotalCount, nil
}

// GetBookingDetails fetches one booking by id
func (c *Client) GetBookingDetails(ctx context.Context, bookingID string) (*domain.Booking, error) {
	params := url.Values{}
	params.Set("booking_id", bookingID)

	var raw rawBooking
	err := c.call(ctx, http.MethodGet,
		"/api/method/academy.api.booking.get_booking_details", params, nil, &raw)
	if err != nil {
		return nil, err
	}
	return parseBooking(raw)
}

// GetCalendarBookings fetches bookings overlapping the inclusive date
// window, optionally narrowed to an academy or hall.
func (c *Client) GetCalendarBookings(ctx context.Context, start, end time.Time, academyID, hallID string) ([]*domain.Booking, error) {
	params := url.Values{}
	params.Set("start_date", start.Format(domain.DateFormat))
	params.Set("end_date", end.Format(domain.DateFormat))
	setIfActive(params, "academy", academyID)
	setIfActive(params, "hall", hallID)

	var envelope struct {
		Data []rawBooking `json:"data"`
	}
	err := c.call(ctx, http.MethodGet,
		"/api/method/academy.api.booking.get_calendar_bookings", params, nil, &envelope)
	if err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		booking, err := parseBooking(raw)
		if err != nil {
			c.log.Warn("GetCalendarBookings: skipping malformed booking: %v", err)
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// GetBookingStats fetches aggregate booking counts keyed by raw status
func (c *Client) GetBookingStats(ctx context.Context) (map[domain.BookingStatus]int, error) {
	var raw map[string]int
	err := c.call(ctx, http.MethodGet,
		"/api/method/academy.api.booking.get_booking_stats", nil, nil, &raw)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.BookingStatus]int, len(raw))
	for status, n := range raw {
		counts[domain.NormalizeStatus(status)] += n
	}
	return counts, nil
}

// call выполняет запрос к CMS: прокидывает sid из контекста, снимает
// конверт {"message": ...} и раскладывает ошибки по статус-кодам.
func (c *Client) call(ctx context.Context, method, path string, params url.Values, payload, out interface{}) error {
	operation := path
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%w: marshal request body: %v", ErrInternal, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sess, ok := session.FromContext(ctx); ok {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sess.SID})
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(operation, err, start)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrInternal, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return c.remoteError(operation, resp.StatusCode, raw)
	}

	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%w: decode envelope: %v", ErrInvalidResponse, err)
	}
	if len(envelope.Message) == 0 {
		return fmt.Errorf("%w: response carried no message", ErrInvalidResponse)
	}
	if err := json.Unmarshal(envelope.Message, out); err != nil {
		return fmt.Errorf("%w: decode message: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) remoteError(operation string, status int, body []byte) error {
	message := UnwrapErrorMessage(body)
	if message == "" {
		message = fmt.Sprintf("unexpected status code %d", status)
	}
	c.log.Warn("CMS %s failed: status=%d, message=%s", operation, status, message)
	return fmt.Errorf("%w: %s", ErrRemote, message)
}

func (c *Client) observe(operation string, err error, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveCMSRequest(operation, err, time.Since(start))
	}
}

func setIfActive(params url.Values, key, value string) {
	if value != "" && value != domain.FilterAll {
		params.Set(key, value)
	}
}

func sidFromCookies(cookies []*http.Cookie) string {
	for _, c := range cookies {
		if c.Name == "sid" {
			return c.Value
		}
	}
	return ""
}
