package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"clinicdesk/config"
	"clinicdesk/models"
	"clinicdesk/utils"
)

// Client is the single gateway to the clinic API. It owns request
// construction, bearer credentials and response interpretation; no
// other package talks to the network.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewClient(cfg *config.Config) *Client {
	perMin := cfg.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 120
	}
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
		logger:  utils.GetLogger().Named("api"),
	}
}

// do performs one request. A non-empty token is sent as a bearer
// credential. Non-2xx responses and transport failures come back as
// *utils.NetworkError; out, when non-nil, receives the decoded body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &utils.NetworkError{Body: err.Error()}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &utils.NetworkError{Body: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := uuid.NewString()
	c.logger.Debug("request",
		zap.String("requestId", requestID),
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("requestId", requestID),
			zap.Error(err),
		)
		return &utils.NetworkError{Body: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Warn("unexpected status",
			zap.String("requestId", requestID),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &utils.NetworkError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(raw)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &utils.NetworkError{Status: resp.StatusCode, Body: "decode response: " + err.Error()}
		}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session. Interpretation of the
// failure body into an AuthError is left to the session layer.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var session models.Session
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListDoctors fetches the full doctor list. Public endpoint.
func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/api/doctors", "", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// ListSlots fetches the slot list for one doctor. Public endpoint.
func (c *Client) ListSlots(ctx context.Context, doctorID int64) ([]models.Slot, error) {
	var slots []models.Slot
	path := fmt.Sprintf("/api/doctors/%d/slots", doctorID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateDoctor creates a doctor through the admin surface.
func (c *Client) CreateDoctor(ctx context.Context, token string, in models.DoctorInput) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.do(ctx, http.MethodPost, "/api/admin/doctors", token, in, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// DeleteDoctor deletes a doctor and everything scoped under it.
func (c *Client) DeleteDoctor(ctx context.Context, token string, doctorID int64) error {
	path := fmt.Sprintf("/api/admin/doctors/%d", doctorID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// CreateSlot creates a slot under a doctor. Instants are normalized to
// UTC before hitting the wire.
func (c *Client) CreateSlot(ctx context.Context, token string, doctorID int64, start, end time.Time) (*models.Slot, error) {
	in := models.SlotInput{
		StartTime: start.UTC().Format(time.RFC3339),
		EndTime:   end.UTC().Format(time.RFC3339),
	}
	var slot models.Slot
	path := fmt.Sprintf("/api/admin/doctors/%d/slots", doctorID)
	if err := c.do(ctx, http.MethodPost, path, token, in, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// DeleteSlot deletes one slot under a doctor.
func (c *Client) DeleteSlot(ctx context.Context, token string, doctorID, slotID int64) error {
	path := fmt.Sprintf("/api/admin/doctors/%d/slots/%d", doctorID, slotID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// PatientBookings fetches the booking list for a patient email.
func (c *Client) PatientBookings(ctx context.Context, email string) ([]models.BookingItem, error) {
	var items []models.BookingItem
	path := "/api/patients/bookings?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
