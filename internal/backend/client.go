// Package backend is the HTTP client for the TecaiKids REST API.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"github.com/tecaikids/website/internal/config"
	"github.com/tecaikids/website/internal/models"
	"github.com/tecaikids/website/internal/utils"
)

// ErrRequestFailed covers every failed call: transport errors, timeouts,
// non-2xx statuses and undecodable bodies.
var ErrRequestFailed = errors.New("backend request failed")

// StatusError is a call the backend answered with a non-2xx status.
type StatusError struct {
	Method string
	Target string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Target, e.Code, ErrRequestFailed)
}

func (e *StatusError) Unwrap() error { return ErrRequestFailed }

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

type Client struct {
	base string
	http *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		base: cfg.APIBase(),
		http: &http.Client{Timeout: cfg.BackendTimeout},
	}
}

// NewClientWith is used by tests to point at an httptest server.
func NewClientWith(apiBase string, hc *http.Client) *Client {
	return &Client{base: strings.TrimRight(apiBase, "/"), http: hc}
}

func (c *Client) url(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.base + "/" + strings.Join(escaped, "/")
}

func (c *Client) get(ctx context.Context, target string, out interface{}) error {
	code := 0
	err := gout.New(c.http).
		GET(target).
		WithContext(ctx).
		SetHeader(gout.H{"Accept": "application/json", "X-Request-ID": utils.GenerateID()}).
		BindJSON(out).
		Code(&code).
		Do()
	return check("GET", target, code, err)
}

func (c *Client) post(ctx context.Context, target string, body, out interface{}) error {
	code := 0
	err := gout.New(c.http).
		POST(target).
		WithContext(ctx).
		SetHeader(gout.H{"Accept": "application/json", "X-Request-ID": utils.GenerateID()}).
		SetJSON(body).
		BindJSON(out).
		Code(&code).
		Do()
	return check("POST", target, code, err)
}

func check(method, target string, code int, err error) error {
	if code >= 300 {
		return &StatusError{Method: method, Target: target, Code: code}
	}
	if err != nil {
		return errors.Wrapf(ErrRequestFailed, "%s %s: %v", method, target, err)
	}
	if code < 200 {
		return errors.Wrapf(ErrRequestFailed, "%s %s: status %d", method, target, code)
	}
	return nil
}

// FetchPrograms returns the program catalog in backend order.
func (c *Client) FetchPrograms(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	if err := c.get(ctx, c.url("programs"), &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (c *Client) FetchProgram(ctx context.Context, pt models.ProgramType) (*models.Program, error) {
	var p models.Program
	if err := c.get(ctx, c.url("programs", string(pt)), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) FetchStats(ctx context.Context) (models.Stats, error) {
	var s models.Stats
	if err := c.get(ctx, c.url("stats"), &s); err != nil {
		return models.Stats{}, err
	}
	return s, nil
}

func (c *Client) CreateConsultation(ctx context.Context, req models.ConsultationRequest) (models.Receipt, error) {
	var r models.Receipt
	err := c.post(ctx, c.url("consultation"), req, &r)
	return r, err
}

func (c *Client) CreateEnrollment(ctx context.Context, req models.EnrollmentRequest) (models.Receipt, error) {
	var r models.Receipt
	err := c.post(ctx, c.url("enrollment"), req, &r)
	return r, err
}

// Ping calls the API root and returns its greeting.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.get(ctx, c.base+"/", &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
