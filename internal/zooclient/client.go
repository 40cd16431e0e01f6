// Package zooclient habla con la API HTTP del zoológico.
package zooclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"animal-zoo/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Resident es la vista de un residente que devuelve la API.
type Resident struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Health      int       `json:"health"`
	Description string    `json:"description"`
	Breed       *string   `json:"breed,omitempty"`
	Tricks      []string  `json:"tricks,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Lives       *int      `json:"lives,omitempty"`
	Wingspan    *float64  `json:"wingspan,omitempty"`
	CanFly      *bool     `json:"can_fly,omitempty"`
	AdmittedAt  time.Time `json:"admitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Action struct {
	Action string `json:"action"`
	Food   string `json:"food,omitempty"`
	Trick  string `json:"trick,omitempty"`
	CanFly *bool  `json:"can_fly,omitempty"`
}

type ActionResult struct {
	Message  string   `json:"message"`
	Resident Resident `json:"resident"`
}

type Census struct {
	Dogs  int `json:"dogs"`
	Cats  int `json:"cats"`
	Birds int `json:"birds"`
	Total int `json:"total"`
}

type JournalEntry struct {
	ID         string    `json:"id"`
	ResidentID string    `json:"resident_id"`
	Action     string    `json:"action"`
	Message    string    `json:"message"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Admit pide a la API que construya y registre un animal.
// args se mandan tal cual; la API acepta números como strings.
func (c *Client) Admit(ctx context.Context, kind string, args ...any) (Resident, error) {
	if args == nil {
		args = []any{}
	}
	var out Resident
	err := c.http.DoJSON(ctx, http.MethodPost, "/residents", map[string]any{
		"type": kind,
		"args": args,
	}, &out)
	return out, err
}

func (c *Client) List(ctx context.Context) ([]Resident, error) {
	var out []Resident
	err := c.http.DoJSON(ctx, http.MethodGet, "/residents", nil, &out)
	return out, err
}

func (c *Client) Get(ctx context.Context, id string) (Resident, error) {
	var out Resident
	err := c.http.DoJSON(ctx, http.MethodGet, "/residents/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) Act(ctx context.Context, id string, a Action) (ActionResult, error) {
	var out ActionResult
	err := c.http.DoJSON(ctx, http.MethodPost, "/residents/"+url.PathEscape(id)+"/actions", a, &out)
	return out, err
}

func (c *Client) Journal(ctx context.Context, id string, limit int) ([]JournalEntry, error) {
	path := "/residents/" + url.PathEscape(id) + "/journal"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}
	var out []JournalEntry
	err := c.http.DoJSON(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Census(ctx context.Context) (Census, error) {
	var out Census
	err := c.http.DoJSON(ctx, http.MethodGet, "/census", nil, &out)
	return out, err
}

func (c *Client) Concert(ctx context.Context) ([]string, error) {
	var out []string
	err := c.http.DoJSON(ctx, http.MethodGet, "/concert", nil, &out)
	return out, err
}
