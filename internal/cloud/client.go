// Package cloud implements the sync client against the school's Google
// Apps Script spreadsheet endpoint: push (save) uploads a full snapshot,
// pull (read) applies a partial merge of whatever the endpoint returns.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/smaamdev/esekolah/internal/state"
	"github.com/smaamdev/esekolah/internal/store"
)

var (
	// ErrNoEndpoint means no Apps Script URL is configured. Callers must
	// surface this as a blocking message before any network activity.
	ErrNoEndpoint = errors.New("url google apps script belum ditetapkan")

	// ErrSyncInProgress means a push or pull is already running.
	ErrSyncInProgress = errors.New("penyegerakan sedang berjalan")
)

// Client exchanges the application snapshot with the remote endpoint.
type Client struct {
	state    *state.App
	store    *store.Store
	registry *store.Registry
	http     *http.Client

	// Push and pull are mutually exclusive. This is a UI double-submit
	// guard, not a correctness requirement.
	syncing atomic.Bool
}

// New returns a sync client. Requests carry no overall deadline beyond the
// caller's context; only the dial is bounded.
func New(st *state.App, kv *store.Store, reg *store.Registry) *Client {
	return &Client{
		state:    st,
		store:    kv,
		registry: reg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// IsSyncing reports whether a push or pull is in flight.
func (c *Client) IsSyncing() bool {
	return c.syncing.Load()
}

func (c *Client) begin() error {
	if !c.syncing.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	return nil
}

// Push uploads the full snapshot. On any failure the local state is left
// untouched and a failure toast is shown.
func (c *Client) Push(ctx context.Context) error {
	endpoint := c.state.SiteConfig().GoogleScriptURL
	if endpoint == "" {
		return ErrNoEndpoint
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.syncing.Store(false)

	notifier := c.state.Notifier()
	notifier.Show("Sedang menyimpan semua data ke Cloud...")

	custom, err := c.registry.Collect(c.store)
	if err != nil {
		notifier.Show("❌ Gagal menyambung ke server.")
		return fmt.Errorf("collecting module data: %w", err)
	}

	permissions := c.state.Permissions()
	siteConfig := c.state.SiteConfig()
	schoolProfile := c.state.SchoolProfile()
	body := saveRequest{
		Action: "save",
		Data: payload{
			Permissions:   &permissions,
			SiteConfig:    &siteConfig,
			Announcements: c.state.Announcements(),
			Programs:      c.state.Programs(),
			Teachers:      c.state.Teachers(),
			SchoolProfile: &schoolProfile,
			CustomData:    custom,
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		notifier.Show("❌ Gagal menyambung ke server.")
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		notifier.Show("❌ Gagal menyambung ke server.")
		return fmt.Errorf("creating request: %w", err)
	}
	// Apps Script web apps do not answer CORS preflights, so the body is
	// sent as text/plain rather than application/json.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		notifier.Show("❌ Gagal menyambung ke server.")
		return fmt.Errorf("posting snapshot: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		notifier.Show("❌ Gagal menyambung ke server.")
		return fmt.Errorf("reading response: %w", err)
	}

	var result pushResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		notifier.Show("❌ Gagal menyambung ke server.")
		return fmt.Errorf("decoding response: %w", err)
	}

	if result.Status != "success" {
		notifier.Show("⚠️ Ralat: " + result.Message)
		return fmt.Errorf("server rejected save: %s", result.Message)
	}

	notifier.Show("✅ Berjaya disimpan di Google Sheet!")
	return nil
}

// Pull downloads the remote snapshot and applies a partial merge: only
// fields present in the response overwrite local state and storage. The
// local GoogleScriptURL is always preserved so a sync endpoint can never
// redirect itself. Module collections are written back verbatim and the
// generation counter is bumped so their views re-read storage.
func (c *Client) Pull(ctx context.Context) error {
	cfg := c.state.SiteConfig()
	if cfg.GoogleScriptURL == "" {
		return ErrNoEndpoint
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.syncing.Store(false)

	notifier := c.state.Notifier()
	notifier.Show("Sedang memuat turun data...")

	readURL, err := readActionURL(cfg.GoogleScriptURL)
	if err != nil {
		notifier.Show("❌ Gagal memuat turun data.")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readURL, nil)
	if err != nil {
		notifier.Show("❌ Gagal memuat turun data.")
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		notifier.Show("❌ Gagal memuat turun data.")
		return fmt.Errorf("fetching snapshot: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		notifier.Show("❌ Gagal memuat turun data.")
		return fmt.Errorf("reading response: %w", err)
	}

	var result pullResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		notifier.Show("❌ Gagal memuat turun data.")
		return fmt.Errorf("decoding response: %w", err)
	}

	if result.Status != "success" || result.Data == nil {
		notifier.Show("⚠️ Tiada data dijumpai atau ralat server.")
		return fmt.Errorf("server returned no data: %s", result.Message)
	}

	if err := c.apply(result.Data, cfg.GoogleScriptURL); err != nil {
		notifier.Show("❌ Gagal memuat turun data.")
		return err
	}

	notifier.Show("✅ Data berjaya dimuat turun!")
	return nil
}

// apply performs the field-level last-write-wins merge of a pull payload.
func (c *Client) apply(d *pullPayload, localScriptURL string) error {
	if d.Permissions != nil {
		if err := c.state.ReplacePermissions(*d.Permissions); err != nil {
			return err
		}
	}
	if d.SiteConfig != nil {
		merged := *d.SiteConfig
		merged.GoogleScriptURL = localScriptURL
		if err := c.state.ReplaceSiteConfig(merged); err != nil {
			return err
		}
	}
	if d.Announcements != nil {
		if err := c.state.ReplaceAnnouncements(d.Announcements); err != nil {
			return err
		}
	}
	if d.Programs != nil {
		if err := c.state.ReplacePrograms(d.Programs); err != nil {
			return err
		}
	}
	if d.Teachers != nil {
		if err := c.state.ReplaceTeachers(d.Teachers); err != nil {
			return err
		}
	}
	if d.SchoolProfile != nil {
		if err := c.state.ReplaceSchoolProfile(*d.SchoolProfile); err != nil {
			return err
		}
	}

	if d.CustomData != nil {
		for key, raw := range d.CustomData {
			if err := c.store.SetRaw(key, string(raw)); err != nil {
				return err
			}
		}
		c.state.BumpGeneration()
	}

	return nil
}

// readActionURL appends the read action to the endpoint, preserving any
// query parameters already on it.
func readActionURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint url: %w", err)
	}
	q := u.Query()
	q.Set("action", "read")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
