package cloud

import (
	"encoding/json"

	"github.com/smaamdev/esekolah/internal/domain"
)

// saveRequest is the push body sent to the Apps Script endpoint.
type saveRequest struct {
	Action string  `json:"action"`
	Data   payload `json:"data"`
}

// payload carries the full application snapshot. On push every field is
// populated; on pull a nil field means "absent in the response" and the
// corresponding local entity is left untouched. Slices deliberately omit
// omitempty so that an empty collection is still transmitted and an empty
// remote collection still replaces the local one — presence, not
// truthiness, gates the overwrite.
type payload struct {
	Permissions   *domain.Permissions        `json:"permissions,omitempty"`
	SiteConfig    *domain.SiteConfig         `json:"siteConfig,omitempty"`
	Announcements []domain.Announcement      `json:"announcements"`
	Programs      []domain.Program           `json:"programs"`
	Teachers      []domain.Teacher           `json:"teachers"`
	SchoolProfile *domain.SchoolProfile      `json:"schoolProfile,omitempty"`
	CustomData    map[string]json.RawMessage `json:"customData,omitempty"`
}

// pullPayload mirrors payload for the read response. Slices must
// distinguish absent (nil) from present-and-empty, which the default
// decoder already does.
type pullPayload struct {
	Permissions   *domain.Permissions        `json:"permissions"`
	SiteConfig    *domain.SiteConfig         `json:"siteConfig"`
	Announcements []domain.Announcement      `json:"announcements"`
	Programs      []domain.Program           `json:"programs"`
	Teachers      []domain.Teacher           `json:"teachers"`
	SchoolProfile *domain.SchoolProfile      `json:"schoolProfile"`
	CustomData    map[string]json.RawMessage `json:"customData"`
}

// pushResponse is the status envelope the endpoint answers with.
type pushResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// pullResponse is the read envelope.
type pullResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    *pullPayload `json:"data"`
}
