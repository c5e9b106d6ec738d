package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a person reached about a job application. It references the
// application by id; it is not owned by it.
type Contact struct {
	ID               uuid.UUID      `json:"id"`
	JobApplicationID uuid.UUID      `json:"jobApplicationId"`
	Name             string         `json:"name"`
	Email            *string        `json:"email,omitempty"`
	LinkedIn         *string        `json:"linkedIn,omitempty"`
	Role             *string        `json:"role,omitempty"`
	Channel          ContactChannel `json:"channel"`
	OutreachDate     *time.Time     `json:"outreachDate,omitempty"`
	ResponseReceived bool           `json:"responseReceived"`
	Notes            *string        `json:"notes,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ContactInput holds raw creation data for a Contact.
type ContactInput struct {
	JobApplicationID uuid.UUID
	Name             string
	Email            string
	LinkedIn         string
	Role             string
	Channel          string
	OutreachDate     string
	ResponseReceived bool
	Notes            string
}

// ContactPatch is a partial update; nil leaves a field unchanged and an empty
// string clears an optional one.
type ContactPatch struct {
	Name             *string
	Email            *string
	LinkedIn         *string
	Role             *string
	Channel          *string
	OutreachDate     *string
	ResponseReceived *bool
	Notes            *string
}

// NewContact validates input and builds a Contact.
func NewContact(id uuid.UUID, in ContactInput, now time.Time) (*Contact, error) {
	var errs fieldErrors

	if id == uuid.Nil {
		errs.add("id", "required")
	}
	if in.JobApplicationID == uuid.Nil {
		errs.add("job_application_id", "required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs.add("name", "required")
	}
	email := validateEmail(&errs, in.Email)
	channel := parseChannel(&errs, in.Channel)
	outreach := parseOptionalDate(&errs, "outreach_date", in.OutreachDate)

	if err := errs.err(); err != nil {
		return nil, err
	}

	ts := Truncate(now)
	return &Contact{
		ID:               id,
		JobApplicationID: in.JobApplicationID,
		Name:             name,
		Email:            email,
		LinkedIn:         trimOrNil(in.LinkedIn),
		Role:             trimOrNil(in.Role),
		Channel:          channel,
		OutreachDate:     outreach,
		ResponseReceived: in.ResponseReceived,
		Notes:            trimOrNil(in.Notes),
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}, nil
}

// Update merges patch over the contact and bumps UpdatedAt monotonically.
func (c *Contact) Update(p ContactPatch, now time.Time) error {
	var errs fieldErrors
	next := *c

	if p.Name != nil {
		if n := strings.TrimSpace(*p.Name); n == "" {
			errs.add("name", "required")
		} else {
			next.Name = n
		}
	}
	if p.Email != nil {
		next.Email = validateEmail(&errs, *p.Email)
	}
	if p.LinkedIn != nil {
		next.LinkedIn = trimOrNil(*p.LinkedIn)
	}
	if p.Role != nil {
		next.Role = trimOrNil(*p.Role)
	}
	if p.Channel != nil {
		next.Channel = parseChannel(&errs, *p.Channel)
	}
	if p.OutreachDate != nil {
		next.OutreachDate = parseOptionalDate(&errs, "outreach_date", *p.OutreachDate)
	}
	if p.ResponseReceived != nil {
		next.ResponseReceived = *p.ResponseReceived
	}
	if p.Notes != nil {
		next.Notes = trimOrNil(*p.Notes)
	}

	if err := errs.err(); err != nil {
		return err
	}

	next.UpdatedAt = NextTimestamp(c.UpdatedAt, now)
	*c = next
	return nil
}

// DaysToResponse approximates the response delay as UpdatedAt - OutreachDate.
// There is no dedicated response timestamp, so the last edit stands in for it.
func (c *Contact) DaysToResponse() (float64, bool) {
	if !c.ResponseReceived || c.OutreachDate == nil {
		return 0, false
	}
	d := c.UpdatedAt.Sub(*c.OutreachDate).Hours() / 24
	if d < 0 {
		return 0, false
	}
	return d, true
}

// Clone returns a deep copy.
func (c *Contact) Clone() *Contact {
	out := *c
	out.Email = clonePtr(c.Email)
	out.LinkedIn = clonePtr(c.LinkedIn)
	out.Role = clonePtr(c.Role)
	out.OutreachDate = clonePtr(c.OutreachDate)
	out.Notes = clonePtr(c.Notes)
	return &out
}

func parseChannel(errs *fieldErrors, raw string) ContactChannel {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return ChannelOther
	}
	ch := ContactChannel(raw)
	if !ch.IsValid() {
		errs.add("channel", "unknown channel")
		return ChannelOther
	}
	return ch
}

func validateEmail(errs *fieldErrors, raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if _, err := mail.ParseAddress(raw); err != nil {
		errs.add("email", "invalid format")
		return nil
	}
	return &raw
}
