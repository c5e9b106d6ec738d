package analytics

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

const unspecifiedRole = "unspecified"

type ContactSummary struct {
	TotalContacts                 int     `json:"totalContacts"`
	ApplicationsWithContacts      int     `json:"applicationsWithContacts"`
	AverageContactsPerApplication float64 `json:"averageContactsPerApplication"`
	ResponsesReceived             int     `json:"responsesReceived"`
	ResponseRate                  float64 `json:"responseRate"`
}

type ApplicationContacts struct {
	JobApplicationID uuid.UUID `json:"jobApplicationId"`
	Company          string    `json:"company"`
	ContactCount     int       `json:"contactCount"`
	Responses        int       `json:"responses"`
}

type ChannelResponse struct {
	Channel      domain.ContactChannel `json:"channel"`
	Total        int                   `json:"total"`
	Responses    int                   `json:"responses"`
	ResponseRate float64               `json:"responseRate"`
}

type RoleResponse struct {
	Role         string  `json:"role"`
	Total        int     `json:"total"`
	Responses    int     `json:"responses"`
	ResponseRate float64 `json:"responseRate"`
}

// ContactBucket groups applications by how many contacts they have.
type ContactBucket struct {
	Bucket        string  `json:"bucket"`
	Applications  int     `json:"applications"`
	ActiveRate    float64 `json:"activeRate"`
	OfferRate     float64 `json:"offerRate"`
	RejectionRate float64 `json:"rejectionRate"`
}

type ContactAnalytics struct {
	Summary        ContactSummary        `json:"summary"`
	PerApplication []ApplicationContacts `json:"perApplication"`
	DaysToResponse Stats                 `json:"daysToResponse"`
	ByChannel      []ChannelResponse     `json:"byChannel"`
	ByRole         []RoleResponse        `json:"byRole"`
	Correlation    []ContactBucket       `json:"correlation"`
}

// contactBuckets are inclusive [lo, hi] ranges; hi < 0 means unbounded.
var contactBuckets = []struct {
	name   string
	lo, hi int
}{
	{"0", 0, 0},
	{"1-2", 1, 2},
	{"3-5", 3, 5},
	{"6+", 6, -1},
}

// ComputeContacts builds the contact report. Contacts whose application is
// not in apps still count toward totals and per-channel/role rates.
func ComputeContacts(apps []*domain.JobApplication, contacts []*domain.Contact) ContactAnalytics {
	perApp := make(map[uuid.UUID]*ApplicationContacts, len(apps))
	for _, a := range apps {
		perApp[a.ID] = &ApplicationContacts{JobApplicationID: a.ID, Company: a.Company}
	}

	var (
		summary   = ContactSummary{TotalContacts: len(contacts)}
		delays    []float64
		byChannel = make(map[domain.ContactChannel]*ChannelResponse)
		byRole    = make(map[string]*RoleResponse)
	)

	for _, c := range contacts {
		if pa, ok := perApp[c.JobApplicationID]; ok {
			pa.ContactCount++
			if c.ResponseReceived {
				pa.Responses++
			}
		}
		if c.ResponseReceived {
			summary.ResponsesReceived++
		}
		if d, ok := c.DaysToResponse(); ok {
			delays = append(delays, d)
		}

		ch := c.Channel
		if ch == "" {
			ch = domain.ChannelOther
		}
		cr := byChannel[ch]
		if cr == nil {
			cr = &ChannelResponse{Channel: ch}
			byChannel[ch] = cr
		}
		cr.Total++

		role := unspecifiedRole
		if c.Role != nil {
			role = strings.ToLower(strings.TrimSpace(*c.Role))
		}
		rr := byRole[role]
		if rr == nil {
			rr = &RoleResponse{Role: role}
			byRole[role] = rr
		}
		rr.Total++

		if c.ResponseReceived {
			cr.Responses++
			rr.Responses++
		}
	}

	per := make([]ApplicationContacts, 0, len(apps))
	for _, a := range apps {
		pa := perApp[a.ID]
		if pa.ContactCount > 0 {
			summary.ApplicationsWithContacts++
		}
		per = append(per, *pa)
	}
	sort.SliceStable(per, func(i, j int) bool { return per[i].ContactCount > per[j].ContactCount })

	if len(apps) > 0 {
		summary.AverageContactsPerApplication = float64(len(contacts)) / float64(len(apps))
	}
	summary.ResponseRate = Rate(summary.ResponsesReceived, summary.TotalContacts)

	channels := make([]ChannelResponse, 0, len(byChannel))
	for _, cr := range byChannel {
		cr.ResponseRate = Rate(cr.Responses, cr.Total)
		channels = append(channels, *cr)
	}
	sort.Slice(channels, func(i, j int) bool {
		if channels[i].Total != channels[j].Total {
			return channels[i].Total > channels[j].Total
		}
		return channels[i].Channel < channels[j].Channel
	})

	roles := make([]RoleResponse, 0, len(byRole))
	for _, rr := range byRole {
		rr.ResponseRate = Rate(rr.Responses, rr.Total)
		roles = append(roles, *rr)
	}
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].Total != roles[j].Total {
			return roles[i].Total > roles[j].Total
		}
		return roles[i].Role < roles[j].Role
	})

	return ContactAnalytics{
		Summary:        summary,
		PerApplication: per,
		DaysToResponse: Summarize(delays),
		ByChannel:      channels,
		ByRole:         roles,
		Correlation:    contactCorrelation(apps, perApp),
	}
}

// contactCorrelation always reports every bucket, empty ones with zero rates.
func contactCorrelation(apps []*domain.JobApplication, perApp map[uuid.UUID]*ApplicationContacts) []ContactBucket {
	tallies := make([]outcome, len(contactBuckets))
	for _, a := range apps {
		n := perApp[a.ID].ContactCount
		for i, b := range contactBuckets {
			if n >= b.lo && (b.hi < 0 || n <= b.hi) {
				tallies[i].add(a)
				break
			}
		}
	}

	out := make([]ContactBucket, len(contactBuckets))
	for i, b := range contactBuckets {
		o := tallies[i]
		out[i] = ContactBucket{
			Bucket:        b.name,
			Applications:  o.Total,
			ActiveRate:    Rate(o.Active+o.Offers, o.Total),
			OfferRate:     Rate(o.Offers, o.Total),
			RejectionRate: Rate(o.Rejections, o.Total),
		}
	}
	return out
}
