package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobBoard is a site applications are discovered on, identified by domain.
type JobBoard struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	RootDomain string    `json:"rootDomain"`
	Domains    []string  `json:"domains"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type JobBoardInput struct {
	Name       string
	RootDomain string
	Domains    []string
}

type JobBoardPatch struct {
	Name       *string
	RootDomain *string
	Domains    *[]string
}

// NewJobBoard validates input and builds a board. The root domain is always a
// member of Domains.
func NewJobBoard(id uuid.UUID, in JobBoardInput, now time.Time) (*JobBoard, error) {
	var errs fieldErrors

	if id == uuid.Nil {
		errs.add("id", "required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs.add("name", "required")
	}
	root := NormalizeDomain(in.RootDomain)
	if root == "" {
		errs.add("root_domain", "must be a domain or URL")
	}
	domains := normalizeDomains(&errs, in.Domains)

	if err := errs.err(); err != nil {
		return nil, err
	}

	ts := Truncate(now)
	return &JobBoard{
		ID:         id,
		Name:       name,
		RootDomain: root,
		Domains:    domainSet(append(domains, root)),
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}, nil
}

// Update merges patch over the board.
func (b *JobBoard) Update(p JobBoardPatch, now time.Time) error {
	var errs fieldErrors
	next := *b

	if p.Name != nil {
		if n := strings.TrimSpace(*p.Name); n == "" {
			errs.add("name", "required")
		} else {
			next.Name = n
		}
	}
	if p.RootDomain != nil {
		if root := NormalizeDomain(*p.RootDomain); root == "" {
			errs.add("root_domain", "must be a domain or URL")
		} else {
			next.RootDomain = root
		}
	}
	var domains []string
	if p.Domains != nil {
		domains = normalizeDomains(&errs, *p.Domains)
	} else {
		// a replaced root leaves the set
		for _, d := range b.Domains {
			if d != b.RootDomain || next.RootDomain == b.RootDomain {
				domains = append(domains, d)
			}
		}
	}

	if err := errs.err(); err != nil {
		return err
	}

	next.Domains = domainSet(append(domains, next.RootDomain))
	next.UpdatedAt = NextTimestamp(b.UpdatedAt, now)
	*b = next
	return nil
}

// AddDomain adds a domain to the set. It reports whether the set changed.
func (b *JobBoard) AddDomain(raw string, now time.Time) (bool, error) {
	d := NormalizeDomain(raw)
	if d == "" {
		return false, NewValidationError("domain", "must be a domain or URL")
	}
	for _, existing := range b.Domains {
		if existing == d {
			return false, nil
		}
	}
	b.Domains = domainSet(append(b.Domains, d))
	b.UpdatedAt = NextTimestamp(b.UpdatedAt, now)
	return true, nil
}

// Matches reports whether raw (a URL or host) belongs to this board: it equals
// or is a subdomain of the root or any listed domain.
func (b *JobBoard) Matches(raw string) bool {
	d := NormalizeDomain(raw)
	if d == "" {
		return false
	}
	if domainMatches(d, b.RootDomain) {
		return true
	}
	for _, known := range b.Domains {
		if domainMatches(d, known) {
			return true
		}
	}
	return false
}

// Overlaps reports whether any domain of other is claimed by b.
func (b *JobBoard) Overlaps(other *JobBoard) bool {
	if b.Matches(other.RootDomain) || other.Matches(b.RootDomain) {
		return true
	}
	for _, d := range other.Domains {
		if b.Matches(d) {
			return true
		}
	}
	for _, d := range b.Domains {
		if other.Matches(d) {
			return true
		}
	}
	return false
}

func (b *JobBoard) Clone() *JobBoard {
	out := *b
	out.Domains = append([]string(nil), b.Domains...)
	return &out
}

func domainMatches(d, known string) bool {
	return d == known || strings.HasSuffix(d, "."+known)
}

func normalizeDomains(errs *fieldErrors, raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		d := NormalizeDomain(r)
		if d == "" {
			errs.add("domains", "invalid domain "+r)
			continue
		}
		out = append(out, d)
	}
	return out
}

// domainSet de-duplicates and sorts.
func domainSet(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
