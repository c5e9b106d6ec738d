package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type ApplicationsSummary struct {
	TotalApplications     int     `json:"totalApplications"`
	ActiveApplications    int     `json:"activeApplications"`
	InactiveApplications  int     `json:"inactiveApplications"`
	OffersReceived        int     `json:"offersReceived"`
	Rejections            int     `json:"rejections"`
	OverdueApplications   int     `json:"overdueApplications"`
	AverageInterestRating float64 `json:"averageInterestRating"`
}

type StatusCount struct {
	Label      string                `json:"label"`
	Category   domain.StatusCategory `json:"category"`
	Count      int                   `json:"count"`
	Percentage float64               `json:"percentage"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type SourceEffectiveness struct {
	Source      domain.SourceType `json:"source"`
	Total       int               `json:"total"`
	Offers      int               `json:"offers"`
	Rejections  int               `json:"rejections"`
	Active      int               `json:"active"`
	SuccessRate float64           `json:"successRate"`
}

// StatusDuration reports how long applications stayed in a status, in days.
type StatusDuration struct {
	Label string `json:"label"`
	Stats
}

type InterestCorrelation struct {
	Rating      int     `json:"rating"`
	Total       int     `json:"total"`
	Offers      int     `json:"offers"`
	Rejections  int     `json:"rejections"`
	SuccessRate float64 `json:"successRate"`
}

// ResponseRate.ResponseRate is a percentage in [0,100], like StatusCount.Percentage.
type ResponseRate struct {
	Total        int     `json:"total"`
	Responded    int     `json:"responded"`
	NoResponse   int     `json:"noResponse"`
	ResponseRate float64 `json:"responseRate"`
}

type ApplicationsAnalytics struct {
	Summary             ApplicationsSummary   `json:"summary"`
	StatusDistribution  []StatusCount         `json:"statusDistribution"`
	ApplicationsByDate  []DateCount           `json:"applicationsByDate"`
	SourceEffectiveness []SourceEffectiveness `json:"sourceEffectiveness"`
	TimeInStatus        []StatusDuration      `json:"timeInStatus"`
	InterestCorrelation []InterestCorrelation `json:"interestCorrelation"`
	ResponseRate        ResponseRate          `json:"responseRate"`
}

// ComputeApplications builds the application report. now closes the
// still-open final status of each log and decides overdue events.
func ComputeApplications(apps []*domain.JobApplication, now time.Time) ApplicationsAnalytics {
	return ApplicationsAnalytics{
		Summary:             applicationsSummary(apps, now),
		StatusDistribution:  statusDistribution(apps),
		ApplicationsByDate:  applicationsByDate(apps),
		SourceEffectiveness: sourceEffectiveness(apps),
		TimeInStatus:        timeInStatus(apps, now),
		InterestCorrelation: interestCorrelation(apps),
		ResponseRate:        responseRate(apps),
	}
}

func applicationsSummary(apps []*domain.JobApplication, now time.Time) ApplicationsSummary {
	s := ApplicationsSummary{TotalApplications: len(apps)}
	var ratings []float64

	for _, a := range apps {
		if st, ok := a.CurrentStatus(); ok {
			switch st.Category {
			case domain.StatusCategoryActive:
				s.ActiveApplications++
			case domain.StatusCategoryInactive:
				s.InactiveApplications++
			}
			if st.Is(domain.LabelOffer) {
				s.OffersReceived++
			}
			if st.Is(domain.LabelRejected) {
				s.Rejections++
			}
		}
		if a.IsOverdue(now) {
			s.OverdueApplications++
		}
		if a.InterestRating != nil {
			ratings = append(ratings, float64(*a.InterestRating))
		}
	}

	s.AverageInterestRating = Average(ratings)
	return s
}

func statusDistribution(apps []*domain.JobApplication) []StatusCount {
	type key struct {
		label string
		cat   domain.StatusCategory
	}
	counts := make(map[key]int)
	total := 0
	for _, a := range apps {
		st, ok := a.CurrentStatus()
		if !ok {
			continue
		}
		counts[key{strings.ToLower(st.Label), st.Category}]++
		total++
	}

	out := make([]StatusCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, StatusCount{
			Label:      k.label,
			Category:   k.cat,
			Count:      n,
			Percentage: Rate(n, total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func applicationsByDate(apps []*domain.JobApplication) []DateCount {
	counts := make(map[string]int)
	for _, a := range apps {
		counts[domain.DayOf(a.ApplicationDate)]++
	}
	out := make([]DateCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DateCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func sourceEffectiveness(apps []*domain.JobApplication) []SourceEffectiveness {
	bySource := make(map[domain.SourceType]*outcome)
	for _, a := range apps {
		src := a.SourceType
		if src == "" {
			src = domain.SourceOther
		}
		o := bySource[src]
		if o == nil {
			o = &outcome{}
			bySource[src] = o
		}
		o.add(a)
	}

	out := make([]SourceEffectiveness, 0, len(bySource))
	for src, o := range bySource {
		out = append(out, SourceEffectiveness{
			Source:      src,
			Total:       o.Total,
			Offers:      o.Offers,
			Rejections:  o.Rejections,
			Active:      o.Active,
			SuccessRate: SuccessRate(o.Offers, o.Rejections),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Source < out[j].Source
	})
	return out
}

// timeInStatus measures each log entry from its timestamp to the next entry,
// or to now for the final entry.
func timeInStatus(apps []*domain.JobApplication, now time.Time) []StatusDuration {
	samples := make(map[string][]float64)
	for _, a := range apps {
		log := a.StatusLog
		for i, e := range log {
			end := now
			if i+1 < len(log) {
				end = log[i+1].Timestamp
			}
			d := max(days(end.Sub(e.Timestamp)), 0)
			label := strings.ToLower(e.Status.Label)
			samples[label] = append(samples[label], d)
		}
	}

	out := make([]StatusDuration, 0, len(samples))
	for label, xs := range samples {
		out = append(out, StatusDuration{Label: label, Stats: Summarize(xs)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// interestCorrelation always reports ratings 1..3; unrated applications are
// excluded.
func interestCorrelation(apps []*domain.JobApplication) []InterestCorrelation {
	var byRating [domain.MaxInterestRating + 1]outcome
	for _, a := range apps {
		if a.InterestRating == nil {
			continue
		}
		r := *a.InterestRating
		if r < domain.MinInterestRating || r > domain.MaxInterestRating {
			continue
		}
		byRating[r].add(a)
	}

	out := make([]InterestCorrelation, 0, domain.MaxInterestRating)
	for r := domain.MinInterestRating; r <= domain.MaxInterestRating; r++ {
		o := byRating[r]
		if o.Total == 0 {
			continue
		}
		out = append(out, InterestCorrelation{
			Rating:      r,
			Total:       o.Total,
			Offers:      o.Offers,
			Rejections:  o.Rejections,
			SuccessRate: SuccessRate(o.Offers, o.Rejections),
		})
	}
	return out
}

func responseRate(apps []*domain.JobApplication) ResponseRate {
	rr := ResponseRate{Total: len(apps)}
	for _, a := range apps {
		if st, ok := a.CurrentStatus(); ok && st.Is(domain.LabelNoResponse) {
			rr.NoResponse++
		}
	}
	rr.Responded = rr.Total - rr.NoResponse
	rr.ResponseRate = Rate(rr.Responded, rr.Total) * 100
	return rr
}

func (o *outcome) add(a *domain.JobApplication) {
	o.Total++
	st, ok := a.CurrentStatus()
	if !ok {
		return
	}
	switch {
	case st.Is(domain.LabelOffer):
		o.Offers++
	case st.Is(domain.LabelRejected):
		o.Rejections++
	case st.Category == domain.StatusCategoryActive:
		o.Active++
	}
}
