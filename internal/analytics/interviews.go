package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
)

type InterviewSummary struct {
	TotalStages                 int     `json:"totalStages"`
	ApplicationsWithInterviews  int     `json:"applicationsWithInterviews"`
	AverageStagesPerApplication float64 `json:"averageStagesPerApplication"`
	OffersAfterInterview        int     `json:"offersAfterInterview"`
	ConversionRate              float64 `json:"conversionRate"`
}

// StageOutcome tallies the current status of the applications owning a group
// of stages. Counts are per stage.
type StageOutcome struct {
	Stages      int     `json:"stages"`
	Offers      int     `json:"offers"`
	Rejections  int     `json:"rejections"`
	Active      int     `json:"active"`
	SuccessRate float64 `json:"successRate"`
}

type TypeOutcome struct {
	InterviewType domain.InterviewType `json:"interviewType"`
	StageOutcome
}

type RoundOutcome struct {
	Round int `json:"round"`
	StageOutcome
}

type FinalRound struct {
	Reached        int     `json:"reached"`
	Offers         int     `json:"offers"`
	ConversionRate float64 `json:"conversionRate"`
}

type Completion struct {
	Scheduled      int     `json:"scheduled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

type InterviewAnalytics struct {
	Summary              InterviewSummary `json:"summary"`
	RoundsToOffer        Stats            `json:"roundsToOffer"`
	DaysToFirstInterview Stats            `json:"daysToFirstInterview"`
	DaysBetweenRounds    Stats            `json:"daysBetweenRounds"`
	ByType               []TypeOutcome    `json:"byType"`
	ByRound              []RoundOutcome   `json:"byRound"`
	FinalRound           FinalRound       `json:"finalRound"`
	Completion           Completion       `json:"completion"`
}

// ComputeInterviews builds the interview report. Stages whose application is
// not in apps are ignored except for the completion rate.
func ComputeInterviews(apps []*domain.JobApplication, stages []*domain.InterviewStage) InterviewAnalytics {
	appsByID := make(map[uuid.UUID]*domain.JobApplication, len(apps))
	for _, a := range apps {
		appsByID[a.ID] = a
	}
	stagesByApp := make(map[uuid.UUID][]*domain.InterviewStage)
	for _, s := range stages {
		if _, ok := appsByID[s.JobApplicationID]; ok {
			stagesByApp[s.JobApplicationID] = append(stagesByApp[s.JobApplicationID], s)
		}
	}
	for id := range stagesByApp {
		sortStages(stagesByApp[id])
	}

	var (
		summary      InterviewSummary
		roundsToOff  []float64
		toFirst      []float64
		betweenRound []float64
		final        FinalRound
		byType       = make(map[domain.InterviewType]*StageOutcome)
		byRound      = make(map[int]*StageOutcome)
	)

	for _, a := range apps {
		st, hasStatus := a.CurrentStatus()
		isOffer := hasStatus && st.Is(domain.LabelOffer)
		own := stagesByApp[a.ID]

		if isOffer {
			roundsToOff = append(roundsToOff, float64(len(own)))
		}
		if len(own) == 0 {
			continue
		}

		summary.TotalStages += len(own)
		summary.ApplicationsWithInterviews++
		if isOffer {
			summary.OffersAfterInterview++
		}

		if first := firstScheduled(own); first != nil {
			toFirst = append(toFirst, max(days(first.Sub(a.ApplicationDate)), 0))
		}
		betweenRound = append(betweenRound, gapsBetweenRounds(own)...)

		reachedFinal := false
		for _, s := range own {
			tallyStage(byType, s.InterviewType, a)
			tallyStage(byRound, s.Round, a)
			if s.IsFinalRound {
				reachedFinal = true
			}
		}
		if reachedFinal {
			final.Reached++
			if isOffer {
				final.Offers++
			}
		}
	}

	if summary.ApplicationsWithInterviews > 0 {
		summary.AverageStagesPerApplication = float64(summary.TotalStages) / float64(summary.ApplicationsWithInterviews)
	}
	summary.ConversionRate = Rate(summary.OffersAfterInterview, summary.ApplicationsWithInterviews)
	final.ConversionRate = Rate(final.Offers, final.Reached)

	types := make([]TypeOutcome, 0, len(byType))
	for t, o := range byType {
		o.SuccessRate = SuccessRate(o.Offers, o.Rejections)
		types = append(types, TypeOutcome{InterviewType: t, StageOutcome: *o})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Stages != types[j].Stages {
			return types[i].Stages > types[j].Stages
		}
		return types[i].InterviewType < types[j].InterviewType
	})

	rounds := make([]RoundOutcome, 0, len(byRound))
	for r, o := range byRound {
		o.SuccessRate = SuccessRate(o.Offers, o.Rejections)
		rounds = append(rounds, RoundOutcome{Round: r, StageOutcome: *o})
	}
	sort.Slice(rounds, func(i, j int) bool { return rounds[i].Round < rounds[j].Round })

	return InterviewAnalytics{
		Summary:              summary,
		RoundsToOffer:        Summarize(roundsToOff),
		DaysToFirstInterview: Summarize(toFirst),
		DaysBetweenRounds:    Summarize(betweenRound),
		ByType:               types,
		ByRound:              rounds,
		FinalRound:           final,
		Completion:           completion(stages),
	}
}

func tallyStage[K comparable](m map[K]*StageOutcome, k K, a *domain.JobApplication) {
	o := m[k]
	if o == nil {
		o = &StageOutcome{}
		m[k] = o
	}
	o.Stages++
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

// sortStages orders by round, then scheduled date with unscheduled stages last.
func sortStages(ss []*domain.InterviewStage) {
	sort.SliceStable(ss, func(i, j int) bool {
		if ss[i].Round != ss[j].Round {
			return ss[i].Round < ss[j].Round
		}
		a, b := ss[i].ScheduledDate, ss[j].ScheduledDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.Before(*b)
	})
}

func firstScheduled(ss []*domain.InterviewStage) *time.Time {
	var first *time.Time
	for _, s := range ss {
		if s.ScheduledDate == nil || s.ScheduledDate.IsZero() {
			continue
		}
		if first == nil || s.ScheduledDate.Before(*first) {
			first = s.ScheduledDate
		}
	}
	return first
}

// gapsBetweenRounds returns day gaps between consecutive scheduled stages in
// round order. Stages without a date are skipped.
func gapsBetweenRounds(ordered []*domain.InterviewStage) []float64 {
	var (
		gaps []float64
		prev *time.Time
	)
	for _, s := range ordered {
		if s.ScheduledDate == nil || s.ScheduledDate.IsZero() {
			continue
		}
		if prev != nil {
			gaps = append(gaps, max(days(s.ScheduledDate.Sub(*prev)), 0))
		}
		prev = s.ScheduledDate
	}
	return gaps
}

// completion is completed / scheduled over stages with a scheduled date.
func completion(stages []*domain.InterviewStage) Completion {
	var c Completion
	for _, s := range stages {
		if s.ScheduledDate == nil {
			continue
		}
		c.Scheduled++
		if s.CompletedDate != nil {
			c.Completed++
		}
	}
	c.CompletionRate = Rate(c.Completed, c.Scheduled)
	return c
}
