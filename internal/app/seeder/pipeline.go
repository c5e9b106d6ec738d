// Package seeder loads tracker data from a YAML fixture through the regular
// services, so every record passes the same validation as one created over
// HTTP.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/graffhyrum/jobAppTracker-sub000/internal/domain"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/application"
	"github.com/graffhyrum/jobAppTracker-sub000/internal/service/interview"
)

// allPhases defines the canonical execution order. Boards go before
// applications so posting URLs attach to them.
var allPhases = []string{"pipeline", "boards", "applications", "contacts", "interviews"}

// Phases returns the phase names in execution order.
func Phases() []string {
	return append([]string(nil), allPhases...)
}

type pipelineService interface {
	Get(ctx context.Context) (domain.PipelineConfig, error)
	AddLabel(ctx context.Context, category, label string) (domain.PipelineConfig, error)
}

type boardService interface {
	Create(ctx context.Context, in domain.JobBoardInput) (*domain.JobBoard, error)
}

type applicationService interface {
	List(ctx context.Context, filter domain.ApplicationFilter) ([]*domain.JobApplication, error)
	Create(ctx context.Context, in domain.JobApplicationInput) (*domain.JobApplication, error)
	SetStatus(ctx context.Context, input application.SetStatusInput) (*domain.JobApplication, error)
	AddNote(ctx context.Context, input application.NoteInput) (*domain.Note, error)
}

type contactService interface {
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.Contact, error)
	Create(ctx context.Context, in domain.ContactInput) (*domain.Contact, error)
}

type interviewService interface {
	ListByApplication(ctx context.Context, appID uuid.UUID) ([]*domain.InterviewStage, error)
	Create(ctx context.Context, in domain.InterviewStageInput) (*domain.InterviewStage, error)
	AddQuestion(ctx context.Context, in interview.QuestionInput) (*domain.InterviewStage, error)
}

// Services are the use cases the pipeline writes through.
type Services struct {
	Pipeline     pipelineService
	Boards       boardService
	Applications applicationService
	Contacts     contactService
	Interviews   interviewService
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline loads one fixture phase by phase.
type Pipeline struct {
	log     *slog.Logger
	svc     Services
	cfg     Config
	fx      *Fixture
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, svc Services, cfg Config, fx *Fixture) *Pipeline {
	return &Pipeline{
		log:     log.With("component", "seeder"),
		svc:     svc,
		cfg:     cfg,
		fx:      fx,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. Unknown phase names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.InfoContext(ctx, "starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case "pipeline":
			result = p.runPipeline(ctx)
		case "boards":
			result = p.runBoards(ctx)
		case "applications":
			result = p.runApplications(ctx)
		case "contacts":
			result = p.runContacts(ctx)
		case "interviews":
			result = p.runInterviews(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.WarnContext(ctx, "phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.InfoContext(ctx, "phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.InfoContext(ctx, "pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[strings.TrimSpace(ph)] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
			delete(filter, ph)
		}
	}
	for ph := range filter {
		return nil, fmt.Errorf("unknown phase %q", ph)
	}
	return out, nil
}

// runPipeline adds fixture labels missing from the current configuration.
func (p *Pipeline) runPipeline(ctx context.Context) PhaseResult {
	cfg, err := p.svc.Pipeline.Get(ctx)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("get pipeline: %w", err)}
	}

	var result PhaseResult
	add := func(cat domain.StatusCategory, labels []string) error {
		for _, label := range labels {
			if _, ok := cfg.CategoryOf(label); ok || p.cfg.DryRun {
				result.Skipped++
				continue
			}
			next, err := p.svc.Pipeline.AddLabel(ctx, cat.String(), label)
			if err != nil {
				if p.itemFailed(ctx, &result, "pipeline", label, err) {
					continue
				}
				return fmt.Errorf("add label %q: %w", label, err)
			}
			cfg = next
			result.Inserted++
		}
		return nil
	}

	if err := add(domain.StatusCategoryActive, p.fx.Pipeline.Active); err != nil {
		result.Err = err
		return result
	}
	if err := add(domain.StatusCategoryInactive, p.fx.Pipeline.Inactive); err != nil {
		result.Err = err
	}
	return result
}

func (p *Pipeline) runBoards(ctx context.Context) PhaseResult {
	var result PhaseResult
	if p.cfg.DryRun {
		result.Skipped = len(p.fx.Boards)
		return result
	}

	for _, b := range p.fx.Boards {
		_, err := p.svc.Boards.Create(ctx, domain.JobBoardInput{
			Name:       b.Name,
			RootDomain: b.RootDomain,
			Domains:    b.Domains,
		})
		if err != nil {
			if p.itemFailed(ctx, &result, "boards", b.Name, err) {
				continue
			}
			result.Err = fmt.Errorf("create board %q: %w", b.Name, err)
			return result
		}
		result.Inserted++
	}
	return result
}

// runApplications creates applications not yet tracked (by company and
// position), then replays their status changes and notes.
func (p *Pipeline) runApplications(ctx context.Context) PhaseResult {
	var result PhaseResult
	if p.cfg.DryRun {
		result.Skipped = len(p.fx.Applications)
		return result
	}

	existing, err := p.applicationIDs(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}

	for _, a := range p.fx.Applications {
		if _, ok := existing[a.key()]; ok {
			result.Skipped++
			continue
		}

		created, err := p.svc.Applications.Create(ctx, domain.JobApplicationInput{
			Company:         a.Company,
			PositionTitle:   a.Position,
			ApplicationDate: a.AppliedOn,
			InterestRating:  a.Interest,
			NextEventDate:   a.NextEvent,
			JobPostingURL:   a.URL,
			JobDescription:  a.Description,
			SourceType:      a.Source,
		})
		if err != nil {
			if p.itemFailed(ctx, &result, "applications", a.Company, err) {
				continue
			}
			result.Err = fmt.Errorf("create application %q: %w", a.Company, err)
			return result
		}
		existing[a.key()] = created.ID
		result.Inserted++

		if err := p.replayHistory(ctx, created, a); err != nil {
			if p.itemFailed(ctx, &result, "applications", a.Company, err) {
				continue
			}
			result.Err = fmt.Errorf("application %q history: %w", a.Company, err)
			return result
		}
	}
	return result
}

func (p *Pipeline) replayHistory(ctx context.Context, app *domain.JobApplication, a ApplicationFixture) error {
	for _, st := range a.Statuses {
		if cur, ok := app.CurrentStatus(); ok && cur.Is(st.Label) {
			continue
		}
		in := application.SetStatusInput{ID: app.ID, Category: st.Category, Label: st.Label}
		if st.Note != "" {
			note := st.Note
			in.Note = &note
		}
		next, err := p.svc.Applications.SetStatus(ctx, in)
		if err != nil {
			return fmt.Errorf("set status %q: %w", st.Label, err)
		}
		app = next
	}

	for _, n := range a.Notes {
		if _, err := p.svc.Applications.AddNote(ctx, application.NoteInput{ApplicationID: app.ID, Content: n}); err != nil {
			return fmt.Errorf("add note: %w", err)
		}
	}
	return nil
}

// runContacts adds contacts to tracked applications, skipping names the
// application already has.
func (p *Pipeline) runContacts(ctx context.Context) PhaseResult {
	var result PhaseResult
	if p.cfg.DryRun {
		for _, a := range p.fx.Applications {
			result.Skipped += len(a.Contacts)
		}
		return result
	}

	ids, err := p.applicationIDs(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}

	for _, a := range p.fx.Applications {
		if len(a.Contacts) == 0 {
			continue
		}
		appID, ok := ids[a.key()]
		if !ok {
			result.Skipped += len(a.Contacts)
			continue
		}

		have, err := p.svc.Contacts.ListByApplication(ctx, appID)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("list contacts: %w", err)}
		}
		names := make(map[string]struct{}, len(have))
		for _, c := range have {
			names[strings.ToLower(c.Name)] = struct{}{}
		}

		for _, c := range a.Contacts {
			if _, dup := names[strings.ToLower(strings.TrimSpace(c.Name))]; dup {
				result.Skipped++
				continue
			}
			_, err := p.svc.Contacts.Create(ctx, domain.ContactInput{
				JobApplicationID: appID,
				Name:             c.Name,
				Email:            c.Email,
				LinkedIn:         c.LinkedIn,
				Role:             c.Role,
				Channel:          c.Channel,
				OutreachDate:     c.OutreachDate,
				ResponseReceived: c.Responded,
				Notes:            c.Notes,
			})
			if err != nil {
				if p.itemFailed(ctx, &result, "contacts", c.Name, err) {
					continue
				}
				result.Err = fmt.Errorf("create contact %q: %w", c.Name, err)
				return result
			}
			result.Inserted++
		}
	}
	return result
}

// runInterviews adds stages to tracked applications, skipping a stage when
// one with the same round and type exists.
func (p *Pipeline) runInterviews(ctx context.Context) PhaseResult {
	var result PhaseResult
	if p.cfg.DryRun {
		for _, a := range p.fx.Applications {
			result.Skipped += len(a.Interviews)
		}
		return result
	}

	ids, err := p.applicationIDs(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}

	for _, a := range p.fx.Applications {
		if len(a.Interviews) == 0 {
			continue
		}
		appID, ok := ids[a.key()]
		if !ok {
			result.Skipped += len(a.Interviews)
			continue
		}

		have, err := p.svc.Interviews.ListByApplication(ctx, appID)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("list interview stages: %w", err)}
		}

		for _, iv := range a.Interviews {
			if hasStage(have, iv) {
				result.Skipped++
				continue
			}
			if err := p.createStage(ctx, appID, iv); err != nil {
				if p.itemFailed(ctx, &result, "interviews", a.Company, err) {
					continue
				}
				result.Err = fmt.Errorf("create interview stage for %q: %w", a.Company, err)
				return result
			}
			result.Inserted++
		}
	}
	return result
}

func (p *Pipeline) createStage(ctx context.Context, appID uuid.UUID, iv InterviewFixture) error {
	stage, err := p.svc.Interviews.Create(ctx, domain.InterviewStageInput{
		JobApplicationID: appID,
		Round:            iv.Round,
		InterviewType:    iv.Type,
		IsFinalRound:     iv.Final,
		ScheduledDate:    iv.Scheduled,
		CompletedDate:    iv.Completed,
		Notes:            iv.Notes,
	})
	if err != nil {
		return err
	}

	for _, q := range iv.Questions {
		title, answer := q.Title, q.Answer
		in := interview.QuestionInput{StageID: stage.ID, Title: &title}
		if answer != "" {
			in.Answer = &answer
		}
		if _, err := p.svc.Interviews.AddQuestion(ctx, in); err != nil {
			return fmt.Errorf("add question: %w", err)
		}
	}
	return nil
}

func hasStage(have []*domain.InterviewStage, iv InterviewFixture) bool {
	for _, s := range have {
		if s.Round == iv.Round && strings.EqualFold(string(s.InterviewType), strings.TrimSpace(iv.Type)) {
			return true
		}
	}
	return false
}

// applicationIDs maps tracked applications by company and position.
func (p *Pipeline) applicationIDs(ctx context.Context) (map[string]uuid.UUID, error) {
	apps, err := p.svc.Applications.List(ctx, domain.ApplicationFilter{})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	ids := make(map[string]uuid.UUID, len(apps))
	for _, a := range apps {
		ids[appKey(a.Company, a.PositionTitle)] = a.ID
	}
	return ids, nil
}

// itemFailed records a per-record failure. It returns false for errors that
// should stop the phase.
func (p *Pipeline) itemFailed(ctx context.Context, result *PhaseResult, phase, item string, err error) bool {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		result.Skipped++
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		result.Errors++
		p.log.WarnContext(ctx, "record rejected",
			slog.String("phase", phase),
			slog.String("item", item),
			slog.String("error", err.Error()),
		)
	default:
		return false
	}
	return true
}
