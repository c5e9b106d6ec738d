package rest

import "net/http"

// Handlers groups the JSON API handlers mounted by Register. A nil handler
// leaves its routes unmounted.
type Handlers struct {
	Health       *HealthHandler
	Applications *ApplicationHandler
	Contacts     *ContactHandler
	Interviews   *InterviewHandler
	JobBoards    *JobBoardHandler
	Pipeline     *PipelineHandler
	Analytics    *AnalyticsHandler
}

// Register mounts every API route on mux.
func (h Handlers) Register(mux *http.ServeMux) {
	if hh := h.Health; hh != nil {
		mux.HandleFunc("GET /live", hh.Live)
		mux.HandleFunc("GET /ready", hh.Ready)
		mux.HandleFunc("GET /health", hh.Health)
	}

	if a := h.Applications; a != nil {
		mux.HandleFunc("GET /api/applications", a.List)
		mux.HandleFunc("POST /api/applications", a.Create)
		mux.HandleFunc("GET /api/applications/overdue", a.ListOverdue)
		mux.HandleFunc("GET /api/applications/{id}", a.Get)
		mux.HandleFunc("PATCH /api/applications/{id}", a.Update)
		mux.HandleFunc("DELETE /api/applications/{id}", a.Delete)
		mux.HandleFunc("POST /api/applications/{id}/status", a.SetStatus)
		mux.HandleFunc("POST /api/applications/{id}/notes", a.AddNote)
		mux.HandleFunc("PATCH /api/applications/{id}/notes/{noteId}", a.EditNote)
		mux.HandleFunc("DELETE /api/applications/{id}/notes/{noteId}", a.RemoveNote)
	}

	if c := h.Contacts; c != nil {
		mux.HandleFunc("GET /api/contacts", c.List)
		mux.HandleFunc("POST /api/contacts", c.Create)
		mux.HandleFunc("GET /api/contacts/{id}", c.Get)
		mux.HandleFunc("PATCH /api/contacts/{id}", c.Update)
		mux.HandleFunc("DELETE /api/contacts/{id}", c.Delete)
		mux.HandleFunc("GET /api/applications/{id}/contacts", c.ListByApplication)
	}

	if i := h.Interviews; i != nil {
		mux.HandleFunc("GET /api/interviews", i.List)
		mux.HandleFunc("POST /api/interviews", i.Create)
		mux.HandleFunc("GET /api/interviews/{id}", i.Get)
		mux.HandleFunc("PATCH /api/interviews/{id}", i.Update)
		mux.HandleFunc("DELETE /api/interviews/{id}", i.Delete)
		mux.HandleFunc("POST /api/interviews/{id}/questions", i.AddQuestion)
		mux.HandleFunc("PATCH /api/interviews/{id}/questions/{questionId}", i.UpdateQuestion)
		mux.HandleFunc("DELETE /api/interviews/{id}/questions/{questionId}", i.RemoveQuestion)
		mux.HandleFunc("GET /api/applications/{id}/interviews", i.ListByApplication)
	}

	if b := h.JobBoards; b != nil {
		mux.HandleFunc("GET /api/job-boards", b.List)
		mux.HandleFunc("POST /api/job-boards", b.Create)
		mux.HandleFunc("GET /api/job-boards/lookup", b.Lookup)
		mux.HandleFunc("POST /api/job-boards/lookup", b.FindOrCreate)
		mux.HandleFunc("GET /api/job-boards/{id}", b.Get)
		mux.HandleFunc("PATCH /api/job-boards/{id}", b.Update)
		mux.HandleFunc("DELETE /api/job-boards/{id}", b.Delete)
		mux.HandleFunc("POST /api/job-boards/{id}/domains", b.AddDomain)
	}

	if p := h.Pipeline; p != nil {
		mux.HandleFunc("GET /api/pipeline", p.Get)
		mux.HandleFunc("POST /api/pipeline/labels", p.AddLabel)
		mux.HandleFunc("DELETE /api/pipeline/labels/{category}/{label}", p.RemoveLabel)
		mux.HandleFunc("POST /api/pipeline/reset", p.Reset)
	}

	if an := h.Analytics; an != nil {
		mux.HandleFunc("GET /api/analytics", an.Get)
	}
}
