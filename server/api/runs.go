// Package api provides the read-only HTTP API over a run-history store:
// GET /runs, GET /runs/{id}, and GET /runs/{id}/tree.
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dekarrin/mimic/internal/runstore"
	"github.com/dekarrin/mimic/server/result"
	"github.com/dekarrin/mimic/server/serr"
)

// PathPrefix is the prefix all of this API's routes are mounted under.
const PathPrefix = "/api/v1"

// API holds the store backing every handler.
type API struct {
	Store *runstore.Store
}

func requireIDParam(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return uuid.UUID{}, serr.New("missing id parameter", serr.ErrBadArgument)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.UUID{}, serr.New("id is not a valid run ID", serr.ErrBadArgument)
	}
	return id, nil
}

type runSummary struct {
	ID         string `json:"id"`
	SourceHash string `json:"source_hash"`
	Clean      bool   `json:"clean"`
	Created    string `json:"created"`
}

func toSummary(r runstore.Run) runSummary {
	return runSummary{
		ID:         r.ID.String(),
		SourceHash: r.SourceHash,
		Clean:      r.Clean,
		Created:    r.Created.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ListRuns handles GET /runs.
func (a *API) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := a.Store.List(r.Context())
	if err != nil {
		result.InternalServerError(err.Error()).WriteResponse(w)
		return
	}

	summaries := make([]runSummary, len(runs))
	for i, run := range runs {
		summaries[i] = toSummary(run)
	}

	result.OK(summaries).WriteResponse(w)
}

type runDetail struct {
	runSummary
	Diagnostics []string `json:"diagnostics"`
}

// GetRun handles GET /runs/{id}.
func (a *API) GetRun(w http.ResponseWriter, r *http.Request) {
	id, err := requireIDParam(r)
	if err != nil {
		result.BadRequest(err.Error()).WriteResponse(w)
		return
	}

	run, err := a.Store.Get(r.Context(), id)
	if errors.Is(err, runstore.ErrNotFound) {
		result.NotFound().WriteResponse(w)
		return
	} else if err != nil {
		result.InternalServerError(err.Error()).WriteResponse(w)
		return
	}

	diags := make([]string, len(run.Diagnostics))
	for i, d := range run.Diagnostics {
		diags[i] = d.String()
	}

	result.OK(runDetail{runSummary: toSummary(run), Diagnostics: diags}).WriteResponse(w)
}

// GetRunTree handles GET /runs/{id}/tree, serving the stored parse-tree dump
// as plain text.
func (a *API) GetRunTree(w http.ResponseWriter, r *http.Request) {
	id, err := requireIDParam(r)
	if err != nil {
		result.BadRequest(err.Error()).WriteResponse(w)
		return
	}

	run, err := a.Store.Get(r.Context(), id)
	if errors.Is(err, runstore.ErrNotFound) {
		result.NotFound().WriteResponse(w)
		return
	} else if err != nil {
		result.InternalServerError(err.Error()).WriteResponse(w)
		return
	}

	if run.TreeText == "" {
		result.NotFound("run had no parse tree (syntax errors prevented a tree from being recorded)").WriteResponse(w)
		return
	}

	result.OKText(run.TreeText).WriteResponse(w)
}
