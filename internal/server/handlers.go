package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trellisgraph/trellis/pkg/cache"
	"github.com/trellisgraph/trellis/pkg/dot"
	"github.com/trellisgraph/trellis/pkg/graph"
	"github.com/trellisgraph/trellis/pkg/graphio"
	"github.com/trellisgraph/trellis/pkg/store"
)

// svgTTL bounds cached SVGs; records are mutable via re-upload, so entries
// keyed by content hash stay valid but unused ones should age out.
const svgTTL = 24 * time.Hour

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// loadRecord fetches the record for the {id} URL parameter, writing the
// error response itself on failure.
func (s *Server) loadRecord(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "graph not found")
		return nil, false
	}
	if err != nil {
		s.logger.Error("store get", "id", id, "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage failure")
		return nil, false
	}
	return rec, true
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("store list", "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"graphs": ids})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	doc, err := graphio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec := store.NewRecord(doc)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.logger.Error("store put", "id", rec.ID, "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}

	s.logger.Debug("stored graph", "id", rec.ID, "edges", len(rec.Edges))
	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.logger.Error("store delete", "err", err)
		s.writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	if err := dot.Write(w, rec.Graph().Compile(), rec.Name); err != nil {
		s.logger.Error("write dot", "id", rec.ID, "err", err)
	}
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	text := dot.Marshal(rec.Graph().Compile(), rec.Name)
	key := cache.RenderKey(cache.Hash([]byte(text)), "svg")

	svg, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache get", "err", err)
	}
	if !hit {
		svg, err = dot.RenderSVG(ctx, text)
		if err != nil {
			s.logger.Error("render svg", "id", rec.ID, "err", err)
			s.writeError(w, http.StatusInternalServerError, "render failure")
			return
		}
		if err := s.cache.Set(ctx, key, svg, svgTTL); err != nil {
			s.logger.Warn("cache set", "err", err)
		}
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

type traversalResponse struct {
	Order string         `json:"order"`
	Start *graph.NodeID  `json:"start,omitempty"`
	Nodes []graph.NodeID `json:"nodes"`
	Valid *bool          `json:"valid,omitempty"`
}

func (s *Server) handleTraversal(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadRecord(w, r)
	if !ok {
		return
	}
	c := rec.Graph().Compile()

	order := r.URL.Query().Get("order")
	resp := traversalResponse{Order: order, Nodes: []graph.NodeID{}}

	switch order {
	case "dfs", "bfs":
		start, err := parseStart(r.URL.Query().Get("start"))
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Start = &start
		seq := graph.DFS(c, start)
		if order == "bfs" {
			seq = graph.BFS(c, start)
		}
		for n := range seq {
			resp.Nodes = append(resp.Nodes, n)
		}
	case "topo":
		topo := graph.Topological(c)
		resp.Nodes = append(resp.Nodes, topo.Order()...)
		valid := topo.Valid()
		resp.Valid = &valid
	default:
		s.writeError(w, http.StatusBadRequest, "order must be dfs, bfs, or topo")
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func parseStart(raw string) (graph.NodeID, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, errors.New("start must be an integer in 0..65535")
	}
	return graph.NodeID(v), nil
}
