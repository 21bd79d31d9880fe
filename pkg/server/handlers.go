package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/adjcode/pkg/buildinfo"
	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/pipeline"
)

// FormatInfo describes one supported format.
type FormatInfo struct {
	Name   string `json:"name"`
	Header string `json:"header"`
	Signed bool   `json:"signed"`
	Dedup  bool   `json:"dedup"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Current())
}

func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	out := make([]FormatInfo, 0, len(graphcode.Formats))
	for _, f := range graphcode.Formats {
		out = append(out, FormatInfo{Name: f.String(), Header: f.Magic(), Signed: f.Signed(), Dedup: f.Dedup()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	f, err := graphcode.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts := pipeline.EncodeOptions{Format: f}
	if opts.ZeroBased, err = queryBool(r, "zero_based"); err != nil {
		s.failWith(w, r, http.StatusBadRequest, err)
		return
	}
	if opts.Strict, err = queryBool(r, "strict"); err != nil {
		s.failWith(w, r, http.StatusBadRequest, err)
		return
	}

	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, hit, err := s.runner.EncodeBytes(r.Context(), body, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeBytes(w, "application/octet-stream", hit, data)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.DecodeOptions
	var err error
	if name := r.URL.Query().Get("format"); name != "" {
		if opts.Format, err = graphcode.ParseFormat(name); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	if opts.ZeroBased, err = queryBool(r, "zero_based"); err != nil {
		s.failWith(w, r, http.StatusBadRequest, err)
		return
	}
	if opts.Classic, err = queryBool(r, "classic"); err != nil {
		s.failWith(w, r, http.StatusBadRequest, err)
		return
	}

	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, hit, err := s.runner.DecodeBytes(r.Context(), body, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeBytes(w, "text/plain; charset=utf-8", hit, data)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.RenderOptions{Output: q.Get("output"), Engine: q.Get("engine")}
	if opts.Output == "" {
		opts.Output = pipeline.FormatSVG
	}
	if opts.Output != pipeline.FormatSVG && opts.Output != pipeline.FormatDOT {
		s.failWith(w, r, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidFormat, "output must be svg or dot, got %q", opts.Output))
		return
	}

	var err error
	if opts.ZeroBased, err = queryBool(r, "zero_based"); err != nil {
		s.failWith(w, r, http.StatusBadRequest, err)
		return
	}
	if opts.Classic, err = queryBool(r, "classic"); err != nil {
		s.failWith(w, r, http.StatusBadRequest, err)
		return
	}
	opts.Graph = 1
	if v := q.Get("graph"); v != "" {
		if opts.Graph, err = strconv.Atoi(v); err != nil || opts.Graph < 1 {
			s.failWith(w, r, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "graph must be a positive integer, got %q", v))
			return
		}
	}

	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var data []byte
	_, err = s.runner.Render(r.Context(), bytes.NewReader(body), opts, func(a pipeline.Artifact) error {
		data = a.Data
		return nil
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if data == nil {
		s.failWith(w, r, http.StatusNotFound, errors.New(errors.ErrCodeInvalidInput, "stream has fewer than %d graphs", opts.Graph))
		return
	}

	contentType := "image/svg+xml"
	if opts.Output == pipeline.FormatDOT {
		contentType = "text/vnd.graphviz; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return body, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s must be a boolean, got %q", name, v)
	}
	return b, nil
}
