//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package report exposes generated test plans over HTTP. The server
// lists the documents in the output directory and renders each one in a
// browser friendly way, so a QA team can review a plan without pulling
// files off the box that generated it.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/yuin/goldmark"

	"trpc.group/trpc-go/trpc-agent-go/log"
)

// Server serves plan documents from a single directory.
type Server struct {
	dir     string
	origins []string
	router  *mux.Router
}

// Option configures the server.
type Option func(*Server)

// WithAllowedOrigins restricts CORS to the given origins. The default
// allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// New creates a report server over dir. The directory does not need to
// exist yet; an empty listing is served until the first plan is written.
func New(dir string, opts ...Option) *Server {
	s := &Server{
		dir:     dir,
		origins: []string{"*"},
		router:  mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Length", "Content-Type"},
	})
	s.router.Use(c.Handler)
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Infof("report server listening on %s, serving %s", addr, s.dir)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/plans", s.handleListPlans).Methods(http.MethodGet)
	s.router.HandleFunc("/plans/{name}", s.handleGetPlan).Methods(http.MethodGet)
}

// planInfo is one entry in the /plans listing.
type planInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Format   string    `json:"format"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	log.Debugf("handleListPlans called: path=%s", r.URL.Path)
	entries, err := os.ReadDir(s.dir)
	if err != nil && !os.IsNotExist(err) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Cannot read plan directory"))
		return
	}

	plans := make([]planInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		plans = append(plans, planInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().UTC(),
			Format:   strings.TrimPrefix(filepath.Ext(entry.Name()), "."),
		})
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Name < plans[j].Name })
	s.writeJSON(w, plans)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	log.Debugf("handleGetPlan called: path=%s", r.URL.Path)
	name := mux.Vars(r)["name"]
	if !safeName(name) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid plan name"))
		return
	}

	path := filepath.Join(s.dir, name)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("Plan not found"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Cannot read plan"))
		return
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		s.writeMarkdown(w, name, content)
	case ".txt":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(content)
	case ".html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(content)
	case ".pdf":
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(content)
	case ".docx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		_, _ = w.Write(content)
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(content)
	}
}

// writeMarkdown converts a stored Markdown plan to a small HTML page so
// it reads well in a browser.
func (s *Server) writeMarkdown(w http.ResponseWriter, name string, content []byte) {
	var body bytes.Buffer
	if err := goldmark.New().Convert(content, &body); err != nil {
		log.Errorf("convert markdown plan %s: %v", name, err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(content)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(name))
	_, _ = w.Write(body.Bytes())
	_, _ = w.Write([]byte("</body>\n</html>\n"))
}

// safeName accepts bare file names only. Anything that could step out of
// the plan directory is rejected before it reaches the filesystem.
func safeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	return name == filepath.Base(name)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
