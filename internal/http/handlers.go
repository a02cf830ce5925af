package http

import (
	"fmt"
	"net/http"
	"net/url"

	"pendingboard/internal/core"
	"pendingboard/internal/export"
	"pendingboard/internal/ingest"
	applog "pendingboard/internal/log"
	"pendingboard/internal/session"
)

// uploadField is the multipart form field carrying the workbook.
const uploadField = "workbook"

type bucketCard struct {
	Label string
	Count int
}

// dashboardView is everything index.html needs: either the upload prompt
// (no data yet) or the filtered report.
type dashboardView struct {
	HasData        bool
	FileName       string
	UploadedAt     string
	GeneratedOn    string
	PublishEnabled bool
	Published      string

	SubDivisions []string
	BucketLabels []string
	Filter       core.Filter

	Total   int
	Cards   []bucketCard
	Summary core.Table
	Detail  core.Table
}

// sessionFor returns the visitor's session, creating one (and setting the
// cookie) on first contact or after expiry.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) session.Session {
	if c, err := r.Cookie(session.CookieName); err == nil {
		if sess, ok := s.sessions.Get(c.Value); ok {
			return sess
		}
	}
	sess := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	sess := s.sessionFor(w, r)
	view := s.buildView(sess)
	view.Published = r.URL.Query().Get("published")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", view); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// buildView derives the report for the session's current filter. Every
// request recomputes from the classified record set; nothing is cached.
func (s *Server) buildView(sess session.Session) dashboardView {
	view := dashboardView{
		HasData:        sess.HasData(),
		GeneratedOn:    s.now().Format(core.DateLayout),
		PublishEnabled: s.publisher != nil,
		BucketLabels:   core.BucketLabels(),
		Filter:         sess.Filter,
	}
	if !view.HasData {
		return view
	}

	view.FileName = sess.FileName
	view.UploadedAt = sess.UploadedAt.Format("02-01-2006 15:04")
	view.SubDivisions = core.SubDivisions(sess.Records)

	filtered := sess.Filter.Apply(sess.Records)
	ov := core.Overview(filtered)
	view.Total = ov.Total
	for i, label := range core.BucketLabels() {
		view.Cards = append(view.Cards, bucketCard{Label: label, Count: ov.Buckets[i]})
	}
	view.Summary = core.SummaryTable(core.Summarize(filtered))
	view.Detail = core.DetailTable(filtered)
	return view
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.logger.ErrorContext(r.Context(), "Upload form parse failed", applog.FieldError, err)
		http.Error(w, "upload too large or malformed", http.StatusRequestEntityTooLarge)
		return
	}
	file, header, err := r.FormFile(uploadField)
	if err != nil {
		http.Error(w, "missing workbook file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, stats, err := ingest.Parse(file)
	if err != nil {
		s.logger.WarnContext(r.Context(), "Workbook rejected",
			applog.FieldFileName, header.Filename, applog.FieldError, err)
		http.Error(w, "file is not a readable xlsx workbook", http.StatusUnprocessableEntity)
		return
	}

	today := s.now()
	classified, futureDated := core.Classify(records, today)
	if futureDated > 0 {
		// Future installation dates still classify into the first bucket;
		// surfaced here rather than silently replicated.
		s.logger.WarnContext(r.Context(), "Upload contains future installation dates",
			applog.FieldFileName, header.Filename,
			applog.FieldFutureDated, futureDated)
	}
	s.logger.InfoContext(r.Context(), "Workbook loaded",
		applog.FieldSessionID, sess.ID,
		applog.FieldFileName, header.Filename,
		applog.FieldRowsTotal, stats.TotalRows,
		applog.FieldRowsLoaded, stats.Loaded,
		applog.FieldRowsDropped, stats.Dropped)

	s.sessions.SetRecords(sess.ID, header.Filename, classified, today)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	f := core.Filter{
		SubDivision: formValueOrAll(r, "sub_division"),
		Bucket:      formValueOrAll(r, "bucket"),
	}
	if f.Bucket != core.All {
		if _, err := core.ParseBucket(f.Bucket); err != nil {
			http.Error(w, "unknown age bucket", http.StatusUnprocessableEntity)
			return
		}
	}
	s.sessions.SetFilter(sess.ID, f)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)
	s.sessions.Clear(sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleExportSummary(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	filtered := sess.Filter.Apply(sess.Records)
	table := core.SummaryTable(core.Summarize(filtered))
	s.serveWorkbook(w, r, table, "PMSGMBY_Pending_Summary.xlsx")
}

func (s *Server) handleExportDetail(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	filtered := sess.Filter.Apply(sess.Records)
	table := core.DetailTable(filtered)
	name := fmt.Sprintf("PMSGMBY_Pending_%s_%s.xlsx",
		labelOrAll(sess.Filter.SubDivision), labelOrAll(sess.Filter.Bucket))
	s.serveWorkbook(w, r, table, name)
}

func (s *Server) serveWorkbook(w http.ResponseWriter, r *http.Request, table core.Table, filename string) {
	data, err := export.Workbook(table)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Workbook export failed",
			applog.FieldTable, table.Name, applog.FieldError, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if s.publisher == nil {
		http.Error(w, "publishing is not configured", http.StatusUnprocessableEntity)
		return
	}

	filtered := sess.Filter.Apply(sess.Records)
	table := core.SummaryTable(core.Summarize(filtered))
	ref, err := s.publisher.PublishTable(r.Context(), table)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Publish failed",
			applog.FieldTable, table.Name, applog.FieldError, err)
		http.Error(w, "publish failed", http.StatusBadGateway)
		return
	}
	s.logger.InfoContext(r.Context(), "Summary published",
		applog.FieldSessionID, sess.ID, applog.FieldSheetsRef, ref)
	http.Redirect(w, r, "/?published="+url.QueryEscape(ref), http.StatusSeeOther)
}

func formValueOrAll(r *http.Request, key string) string {
	v := r.Form.Get(key)
	if v == "" {
		return core.All
	}
	return v
}

func labelOrAll(v string) string {
	if v == "" {
		return core.All
	}
	return v
}
