package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"bookclub/internal/adapters/notion"
	"bookclub/internal/application/orchestrators"
	"bookclub/internal/domain/book"
	"bookclub/internal/domain/member"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

const templatesDir = "internal/adapters/http/templates"

// guidePath is the club guide shown on the home page, rendered from markdown.
const guidePath = "static/guide.md"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	funcMap := template.FuncMap{
		"csrfToken": func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// readGuide loads the club guide markdown. A missing guide is not an error.
func readGuide() string {
	data, err := os.ReadFile(guidePath)
	if err != nil {
		return ""
	}
	return string(data)
}

// handleIndex handles GET / with the book entry form and member roster.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := stores.Members.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "index.html", map[string]any{
			"Members": members,
			"Flashes": popFlashes(w, r),
			"Guide":   readGuide(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

// handleMembersPage handles GET /members with the roster and add form.
func handleMembersPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	members, err := stores.Members.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "members.html", map[string]any{
			"Members": members,
			"Flashes": popFlashes(w, r),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

// handleAddMember handles POST /add_member from the roster form.
// POST: Redirects to / with a flash describing the outcome
func handleAddMember(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	m, err := orchestrators.ExecuteAddMember(r.Context(),
		orchestrators.AddMemberInput{Name: r.FormValue("name")},
		orchestrators.AddMemberDeps{MemberStore: stores.Members, Now: timeNow},
	)
	switch {
	case err == nil:
		addFlash(w, r, FlashSuccess, fmt.Sprintf("회원 \"%s\"이 추가되었습니다!", m.Name))
	case errors.Is(err, member.ErrEmptyName):
		addFlash(w, r, FlashError, "회원 이름을 입력해주세요.")
	case errors.Is(err, member.ErrDuplicateName):
		addFlash(w, r, FlashWarning, "이미 존재하는 회원입니다.")
	default:
		slog.Error("add_member_failed", "error", err.Error())
		addFlash(w, r, FlashError, "회원 추가 중 오류가 발생했습니다.")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAddBook handles POST /add_book from the book entry form. The entry is
// transient: it is mirrored to the note service and never stored locally.
// POST: Redirects to / with a flash describing the outcome
func handleAddBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	rating, _ := strconv.Atoi(r.FormValue("rating"))
	input := orchestrators.RecordBookInput{
		MemberName: strings.TrimSpace(r.FormValue("member_name")),
		Title:      strings.TrimSpace(r.FormValue("title")),
		Author:     strings.TrimSpace(r.FormValue("author")),
		Genre:      strings.TrimSpace(r.FormValue("genre")),
		Completed:  r.FormValue("completed") == "on",
		Rating:     rating,
		Review:     strings.TrimSpace(r.FormValue("review")),
	}

	err := orchestrators.ExecuteRecordBook(r.Context(), input,
		orchestrators.RecordBookDeps{Mirror: clients.Notion, Notifier: clients.Notifier})
	switch {
	case err == nil:
		addFlash(w, r, FlashSuccess, "책이 성공적으로 기록되었습니다!")
	case errors.Is(err, book.ErrEmptyMemberName), errors.Is(err, book.ErrEmptyTitle):
		addFlash(w, r, FlashError, "회원과 책 제목을 입력해주세요.")
	case errors.Is(err, notion.ErrNotConfigured):
		addFlash(w, r, FlashWarning, "Notion 연동이 설정되지 않았습니다.")
	default:
		slog.Error("add_book_failed", "error", err.Error(), "title", input.Title)
		addFlash(w, r, FlashError, "책 기록에 실패했습니다. 잠시 후 다시 시도해주세요.")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// generateKeywordsRequest is the JSON body for POST /generate_keywords.
type generateKeywordsRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Review string `json:"review"`
}

// handleGenerateKeywords handles POST /generate_keywords as a JSON API.
// POST: 200 with {success, keywords, message}, or 400 on validation failure
func handleGenerateKeywords(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateKeywordsRequest
	if err := strictDecode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "잘못된 요청 형식입니다.",
		})
		return
	}

	keywords, err := orchestrators.ExecuteGenerateKeywords(r.Context(),
		orchestrators.GenerateKeywordsInput{
			Title:  req.Title,
			Author: req.Author,
			Genre:  req.Genre,
			Review: req.Review,
		},
		orchestrators.GenerateKeywordsDeps{Lookup: clients.Books, Generator: clients.LLM},
	)
	switch {
	case errors.Is(err, orchestrators.ErrMissingTitle):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "책 제목을 입력해주세요.",
		})
		return
	case errors.Is(err, orchestrators.ErrMissingGenre):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "장르를 입력해주세요.",
		})
		return
	case err != nil:
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"keywords": keywords,
		"message":  fmt.Sprintf("%d개의 키워드를 생성했습니다.", len(keywords)),
	})
}

// handleHealth handles GET /health for liveness checks.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": timeNow().UTC().Format(time.RFC3339),
	})
}
