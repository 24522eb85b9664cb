package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/csg33k/blueprint-intake/internal/config"
	"github.com/csg33k/blueprint-intake/internal/domain"
	"github.com/csg33k/blueprint-intake/internal/ports"
)

// maxBodySize caps form and JSON request bodies.
const maxBodySize = 1 << 20

// Response messages returned to the form.
const (
	MsgSent     = "Enviado correctamente."
	MsgRequired = "Nombre y email son requeridos."
	MsgFailed   = "Error enviando el formulario."
)

type Handler struct {
	smtp      config.SMTP
	mail      config.Mail
	renderer  ports.DocumentRenderer
	newSender ports.MailSenderFactory
	static    http.Handler
	log       *slog.Logger
}

func New(cfg config.Config, renderer ports.DocumentRenderer, newSender ports.MailSenderFactory, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &Handler{
		smtp:      cfg.SMTP,
		mail:      cfg.Mail,
		renderer:  renderer,
		newSender: newSender,
		log:       log,
	}
	if cfg.StaticDir != "" {
		h.static = staticFiles(cfg.StaticDir)
	}
	return h
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/submit", h.submit)
	if h.static != nil {
		mux.Handle("GET /", h.static)
	}
	return mux
}

// submit handles POST /api/submit.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	log := h.log.With("request_id", uuid.NewString())

	s, err := parseSubmission(w, r)
	if err != nil {
		log.Warn("unreadable submission body", "err", err)
	}
	if err := s.Validate(); err != nil {
		log.Info("submission rejected", "kind", kind(err))
		writeMessage(w, http.StatusBadRequest, MsgRequired)
		return
	}

	// Delivery continues even if the client goes away mid-request.
	copied, err := h.deliver(context.WithoutCancel(r.Context()), &s)
	if err != nil {
		log.Error("submission failed", "kind", kind(err), "err", err)
		writeMessage(w, http.StatusInternalServerError, MsgFailed)
		return
	}
	log.Info("submission delivered", "to", h.mail.To, "copy", copied)
	writeMessage(w, http.StatusOK, MsgSent)
}

// parseSubmission reads the six form fields from a JSON or form-encoded body.
// The returned submission is usable even when err is non-nil; it then holds
// whatever could be read, usually nothing.
func parseSubmission(w http.ResponseWriter, r *http.Request) (domain.Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var get func(key string) string
	if isJSON(r) {
		var body map[string]any
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			return domain.Submission{}, fmt.Errorf("decode json: %w", err)
		}
		get = func(key string) string { return textValue(body[key]) }
	} else {
		if err := r.ParseForm(); err != nil {
			return domain.Submission{}, fmt.Errorf("parse form: %w", err)
		}
		get = r.PostForm.Get
	}

	return domain.Submission{
		Name:        get("nombre"),
		Company:     get("empresa"),
		Role:        get("cargo"),
		Email:       get("email"),
		Phone:       get("telefono"),
		Improvement: get("mejora"),
	}, nil
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && (mt == "application/json" || strings.HasSuffix(mt, "+json"))
}

// textValue treats a decoded JSON value as text. null and missing keys are
// absent; scalars keep their literal form.
func textValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// kind names the failure class for log lines.
func kind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrRender):
		return "render"
	case errors.Is(err, domain.ErrMail):
		return "mail"
	default:
		return "unknown"
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{msg})
}

// staticFiles serves dir at the root, hiding dotfiles such as .env.
func staticFiles(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, seg := range strings.Split(r.URL.Path, "/") {
			if strings.HasPrefix(seg, ".") {
				http.NotFound(w, r)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}
