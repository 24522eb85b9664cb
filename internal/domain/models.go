package domain

import "errors"

// Placeholder is shown in the document for any absent field value.
const Placeholder = "-"

var (
	// ErrValidation means a required field (name or email) is missing.
	ErrValidation = errors.New("validation failed")
	// ErrRender means the document could not be finalised.
	ErrRender = errors.New("render failed")
	// ErrMail covers transport construction and send failures.
	ErrMail = errors.New("mail failed")
	// ErrInvalidConfig is returned when the mail transport settings are unusable.
	ErrInvalidConfig = errors.New("invalid mail configuration")
)

// Submission holds the fields of one lead form post. It is built once per
// request and never mutated afterwards.
type Submission struct {
	Name        string // nombre, required
	Company     string // empresa
	Role        string // cargo
	Email       string // email, required
	Phone       string // telefono
	Improvement string // mejora: where the lead wants AI to help
}

// Validate reports ErrValidation when name or email is empty.
func (s *Submission) Validate() error {
	if s.Name == "" || s.Email == "" {
		return ErrValidation
	}
	return nil
}

// Field is one labelled value of a submission as it appears in the summary.
type Field struct {
	Label string
	Value string
}

// Fields returns the six submission fields in display order. Values are raw;
// callers decide how to show absent ones.
func (s *Submission) Fields() []Field {
	return []Field{
		{"Nombre", s.Name},
		{"Empresa", s.Company},
		{"Cargo", s.Role},
		{"Email", s.Email},
		{"Teléfono", s.Phone},
		{"Mejora con IA", s.Improvement},
	}
}

// OrPlaceholder returns v, or Placeholder when v is empty.
func OrPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

// Attachment is a file carried by a Mail.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Mail is a fully composed plain-text message ready for the transport.
type Mail struct {
	From        string
	To          []string
	Subject     string
	Text        string
	Attachments []Attachment
}
