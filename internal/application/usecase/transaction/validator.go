// Package transaction contains transaction-related use cases.
package transaction

import (
	"strings"
	"sync"
	"time"

	"github.com/financas-app/backend/internal/domain/entity"
	"github.com/financas-app/backend/internal/domain/valueobject"
)

// Field identifies a validated form field.
type Field string

const (
	FieldName          Field = "name"
	FieldCategory      Field = "category"
	FieldPlannedAmount Field = "plannedAmount"
	FieldActualAmount  Field = "actualAmount"
	FieldPlannedDate   Field = "plannedDate"
	FieldActualDate    Field = "actualDate"
)

// User-facing validation messages, as shown inline next to the fields.
const (
	MsgNameRequired     = "Nome é obrigatório"
	MsgNameTooShort     = "Nome muito curto"
	MsgNameTooLong      = "Nome muito longo"
	MsgCategoryRequired = "Selecione uma categoria"
	MsgAmountRequired   = "Preencha pelo menos um valor"
	MsgAmountNotPos     = "Valor deve ser maior que 0"
	MsgDateRequired     = "Preencha pelo menos uma data"
	MsgFormIncomplete   = "Preencha todos os campos obrigatórios"
)

// amountDebounceDelay is how long after the last keystroke the amount pair is
// re-validated.
const amountDebounceDelay = 300 * time.Millisecond

// Name length bounds, counted in runes.
const (
	minNameLength = 2
	maxNameLength = 50
)

// Draft is an in-progress transaction record as typed into the form. Amounts
// are kept in their masked string form until submission.
type Draft struct {
	Kind          entity.TransactionKind
	Name          string
	Subtype       entity.Subtype
	CategoryID    string
	PlannedAmount string // masked, e.g. "12,50"
	ActualAmount  string
	PlannedDate   *time.Time
	ActualDate    *time.Time
}

// FormValidator holds a draft with its per-field error map and one form-level
// error slot. Rules are field-local: each depends only on the current draft.
// It re-validates on blur, after a short debounce on amount keystrokes, and
// exhaustively on submit. Safe for use with the debouncer's timer goroutine.
type FormValidator struct {
	mu       sync.Mutex
	draft    Draft
	errors   map[Field]string
	formErr  string
	debounce *Debouncer
}

// NewFormValidator creates a validator for a new draft of the given kind.
func NewFormValidator(kind entity.TransactionKind) *FormValidator {
	return &FormValidator{
		draft:    Draft{Kind: kind},
		errors:   make(map[Field]string),
		debounce: NewDebouncer(amountDebounceDelay),
	}
}

// Close cancels any pending debounced validation. Call when the form goes away.
func (v *FormValidator) Close() {
	v.debounce.Stop()
}

// Draft returns a copy of the current draft.
func (v *FormValidator) Draft() Draft {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.draft
}

// FieldError returns the current error message for a field, empty when valid.
func (v *FormValidator) FieldError(field Field) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errors[field]
}

// FormError returns the whole-form error slot, empty when the last submit
// attempt passed.
func (v *FormValidator) FormError() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.formErr
}

// SetName updates the name. A value clears a stale error immediately; the
// rule itself runs on blur.
func (v *FormValidator) SetName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft.Name = name
	if name != "" {
		delete(v.errors, FieldName)
	}
}

// SetCategory updates the selected category and clears its error.
func (v *FormValidator) SetCategory(categoryID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft.CategoryID = categoryID
	if categoryID != "" {
		delete(v.errors, FieldCategory)
	}
}

// SetSubtype updates the kind-specific subtype.
func (v *FormValidator) SetSubtype(subtype entity.Subtype) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.draft.Subtype = subtype
}

// TypeAmount applies the money mask to raw keystrokes for one of the amount
// fields and schedules a debounced re-validation of the pair. Editing one
// amount re-evaluates the "at least one" rule against the other's value.
func (v *FormValidator) TypeAmount(field Field, raw string) {
	masked := valueobject.FormatKeystroke(raw)

	v.mu.Lock()
	v.setAmount(field, masked)
	if masked != "" {
		delete(v.errors, field)
	}
	v.mu.Unlock()

	v.debounce.Trigger(func() {
		v.ValidateField(field)
	})
}

// ClearAmount empties an amount field and its error.
func (v *FormValidator) ClearAmount(field Field) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.setAmount(field, "")
	delete(v.errors, field)
}

// SetDate updates one of the date fields and validates it when set.
func (v *FormValidator) SetDate(field Field, date *time.Time) {
	v.mu.Lock()
	switch field {
	case FieldPlannedDate:
		v.draft.PlannedDate = date
	case FieldActualDate:
		v.draft.ActualDate = date
	}
	if date != nil {
		delete(v.errors, field)
	}
	v.mu.Unlock()

	if date != nil {
		v.ValidateField(field)
	}
}

// ValidateField runs the rule for one field against the current draft,
// records the outcome in the error map, and reports validity. This is the
// blur handler.
func (v *FormValidator) ValidateField(field Field) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.validateFieldLocked(field)
}

// ValidateForm runs the exhaustive submit-time check: the name rule, at least
// one amount, at least one date, and a category for the kinds that need one.
// On failure the form-level error slot is set and submission must be blocked.
func (v *FormValidator) ValidateForm() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	valid := v.validateFieldLocked(FieldName)
	if v.draft.Kind != entity.TransactionKindIncome && !v.validateFieldLocked(FieldCategory) {
		valid = false
	}
	if !v.validateFieldLocked(FieldPlannedAmount) {
		valid = false
	}
	if !v.validateFieldLocked(FieldActualAmount) {
		valid = false
	}
	if !v.validateFieldLocked(FieldPlannedDate) {
		valid = false
	}
	if !v.validateFieldLocked(FieldActualDate) {
		valid = false
	}

	if !valid {
		v.formErr = MsgFormIncomplete
	} else {
		v.formErr = ""
	}
	return valid
}

// FieldErrors returns a copy of the per-field error map.
func (v *FormValidator) FieldErrors() map[Field]string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make(map[Field]string, len(v.errors))
	for k, m := range v.errors {
		out[k] = m
	}
	return out
}

func (v *FormValidator) setAmount(field Field, masked string) {
	switch field {
	case FieldPlannedAmount:
		v.draft.PlannedAmount = masked
	case FieldActualAmount:
		v.draft.ActualAmount = masked
	}
}

func (v *FormValidator) validateFieldLocked(field Field) bool {
	var msg string

	switch field {
	case FieldName:
		name := strings.TrimSpace(v.draft.Name)
		switch {
		case name == "":
			msg = MsgNameRequired
		case len([]rune(name)) < minNameLength:
			msg = MsgNameTooShort
		case len([]rune(name)) > maxNameLength:
			msg = MsgNameTooLong
		}

	case FieldCategory:
		if v.draft.CategoryID == "" {
			msg = MsgCategoryRequired
		}

	case FieldPlannedAmount:
		msg = amountRule(v.draft.PlannedAmount, v.draft.ActualAmount)

	case FieldActualAmount:
		msg = amountRule(v.draft.ActualAmount, v.draft.PlannedAmount)

	case FieldPlannedDate:
		if v.draft.PlannedDate == nil && v.draft.ActualDate == nil {
			msg = MsgDateRequired
		}

	case FieldActualDate:
		if v.draft.ActualDate == nil && v.draft.PlannedDate == nil {
			msg = MsgDateRequired
		}
	}

	if msg == "" {
		delete(v.errors, field)
		return true
	}
	v.errors[field] = msg
	return false
}

// amountRule validates one member of the amount pair against the other: the
// pair needs at least one value, and a present value must parse to > 0.
func amountRule(value, other string) string {
	if value == "" && other == "" {
		return MsgAmountRequired
	}
	if value != "" && !valueobject.ParseAmount(value).IsPositive() {
		return MsgAmountNotPos
	}
	return ""
}
