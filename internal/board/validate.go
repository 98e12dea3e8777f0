package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks request payloads before they reach storage.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()

	// report json field names, not Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// Struct validates i and returns an error wrapping ErrInvalidInput on failure.
func (v *Validator) Struct(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	sort.Strings(msgs)

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, ", "))
}

// ParseID converts a path token into a positive identifier.
// Non-numeric, zero and negative tokens are all rejected with ErrInvalidInput.
func ParseID(token string) (int, error) {
	id, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", ErrInvalidInput, token)
	}

	if err := ValidateID(id); err != nil {
		return 0, err
	}

	return id, nil
}

// ValidateID rejects non-positive identifiers.
func ValidateID(id int) error {
	if id < 1 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidInput, id)
	}

	return nil
}

// CommentInput is the payload for a new comment.
type CommentInput struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// VoteInput is the payload for a vote adjustment.
type VoteInput struct {
	IncVotes *VoteDelta `json:"inc_votes" validate:"required"`
}

// VoteDelta is a signed vote increment. It decodes from a JSON integer or a numeric string.
type VoteDelta int

func (d *VoteDelta) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: inc_votes must be an integer", ErrInvalidInput)
	}

	v, err := strconv.Atoi(n.String())
	if err != nil {
		return fmt.Errorf("%w: inc_votes must be an integer", ErrInvalidInput)
	}

	*d = VoteDelta(v)
	return nil
}

// NewVoteInput is a shortcut for callers that already hold an int.
func NewVoteInput(delta int) VoteInput {
	d := VoteDelta(delta)
	return VoteInput{IncVotes: &d}
}
