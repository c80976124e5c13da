package hiring

import (
	"regexp"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
)

// emailPattern is deliberately loose: local@domain.tld, no RFC pedantry.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

// validate checks the fields every stored candidate must carry.
// requireCV is false on update, where an empty reference means "keep".
func validate(c Candidate, requireCV bool) error {
	if c.Name == "" {
		return faults.Validation("name", "name is required")
	}
	if c.Email == "" {
		return faults.Validation("email", "email is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return faults.Validation("email", "email must look like local@domain.tld")
	}
	if c.Position == "" {
		return faults.Validation("position", "position is required")
	}
	if c.Experience < 0 {
		return faults.Validation("experience", "experience must be a non-negative number")
	}
	if requireCV && c.PathCV == "" {
		return faults.Validation("pathCV", "CV reference is required")
	}
	return nil
}
