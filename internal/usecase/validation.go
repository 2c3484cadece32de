package usecase

import (
	"math"
	"regexp"
	"strings"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// phonePattern matches a normalized phone number: optional leading plus,
// then 8 to 16 digits not starting with zero.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{7,15}$`)

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizePhone strips spaces, hyphens and parentheses from the number.
func NormalizePhone(phone string) string {
	return phoneStripper.Replace(phone)
}

// ValidateSubmission checks every field rule and reports all violations
// together. On success it returns the draft ready for persistence, with
// the phone kept as submitted and coordinates collapsed into a pair.
func ValidateSubmission(sub model.OrderSubmission) (*model.OrderDraft, error) {
	var problems []string

	description := strings.TrimSpace(sub.Description)
	if description == "" {
		problems = append(problems, "description is required")
	}

	if strings.TrimSpace(sub.Category) == "" {
		problems = append(problems, "category is required")
	}

	if !phonePattern.MatchString(NormalizePhone(sub.Phone)) {
		problems = append(problems, "invalid phone number format")
	}

	var location *model.Coordinates
	switch {
	case sub.Latitude == nil && sub.Longitude == nil:
		// No point selected; the order is valid without one.
	case sub.Latitude == nil || sub.Longitude == nil:
		problems = append(problems, "latitude and longitude must be provided together")
	case !isFinite(*sub.Latitude) || !isFinite(*sub.Longitude):
		problems = append(problems, "coordinates must be finite numbers")
	default:
		location = &model.Coordinates{Latitude: *sub.Latitude, Longitude: *sub.Longitude}
	}

	if len(problems) > 0 {
		return nil, domainErrors.NewValidation(problems...)
	}

	return &model.OrderDraft{
		Description: description,
		Category:    sub.Category,
		Consent:     sub.Consent,
		Phone:       sub.Phone,
		Location:    location,
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
