package create_reservation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/rovart/BookingService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest проверяет и нормализует входные данные
// Вызывается до любого обращения к хранилищу
func validateRequest(req *Request) (*validatedRequest, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	service, err := validateService(req.Service)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := domain.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	slot, err := domain.ParseSlot(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	customer, err := validateCustomer(req.Customer)
	if err != nil {
		return nil, err
	}

	return &validatedRequest{
		date:     date,
		slot:     slot,
		service:  service,
		customer: customer,
	}, nil
}

func validateService(s ServiceInput) (ServiceInput, error) {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)

	if s.ID == "" {
		return s, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if s.Name == "" {
		return s, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if s.Price < 0 {
		return s, fmt.Errorf("%w: service price must not be negative", ErrInvalidInput)
	}
	if s.Price > domain.MaxServicePrice || math.IsNaN(s.Price) {
		return s, fmt.Errorf("%w: service price must not exceed %.2f", ErrInvalidInput, domain.MaxServicePrice)
	}
	if s.DurationMinutes < domain.MinServiceMinutes {
		return s, fmt.Errorf("%w: service duration must be at least %d minute", ErrInvalidInput, domain.MinServiceMinutes)
	}
	if s.DurationMinutes > domain.MaxServiceMinutes {
		return s, fmt.Errorf("%w: service duration must not exceed %d minutes", ErrInvalidInput, domain.MaxServiceMinutes)
	}

	return s, nil
}

func validateCustomer(c CustomerInput) (CustomerInput, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = stripSpaces(c.Phone)

	if c.Name == "" {
		return c, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len([]rune(c.Name)) > domain.MaxNameLength {
		return c, fmt.Errorf("%w: customer name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if c.Email == "" {
		return c, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(c.Email) {
		return c, fmt.Errorf("%w: email %q is malformed", ErrInvalidInput, c.Email)
	}

	if c.Phone == "" {
		return c, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if !isDigits(c.Phone) || len(c.Phone) != domain.PhoneDigits {
		return c, fmt.Errorf("%w: phone must contain exactly %d digits", ErrInvalidInput, domain.PhoneDigits)
	}

	var err error
	if c.Address, err = optionalText("address", c.Address, domain.MaxAddressLength); err != nil {
		return c, err
	}
	if c.Notes, err = optionalText("notes", c.Notes, domain.MaxNotesLength); err != nil {
		return c, err
	}

	return c, nil
}

// optionalText обрезает пробелы; пустая строка превращается в nil
func optionalText(field string, value *string, max int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	if len([]rune(trimmed)) > max {
		return nil, fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, field, max)
	}
	return &trimmed, nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
