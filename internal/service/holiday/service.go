package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/holiday"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidays holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidays: holidayRepo}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.holidays.Create(ctx, holiday.Holiday{
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if validator.IsEmpty(id) {
		return holiday.ErrHolidayNotFound
	}
	return s.holidays.Delete(ctx, id)
}

// ListYear implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := s.holidays.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, holiday.ToResponse(h))
	}
	return out, nil
}
