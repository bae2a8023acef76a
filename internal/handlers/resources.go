package handlers

import (
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/calendar"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/catalog"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/profile"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/rating"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/schedule"
)

func NewProfileHandler(uc *profile.Profiles, opts QueryOptions) *ResourceHandler[models.Profile, profile.ProfileInput] {
	return NewResourceHandler[models.Profile, profile.ProfileInput](uc, uc.Deactivate, query.Profiles, opts)
}

func NewServiceHandler(uc *catalog.Catalog, opts QueryOptions) *ResourceHandler[models.Service, catalog.ServiceInput] {
	return NewResourceHandler[models.Service, catalog.ServiceInput](uc, uc.Deactivate, query.Services, opts)
}

func NewScheduleHandler(uc *schedule.Schedules, opts QueryOptions) *ResourceHandler[models.Schedule, schedule.ScheduleInput] {
	return NewResourceHandler[models.Schedule, schedule.ScheduleInput](uc, uc.Deactivate, query.Schedules, opts)
}

func NewRatingHandler(uc *rating.Ratings, opts QueryOptions) *ResourceHandler[models.Rating, rating.RatingInput] {
	return NewResourceHandler[models.Rating, rating.RatingInput](uc, uc.Delete, query.Ratings, opts)
}

func NewCalendarEventHandler(uc *calendar.Events, opts QueryOptions) *ResourceHandler[models.CalendarEvent, calendar.CalendarEventInput] {
	return NewResourceHandler[models.CalendarEvent, calendar.CalendarEventInput](uc, uc.Delete, query.CalendarEvents, opts)
}
