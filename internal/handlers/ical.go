package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/anton-94/mealweek/internal/models"
	"github.com/anton-94/mealweek/internal/services"
)

// CalendarHandler renders the current week plan as an iCal feed: one all-day
// event per meal, placed on that weekday in the current Monday-based week.
type CalendarHandler struct {
	planner *services.PlannerService
	now     func() time.Time
}

func NewCalendarHandler(plannerService *services.PlannerService) *CalendarHandler {
	return &CalendarHandler{planner: plannerService, now: time.Now}
}

func (handler *CalendarHandler) Feed(w http.ResponseWriter, r *http.Request) {
	week, err := handler.planner.Week(r.Context())
	if err != nil {
		writeError(w, err, "loading week for calendar")
		return
	}

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//mealweek//weekly plan//EN")

	now := handler.now()
	monday := weekStart(now)
	for day, meals := range week {
		date := monday.AddDate(0, 0, day)
		for position, meal := range meals {
			summary := meal.Name
			if len(meals) > 1 {
				summary = fmt.Sprintf("%d. %s", position+1, meal.Name)
			}

			event := calendar.AddEvent(meal.ID)
			event.SetDtStampTime(now)
			event.SetSummary(summary)
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
			if description := ingredientSummary(meal.Ingredients); description != "" {
				event.SetDescription(description)
			}
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=mealweek.ics")
	calendar.SerializeTo(w)
}

// weekStart returns midnight on the Monday of now's week.
func weekStart(now time.Time) time.Time {
	sinceMonday := (int(now.Weekday()) + 6) % 7
	return time.Date(now.Year(), now.Month(), now.Day()-sinceMonday, 0, 0, 0, 0, now.Location())
}

func ingredientSummary(ingredients []models.MealIngredient) string {
	if len(ingredients) == 0 {
		return ""
	}
	lines := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		lines = append(lines, fmt.Sprintf("%s x%d", ingredient.Name, ingredient.Quantity))
	}
	return strings.Join(lines, ", ")
}
