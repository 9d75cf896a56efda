package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/booking-page/backend/internal/domain"
)

var commonFirstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elisa", "Felipe", "Gabriela", "Heitor", "Isabela", "João",
	"Larissa", "Marcos", "Natália", "Otávio", "Paula", "Rafael", "Sofia", "Thiago", "Vitória", "Lucas",
}
var commonLastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Lima", "Pereira", "Costa", "Almeida", "Ferreira", "Rodrigues",
}

var observations = []string{
	"Quick intro call",
	"Follow up on last week",
	"Project kickoff",
	"",
}

func GenerateRandomName() string {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]
	return firstName + " " + lastName
}

func GenerateEmailFromName(name string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@example.com", local, rand.Intn(1000))
}

// GenerateRandomTimeIntervals opens a random subset of weekdays with windows between 8:00 and 20:00.
func GenerateRandomTimeIntervals() []*domain.TimeInterval {
	intervals := make([]*domain.TimeInterval, 0, 7)
	for weekDay := 0; weekDay < 7; weekDay++ {
		if rand.Intn(3) == 0 {
			continue
		}
		startHour := 8 + rand.Intn(4)
		endHour := startHour + 2 + rand.Intn(20-startHour-1)
		intervals = append(intervals, &domain.TimeInterval{
			WeekDay:     weekDay,
			StartMinute: startHour * 60,
			EndMinute:   endHour * 60,
		})
	}
	return intervals
}

// GenerateRandomBooking picks an hour inside one of the intervals within the next days.
func GenerateRandomBooking(userID int64, intervals []*domain.TimeInterval, from time.Time, days int) *domain.Booking {
	if len(intervals) == 0 || days <= 0 {
		return nil
	}

	byWeekDay := make(map[int]*domain.TimeInterval, len(intervals))
	for _, interval := range intervals {
		byWeekDay[interval.WeekDay] = interval
	}

	for attempt := 0; attempt < 100; attempt++ {
		day := from.AddDate(0, 0, 1+rand.Intn(days))
		interval, ok := byWeekDay[int(day.Weekday())]
		if !ok {
			continue
		}

		hour := interval.StartHour() + rand.Intn(interval.Capacity())
		name := GenerateRandomName()
		booking := &domain.Booking{
			UserID: userID,
			Date:   time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()),
			Name:   name,
			Email:  GenerateEmailFromName(name),
		}
		if obs := observations[rand.Intn(len(observations))]; obs != "" {
			booking.Observations = &obs
		}
		return booking
	}

	return nil
}
