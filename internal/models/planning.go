package models

import (
	"strings"
	"time"
)

const planningTagSeparator = ", "

// Structure types a commercial can schedule in a planning slot.
const (
	StructureHospital     = "HOPITAL"
	StructureHealthPost   = "POSTE DE SANTE"
	StructureHealthCenter = "CENTRE DE SANTE"
	StructureClinic       = "CLINIQUE"
	StructureFireBrigade  = "SAPEUR POMPIER"
	StructureGendarmerie  = "GENDARMERIES"
	StructurePharmacy     = "PHARMACIES"
)

func PlanningStructures() []string {
	return []string{
		StructureHospital,
		StructureHealthPost,
		StructureHealthCenter,
		StructureClinic,
		StructureFireBrigade,
		StructureGendarmerie,
		StructurePharmacy,
	}
}

func IsPlanningStructure(tag string) bool {
	for _, structure := range PlanningStructures() {
		if structure == tag {
			return true
		}
	}
	return false
}

type PlanningSlot struct {
	Key    string
	Day    string
	Period string
}

var planningDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
var planningPeriods = []string{"morning", "evening"}

// PlanningSlots returns the 14 weekly slots in calendar order.
func PlanningSlots() []PlanningSlot {
	slots := make([]PlanningSlot, 0, len(planningDays)*len(planningPeriods))
	for _, day := range planningDays {
		for _, period := range planningPeriods {
			slots = append(slots, PlanningSlot{Key: day + "_" + period, Day: day, Period: period})
		}
	}
	return slots
}

type Planning struct {
	ID               uint      `gorm:"primaryKey"`
	CommercialID     uint      `gorm:"not null;index"`
	WeekStart        time.Time `gorm:"type:date;not null;index"`
	MondayMorning    string    `gorm:"not null;default:''"`
	MondayEvening    string    `gorm:"not null;default:''"`
	TuesdayMorning   string    `gorm:"not null;default:''"`
	TuesdayEvening   string    `gorm:"not null;default:''"`
	WednesdayMorning string    `gorm:"not null;default:''"`
	WednesdayEvening string    `gorm:"not null;default:''"`
	ThursdayMorning  string    `gorm:"not null;default:''"`
	ThursdayEvening  string    `gorm:"not null;default:''"`
	FridayMorning    string    `gorm:"not null;default:''"`
	FridayEvening    string    `gorm:"not null;default:''"`
	SaturdayMorning  string    `gorm:"not null;default:''"`
	SaturdayEvening  string    `gorm:"not null;default:''"`
	SundayMorning    string    `gorm:"not null;default:''"`
	SundayEvening    string    `gorm:"not null;default:''"`
	CreatedAt        time.Time

	Commercial User `gorm:"foreignKey:CommercialID"`
}

func (planning *Planning) slotField(key string) *string {
	switch key {
	case "monday_morning":
		return &planning.MondayMorning
	case "monday_evening":
		return &planning.MondayEvening
	case "tuesday_morning":
		return &planning.TuesdayMorning
	case "tuesday_evening":
		return &planning.TuesdayEvening
	case "wednesday_morning":
		return &planning.WednesdayMorning
	case "wednesday_evening":
		return &planning.WednesdayEvening
	case "thursday_morning":
		return &planning.ThursdayMorning
	case "thursday_evening":
		return &planning.ThursdayEvening
	case "friday_morning":
		return &planning.FridayMorning
	case "friday_evening":
		return &planning.FridayEvening
	case "saturday_morning":
		return &planning.SaturdayMorning
	case "saturday_evening":
		return &planning.SaturdayEvening
	case "sunday_morning":
		return &planning.SundayMorning
	case "sunday_evening":
		return &planning.SundayEvening
	default:
		return nil
	}
}

// Slot returns the raw comma-joined tags stored for a slot key.
func (planning Planning) Slot(key string) string {
	field := planning.slotField(key)
	if field == nil {
		return ""
	}
	return *field
}

// SlotTags splits a stored slot back into its structure tags.
func (planning Planning) SlotTags(key string) []string {
	raw := strings.TrimSpace(planning.Slot(key))
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

// SetSlotTags stores tags for a slot key and reports whether the key exists.
func (planning *Planning) SetSlotTags(key string, tags []string) bool {
	field := planning.slotField(key)
	if field == nil {
		return false
	}
	*field = strings.Join(tags, planningTagSeparator)
	return true
}
