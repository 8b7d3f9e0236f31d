package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/prospecta/internal/models"
)

var (
	ErrPlanningWeekStartRequired = errors.New("planning week start required")
	ErrPlanningUnknownStructure  = errors.New("unknown planning structure")
	ErrPlanningNotFound          = errors.New("planning not found")
)

type PlanningStore interface {
	Create(planning *models.Planning) error
	FindByID(planningID uint) (models.Planning, error)
	ListByCommercial(commercialID uint) ([]models.Planning, error)
}

// PlanningInput maps slot keys such as "monday_morning" to the submitted structure tags.
type PlanningInput struct {
	WeekStart string
	Slots     map[string][]string
}

type PlanningService struct {
	plannings PlanningStore
}

func NewPlanningService(plannings PlanningStore) *PlanningService {
	return &PlanningService{plannings: plannings}
}

func (service *PlanningService) Create(commercial models.User, input PlanningInput) (models.Planning, error) {
	if !commercial.IsCommercial() {
		return models.Planning{}, ErrNotCommercial
	}

	planning, err := BuildPlanning(commercial.ID, input)
	if err != nil {
		return models.Planning{}, err
	}
	if err := service.plannings.Create(&planning); err != nil {
		return models.Planning{}, fmt.Errorf("create planning: %w", err)
	}
	return planning, nil
}

// BuildPlanning validates the week start and every slot's tags. Duplicate tags
// collapse to their first occurrence; slots missing from input stay empty.
func BuildPlanning(commercialID uint, input PlanningInput) (models.Planning, error) {
	if strings.TrimSpace(input.WeekStart) == "" {
		return models.Planning{}, ErrPlanningWeekStartRequired
	}
	weekStart, err := ParseDay(input.WeekStart)
	if err != nil {
		return models.Planning{}, err
	}

	planning := models.Planning{CommercialID: commercialID, WeekStart: weekStart}
	for _, slot := range models.PlanningSlots() {
		tags, err := normalizePlanningTags(input.Slots[slot.Key])
		if err != nil {
			return models.Planning{}, fmt.Errorf("%s: %w", slot.Key, err)
		}
		planning.SetSlotTags(slot.Key, tags)
	}
	return planning, nil
}

func normalizePlanningTags(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, value := range raw {
		tag := strings.TrimSpace(value)
		if tag == "" {
			continue
		}
		if !models.IsPlanningStructure(tag) {
			return nil, fmt.Errorf("%w: %q", ErrPlanningUnknownStructure, tag)
		}
		if _, duplicate := seen[tag]; duplicate {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (service *PlanningService) ListForCommercial(commercialID uint) ([]models.Planning, error) {
	return service.plannings.ListByCommercial(commercialID)
}

func (service *PlanningService) Find(planningID uint) (models.Planning, error) {
	planning, err := service.plannings.FindByID(planningID)
	if err != nil {
		if isRecordNotFound(err) {
			return models.Planning{}, ErrPlanningNotFound
		}
		return models.Planning{}, err
	}
	return planning, nil
}
