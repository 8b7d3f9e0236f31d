package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/prospecta/internal/models"
)

var (
	ErrProspectionDateRequired  = errors.New("prospection date required")
	ErrProspectionFieldRequired = errors.New("prospection field required")
	ErrProspectionFieldTooLong  = errors.New("prospection field too long")
	ErrNotCommercial            = errors.New("user is not a commercial")
)

type ProspectionStore interface {
	Create(prospection *models.Prospection) error
	ListByCommercial(commercialID uint) ([]models.Prospection, error)
	ListByProject(project string) ([]models.Prospection, error)
	ListFiltered(filter models.ProspectionFilter) ([]models.Prospection, error)
	ListSpecialties() ([]string, error)
}

type ProspectionInput struct {
	Date               string
	ClientName         string
	Specialty          string
	Structure          string
	Phone              string
	ProspectProfiles   string
	ProductsPresented  string
	ProductsPrescribed string
}

// ProspectionFilterInput carries the raw recap query parameters.
type ProspectionFilterInput struct {
	DateStart  string
	DateEnd    string
	Commercial string
	Zone       string
	Specialty  string
}

type ProspectionService struct {
	prospections ProspectionStore
}

func NewProspectionService(prospections ProspectionStore) *ProspectionService {
	return &ProspectionService{prospections: prospections}
}

func (service *ProspectionService) Create(commercial models.User, input ProspectionInput) (models.Prospection, error) {
	if !commercial.IsCommercial() {
		return models.Prospection{}, ErrNotCommercial
	}

	prospection, err := BuildProspection(commercial.ID, input)
	if err != nil {
		return models.Prospection{}, err
	}
	if err := service.prospections.Create(&prospection); err != nil {
		return models.Prospection{}, fmt.Errorf("create prospection: %w", err)
	}
	return prospection, nil
}

// BuildProspection validates the submitted visit and returns the entity to store.
func BuildProspection(commercialID uint, input ProspectionInput) (models.Prospection, error) {
	if strings.TrimSpace(input.Date) == "" {
		return models.Prospection{}, ErrProspectionDateRequired
	}
	visitDay, err := ParseDay(input.Date)
	if err != nil {
		return models.Prospection{}, err
	}

	fields := []struct {
		name      string
		value     string
		maxLength int
		required  bool
	}{
		{"client_name", input.ClientName, models.ClientNameMaxLength, true},
		{"specialty", input.Specialty, models.SpecialtyMaxLength, true},
		{"structure", input.Structure, models.StructureMaxLength, true},
		{"phone", input.Phone, models.PhoneMaxLength, true},
		{"prospect_profiles", input.ProspectProfiles, models.ProspectionNotesMaxLength, false},
		{"products_presented", input.ProductsPresented, models.ProspectionNotesMaxLength, false},
		{"products_prescribed", input.ProductsPrescribed, models.ProspectionNotesMaxLength, false},
	}
	for _, field := range fields {
		value := strings.TrimSpace(field.value)
		if field.required && value == "" {
			return models.Prospection{}, fmt.Errorf("%w: %s", ErrProspectionFieldRequired, field.name)
		}
		if utf8.RuneCountInString(value) > field.maxLength {
			return models.Prospection{}, fmt.Errorf("%w: %s (max %d)", ErrProspectionFieldTooLong, field.name, field.maxLength)
		}
	}

	return models.Prospection{
		CommercialID:       commercialID,
		Date:               visitDay,
		ClientName:         strings.TrimSpace(input.ClientName),
		Specialty:          strings.TrimSpace(input.Specialty),
		Structure:          strings.TrimSpace(input.Structure),
		Phone:              strings.TrimSpace(input.Phone),
		ProspectProfiles:   strings.TrimSpace(input.ProspectProfiles),
		ProductsPresented:  strings.TrimSpace(input.ProductsPresented),
		ProductsPrescribed: strings.TrimSpace(input.ProductsPrescribed),
	}, nil
}

func (service *ProspectionService) ListForCommercial(commercialID uint) ([]models.Prospection, error) {
	return service.prospections.ListByCommercial(commercialID)
}

func (service *ProspectionService) ListForProject(project string) ([]models.Prospection, error) {
	if !models.IsKnownProject(project) {
		return nil, ErrUnknownProject
	}
	return service.prospections.ListByProject(project)
}

func (service *ProspectionService) Filter(filter models.ProspectionFilter) ([]models.Prospection, error) {
	return service.prospections.ListFiltered(filter)
}

func (service *ProspectionService) Specialties() ([]string, error) {
	return service.prospections.ListSpecialties()
}

// ParseProspectionFilter converts raw query values into a filter. Values that
// cannot be parsed are dropped from the filter and their parameter names returned.
func ParseProspectionFilter(input ProspectionFilterInput) (models.ProspectionFilter, []string) {
	filter := models.ProspectionFilter{
		Zone:      strings.TrimSpace(input.Zone),
		Specialty: strings.TrimSpace(input.Specialty),
	}
	invalid := make([]string, 0)

	if raw := strings.TrimSpace(input.DateStart); raw != "" {
		if from, err := ParseDay(raw); err == nil {
			filter.From = &from
		} else {
			invalid = append(invalid, "date_start")
		}
	}
	if raw := strings.TrimSpace(input.DateEnd); raw != "" {
		if to, err := ParseDay(raw); err == nil {
			filter.To = &to
		} else {
			invalid = append(invalid, "date_end")
		}
	}
	if raw := strings.TrimSpace(input.Commercial); raw != "" {
		if commercialID, err := strconv.ParseUint(raw, 10, 64); err == nil && commercialID > 0 {
			filter.CommercialID = uint(commercialID)
		} else {
			invalid = append(invalid, "commercial")
		}
	}

	return filter, invalid
}
