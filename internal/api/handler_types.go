package api

import (
	"html/template"
	"time"

	"github.com/terraincognita07/prospecta/internal/db"
	"github.com/terraincognita07/prospecta/internal/i18n"
	"github.com/terraincognita07/prospecta/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager
	templates    map[string]*template.Template
	cookieCodec  *secureCookieCodec

	repositories       *db.Repositories
	authService        *services.AuthService
	setupService       *services.SetupService
	commercialService  *services.CommercialService
	prospectionService *services.ProspectionService
	planningService    *services.PlanningService
	revenueService     *services.RevenueService
	rankingService     *services.RankingService
	salesService       *services.SalesService
	exportService      *services.ExportService
}

// FlashPayload survives exactly one redirect. Error holds raw error text or a
// message key; Success and Info hold message keys.
type FlashPayload struct {
	Error         string `json:"error,omitempty"`
	Success       string `json:"success,omitempty"`
	Info          string `json:"info,omitempty"`
	LoginUsername string `json:"login_username,omitempty"`
}

func (payload FlashPayload) IsEmpty() bool {
	return payload.Error == "" && payload.Success == "" && payload.Info == "" && payload.LoginUsername == ""
}

const authTokenTTL = 7 * 24 * time.Hour
