package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/prospecta/internal/i18n"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	templates, err := parsePageTemplates(templateDir, newTemplateFuncMap(), pageTemplates)
	if err != nil {
		return nil, err
	}

	codec, err := newSecureCookieCodec([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("init cookie codec: %w", err)
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		templates:    templates,
		cookieCodec:  codec,
	}
	return handler.withDependencies(database), nil
}
