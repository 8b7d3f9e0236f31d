package api

import (
	"html/template"
)

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":    formatTemplateDate,
		"formatMoney":   formatTemplateMoney,
		"t":             templateTranslate,
		"flashText":     templateFlashText,
		"roleLabel":     templateRoleLabel,
		"projectLabel":  templateProjectLabel,
		"slotLabel":     templateSlotLabel,
		"isActiveRoute": isActiveTemplateRoute,
		"toJSON":        templateToJSON,
		"dict":          templateDict,
		"contains":      templateContains,
		"inc":           templateIncrement,
	}
}
