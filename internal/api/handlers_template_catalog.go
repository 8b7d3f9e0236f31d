package api

var pageTemplates = []string{
	"welcome",
	"login",
	"dashboard",
	"plannings",
	"planning_form",
	"admin_dashboard",
	"admin_plannings",
	"admin_planning_detail",
	"project_dashboard",
	"commercial_detail",
	"sales",
	"revenue",
	"revenue_detail",
	"not_found",
	"error",
}
