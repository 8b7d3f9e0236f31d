package api

import "github.com/terraincognita07/prospecta/internal/models"

func postLoginRedirectPath(user *models.User) string {
	if user != nil && user.IsAdmin() {
		return "/admin"
	}
	return "/dashboard"
}
