package services

import "github.com/fsdevblog/shortlinks/internal/models"

// AccessController решает, может ли пользователь видеть детали ссылки и управлять ею.
// Доступ есть только у владельца; анонимные ссылки недоступны никому.
type AccessController struct{}

func NewAccessController() *AccessController {
	return &AccessController{}
}

func (a *AccessController) CanViewDetails(requester *string, sURL *models.URL) bool {
	return sURL.IsOwnedBy(requester)
}

func (a *AccessController) CanManage(requester *string, sURL *models.URL) bool {
	return sURL.IsOwnedBy(requester)
}
