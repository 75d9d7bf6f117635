package controllers

import (
	"context"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/services"
)

//go:generate mockgen -source=interfaces.go -destination=mocksctrl/mock.go -package=mocksctrl

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// URLCreator создает короткие ссылки.
type URLCreator interface {
	Create(ctx context.Context, args services.CreateURLArgs) (*models.URL, error)
}

// Redirector разрешает короткий код и записывает переход.
type Redirector interface {
	Resolve(ctx context.Context, code string, rc services.RequestContext) (*services.RedirectResult, error)
}

type URLSearcher interface {
	Search(ctx context.Context, query string) ([]models.URL, error)
}

// OwnerURLManager операции над ссылками текущего пользователя.
type OwnerURLManager interface {
	Detail(ctx context.Context, id uint, requester *string) (*services.URLDetail, error)
	ListOwned(ctx context.Context, requester *string) ([]models.URL, error)
	SetActive(ctx context.Context, id uint, requester *string, active bool) (*models.URL, error)
	Delete(ctx context.Context, id uint, requester *string) error
}
