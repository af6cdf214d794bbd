package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	repository "github.com/aaravmahajanofficial/ecommerce-discount-demo/internal/repositories"
	"github.com/hellofresh/health-go/v5"
)

const (
	componentName    = "ecommerce-discount-demo"
	componentVersion = "1.0.0"
)

type Endpoints struct {
	Store *repository.Store
}

func NewHealthHandler(endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: componentVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "catalog",
				Timeout:   time.Second,
				SkipOnErr: false,
				Check:     catalogCheck(endpoints.Store),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func catalogCheck(store *repository.Store) health.CheckFunc {
	return func(ctx context.Context) error {
		if store == nil || store.Products == nil {
			return errors.New("store is not initialized")
		}

		if store.Products.Count(ctx) == 0 {
			return errors.New("catalog is empty")
		}

		return nil
	}
}
