package usecase

import (
	"context"

	"github.com/jhoicas/Ginebra-api/internal/application/ports"
	"github.com/jhoicas/Ginebra-api/internal/domain"
	"github.com/jhoicas/Ginebra-api/internal/domain/entity"
	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
	"github.com/jhoicas/Ginebra-api/pkg/logger"
)

// lifecycle baja lógica, reactivación y borrado definitivo sobre cualquier repositorio
// que implemente repository.LifecycleRepository.
type lifecycle[T any] struct {
	name    string
	repo    repository.LifecycleRepository[T]
	scope   func(ctx context.Context, actor policy.Actor, item *T) error
	guard   func(ctx context.Context, id string) error // nil = sin dependientes que comprobar
	metrics ports.Metrics
	log     *logger.Logger
}

func (l lifecycle[T]) load(ctx context.Context, actor policy.Actor, id string) (*T, error) {
	item, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := l.scope(ctx, actor, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (l lifecycle[T]) deactivate(ctx context.Context, actor policy.Actor, id string) error {
	return l.setState(ctx, actor, id, entity.LifecycleInactive)
}

func (l lifecycle[T]) reactivate(ctx context.Context, actor policy.Actor, id string) error {
	return l.setState(ctx, actor, id, entity.LifecycleActive)
}

func (l lifecycle[T]) setState(ctx context.Context, actor policy.Actor, id string, state entity.Lifecycle) error {
	if _, err := l.load(ctx, actor, id); err != nil {
		return err
	}
	return l.repo.SetState(ctx, id, state)
}

// purge borra definitivamente. Con dependientes devuelve domain.ErrHasDependents sin borrar.
func (l lifecycle[T]) purge(ctx context.Context, actor policy.Actor, id string) error {
	if _, err := l.load(ctx, actor, id); err != nil {
		return err
	}
	if l.guard != nil {
		if err := l.guard(ctx, id); err != nil {
			if l.metrics != nil {
				l.metrics.DeleteRefused(l.name)
			}
			if l.log != nil {
				l.log.Warn().Err(err).Str("entity", l.name).Str("id", id).Msg("borrado definitivo rechazado")
			}
			return err
		}
	}
	return l.repo.Delete(ctx, id)
}
