package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"mealdeck/internal/catalog"
	"mealdeck/internal/domain"
	"mealdeck/internal/eventbus"
)

// Catalog is the part of the store the loader drives
type Catalog interface {
	LoadAreas(ctx context.Context) error
	LoadInitial(ctx context.Context) error
	LoadRemaining(ctx context.Context) (catalog.LoadReport, error)
	RemainingLetters() []string
	Catalog() []domain.Meal
}

// LoaderService fills the catalog in the background: areas and seed letters
// first for a fast first screen, then the rest of the alphabet
type LoaderService interface {
	Start(ctx context.Context) error
	Stop()
	Wait()
	IsLoading() bool
}

// ErrAlreadyLoading is returned by Start while a load is running
var ErrAlreadyLoading = errors.New("load already in progress")

// loaderService is the concrete implementation
type loaderService struct {
	store  Catalog
	bus    eventbus.EventBus
	logger *zap.Logger

	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoaderService creates a loader for store; bus may be nil
func NewLoaderService(store Catalog, bus eventbus.EventBus, logger *zap.Logger) LoaderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &loaderService{
		store:  store,
		bus:    bus,
		logger: logger.Named("loader"),
	}
}

// Start begins loading and returns immediately
func (ls *loaderService) Start(ctx context.Context) error {
	ls.mu.Lock()
	if ls.isLoading {
		ls.mu.Unlock()
		return ErrAlreadyLoading
	}
	ls.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	ls.cancelFunc = cancel
	ls.wg.Add(1)
	ls.mu.Unlock()

	ls.publish(domain.LoadStartedEvent{Letters: ls.store.RemainingLetters()})

	go func() {
		defer ls.wg.Done()
		failed := 0
		defer func() {
			cancel()
			ls.mu.Lock()
			ls.isLoading = false
			ls.cancelFunc = nil
			ls.mu.Unlock()

			ls.publish(domain.LoadCompletedEvent{Total: len(ls.store.Catalog()), Failed: failed})
		}()

		var err error
		failed, err = ls.run(loadCtx)
		if err != nil && !errors.Is(err, context.Canceled) {
			ls.logger.Warn("load finished with errors", zap.Error(err))
		}
	}()

	return nil
}

func (ls *loaderService) run(ctx context.Context) (int, error) {
	// Areas are independent of the meal list, a failure here is not fatal
	if err := ls.store.LoadAreas(ctx); err != nil {
		ls.logger.Warn("area list unavailable", zap.Error(err))
	}

	if err := ls.store.LoadInitial(ctx); err != nil {
		return 1, fmt.Errorf("initial load: %w", err)
	}

	report, err := ls.store.LoadRemaining(ctx)
	return len(report.Failed), err
}

// Stop cancels a running load and waits for it to wind down
func (ls *loaderService) Stop() {
	ls.mu.Lock()
	if ls.cancelFunc != nil {
		ls.cancelFunc()
	}
	ls.mu.Unlock()

	ls.wg.Wait()
}

// Wait blocks until the current load, if any, finishes
func (ls *loaderService) Wait() {
	ls.wg.Wait()
}

func (ls *loaderService) IsLoading() bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.isLoading
}

func (ls *loaderService) publish(event domain.DomainEvent) {
	if ls.bus != nil {
		ls.bus.Publish(event)
	}
}
