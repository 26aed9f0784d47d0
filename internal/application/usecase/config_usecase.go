package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/painel-bi/internal/application/dto"
	"github.com/jhoicas/painel-bi/internal/domain"
	"github.com/jhoicas/painel-bi/internal/domain/entity"
	"github.com/jhoicas/painel-bi/internal/domain/normalize"
	"github.com/jhoicas/painel-bi/internal/domain/repository"
	"github.com/jhoicas/painel-bi/pkg/logger"
)

// ConfigUseCase entradas de configuración por empresa. Se cargan una vez y
// se guardan en memoria; una edición solo reemplaza la entrada en memoria si
// el almacén la aceptó.
type ConfigUseCase struct {
	repo repository.ConfigRepository
	log  *logger.Logger

	mu      sync.RWMutex
	entries map[string][]entity.ConfigEntry
	gen     map[string]uint64
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository, log *logger.Logger) *ConfigUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ConfigUseCase{repo: repo, log: log.Component("config"), entries: make(map[string][]entity.ConfigEntry), gen: make(map[string]uint64)}
}

func (uc *ConfigUseCase) load(ctx context.Context, companyID string) ([]entity.ConfigEntry, error) {
	uc.mu.RLock()
	list, ok := uc.entries[companyID]
	gen := uc.gen[companyID]
	uc.mu.RUnlock()
	if ok {
		return list, nil
	}
	list, err := uc.repo.ListConfig(ctx, companyID)
	if err != nil {
		return nil, upstream("configurações", err)
	}
	if list == nil {
		list = []entity.ConfigEntry{}
	}
	// Una edición o invalidación durante la lectura deja este listado obsoleto:
	// se devuelve al llamador pero no se guarda.
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if cached, ok := uc.entries[companyID]; ok {
		return cached, nil
	}
	if uc.gen[companyID] != gen {
		uc.log.Debug().Str("company_id", companyID).Msg("carga de configuración obsoleta descartada")
		return list, nil
	}
	uc.entries[companyID] = list
	return list, nil
}

// List entradas de la empresa.
func (uc *ConfigUseCase) List(ctx context.Context, companyID string) ([]dto.ConfigEntryDTO, error) {
	list, err := uc.load(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConfigEntryDTO, 0, len(list))
	for _, e := range list {
		out = append(out, configDTO(e))
	}
	return out, nil
}

// Value valor de una clave; ok=false si no existe.
func (uc *ConfigUseCase) Value(ctx context.Context, companyID, key string) (string, bool, error) {
	list, err := uc.load(ctx, companyID)
	if err != nil {
		return "", false, err
	}
	for _, e := range list {
		if e.Key == key {
			return e.Value, true, nil
		}
	}
	return "", false, nil
}

// Update guarda el nuevo valor. Si el almacén falla, el error llega al
// llamador y la copia en memoria no cambia.
func (uc *ConfigUseCase) Update(ctx context.Context, companyID, key, value string) (*dto.ConfigEntryDTO, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("clave vacía: %w", domain.ErrInvalidInput)
	}
	value, err := validateConfigValue(key, value)
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.UpdateConfig(ctx, companyID, key, value)
	if err != nil {
		uc.log.Warn().Err(err).Str("company_id", companyID).Str("key", key).Msg("no se pudo guardar la configuración")
		return nil, fmt.Errorf("guardar %s: %w", key, err)
	}
	entry := *saved
	if entry.Key == "" {
		entry.Key = key
	}

	uc.mu.Lock()
	uc.gen[companyID]++
	if list, ok := uc.entries[companyID]; ok {
		next := make([]entity.ConfigEntry, 0, len(list)+1)
		replaced := false
		for _, e := range list {
			if e.Key == entry.Key {
				next = append(next, entry)
				replaced = true
				continue
			}
			next = append(next, e)
		}
		if !replaced {
			next = append(next, entry)
		}
		uc.entries[companyID] = next
	}
	uc.mu.Unlock()

	uc.log.Info().Str("company_id", companyID).Str("key", entry.Key).Msg("configuración actualizada")
	out := configDTO(entry)
	return &out, nil
}

// Invalidate descarta la copia en memoria de la empresa.
func (uc *ConfigUseCase) Invalidate(companyID string) {
	uc.mu.Lock()
	uc.gen[companyID]++
	delete(uc.entries, companyID)
	uc.mu.Unlock()
}

func validateConfigValue(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	switch key {
	case entity.ConfigKeyTarget:
		if value == "" || normalize.Digits(value) == "" {
			return "", fmt.Errorf("META debe ser un monto: %w", domain.ErrInvalidInput)
		}
		amount := normalize.Amount(value)
		if amount.IsNegative() {
			return "", fmt.Errorf("META no puede ser negativa: %w", domain.ErrInvalidInput)
		}
		return amount.String(), nil
	case entity.ConfigKeyAnimateGoal:
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return "", fmt.Errorf("ANIMACAO_META debe ser true o false: %w", domain.ErrInvalidInput)
		}
		return v, nil
	case entity.ConfigKeyQuickCodes:
		return strings.Join(splitCodes(value), ","), nil
	}
	return value, nil
}

// splitCodes lista separada por comas, sin vacíos.
func splitCodes(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func configDTO(e entity.ConfigEntry) dto.ConfigEntryDTO {
	out := dto.ConfigEntryDTO{ID: e.ID, Key: e.Key, Value: e.Value}
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
